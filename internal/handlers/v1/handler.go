package v1

import (
	"embed"
	"html/template"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"

	"github.com/solarbi/savvy-planner/internal/api/server"
	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/handlers/validator"
	"github.com/solarbi/savvy-planner/internal/service"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

const uploadBase = "/upload_assumption_file"

var _ server.StrictServerInterface = (*ServiceHandler)(nil)

type ServiceHandler struct {
	assumptionSrv    *service.AssumptionService
	simulationSrv    *service.SimulationService
	simulationLogSrv *service.SimulationLogService
	validator        *validator.Validator
	flash            *flashCodec
	accept           string
	maxUploadSize    int64
}

func NewServiceHandler(cfg *config.Config, assumptionSrv *service.AssumptionService, simulationSrv *service.SimulationService, simulationLogSrv *service.SimulationLogService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewUploadValidationRules(cfg.Service.AllowedExtensions)...)
	v.Register(validator.NewAssumptionValidationRules()...)
	v.Register(validator.NewSimulationValidationRules()...)

	return &ServiceHandler{
		assumptionSrv:    assumptionSrv,
		simulationSrv:    simulationSrv,
		simulationLogSrv: simulationLogSrv,
		validator:        v,
		flash:            newFlashCodec(cfg.Service.FlashSecret, uploadBase),
		accept:           strings.Join(cfg.Service.AllowedExtensions, ","),
		maxUploadSize:    cfg.Service.MaxUploadSize,
	}
}

// Routes mounts the upload form and the json views described by swagger.
// Requests to the json views are validated against swagger first.
func (h *ServiceHandler) Routes(r chi.Router, swagger *openapi3.T) {
	r.Route(uploadBase, func(r chi.Router) {
		r.Get("/form", h.UploadForm)
		r.Post("/form", h.UploadAssumption)
	})

	r.Group(func(r chi.Router) {
		r.Use(oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapimiddleware.Options{
			ErrorHandler: OapiErrorHandler,
		}))
		server.HandlerFromMux(server.NewStrictHandler(h, nil), r)
	})
}
