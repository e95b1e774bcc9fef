package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/handlers/v1/mappers"
	"github.com/solarbi/savvy-planner/internal/handlers/validator"
	srvMappers "github.com/solarbi/savvy-planner/internal/service/mappers"
)

const (
	uploadTitle     = "Upload assumption excel template"
	multipartMemory = 32 << 20
)

type uploadPage struct {
	Title   string
	Name    string
	Accept  string
	Errors  map[string]string
	Flashes []api.UploadFlash
}

// (GET /upload_assumption_file/form)
func (h *ServiceHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	h.renderUploadForm(w, r, http.StatusOK, uploadPage{Flashes: h.flash.pop(w, r)})
}

// (POST /upload_assumption_file/form)
//
// Browsers get a redirect to the form carrying the flashes. Clients that
// accept application/json get an UploadResult instead.
func (h *ServiceHandler) UploadAssumption(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderUploadForm(w, r, http.StatusRequestEntityTooLarge, uploadPage{
				Errors: map[string]string{"excel_file": fmt.Sprintf("File cannot be larger than %d bytes.", tooLarge.Limit)},
			})
			return
		}
		h.renderUploadForm(w, r, http.StatusBadRequest, uploadPage{
			Errors: map[string]string{"excel_file": "This field is required."},
		})
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	req := mappers.UploadRequest{Name: r.FormValue("name")}
	file, header, err := r.FormFile("excel_file")
	if err == nil {
		defer file.Close()
		req.Filename = header.Filename
	}

	if err := h.validator.Struct(req); err != nil {
		h.renderUploadForm(w, r, http.StatusBadRequest, uploadPage{Name: req.Name, Errors: validator.FieldErrors(err)})
		return
	}

	result := h.assumptionSrv.Upload(r.Context(), srvMappers.UploadForm{
		Name:     req.Name,
		Filename: req.Filename,
		File:     file,
	})

	category := api.Info
	if result.Failed {
		category = api.Danger
	}
	flashes := []api.UploadFlash{
		{Message: result.Message, Category: category},
		{Message: fmt.Sprintf("Time used:%v", result.Elapsed.Seconds()), Category: api.Info},
	}

	if wantsJSON(r) {
		render.JSON(w, r, api.UploadResult{Name: req.Name, Failed: result.Failed, Flashes: flashes})
		return
	}

	h.flash.set(w, flashes...)
	http.Redirect(w, r, uploadBase+"/form", http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeJSON
}

// renderUploadForm answers with the html form, or with an api Error when the
// client asked for json.
func (h *ServiceHandler) renderUploadForm(w http.ResponseWriter, r *http.Request, status int, page uploadPage) {
	if wantsJSON(r) && len(page.Errors) > 0 {
		render.Status(r, status)
		render.JSON(w, r, newError(r.Context(), fieldMessage(page.Errors)))
		return
	}

	page.Title = uploadTitle
	page.Accept = h.accept

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "upload.gohtml", page); err != nil {
		zap.S().Named("handlers").Errorw("failed to render upload form", "error", err)
	}
}
