package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/handlers/validator"
	"github.com/solarbi/savvy-planner/internal/service"
	"github.com/solarbi/savvy-planner/pkg/requestid"
)

// listView describes the columns a list endpoint exposes.
type listView struct {
	columns []string
	labels  map[string]string
	order   []string
}

var (
	assumptionView = listView{
		columns: []string{"name", "status", "status_detail", "download_link"},
		labels:  map[string]string{"name": "Name", "status": "Status", "status_detail": "Status Detail", "download_link": "Download"},
		order:   service.AssumptionOrdering.Columns,
	}
	simulationView = listView{
		columns: []string{"run_id", "name", "assumption", "status"},
		labels:  map[string]string{"run_id": "Run Id", "name": "Name", "assumption": "Assumption", "status": "Status"},
		order:   service.SimulationOrdering.Columns,
	}
	simulationLogView = listView{
		columns: []string{"user", "action", "action_object", "dttm", "result"},
		labels:  map[string]string{"user": "User", "action": "Action", "action_object": "Action Object", "dttm": "Dttm", "result": "Result"},
		order:   service.SimulationLogOrdering.Columns,
	}
)

type listPage struct {
	Count        int64
	Page         int
	PageSize     int
	ListColumns  []string
	LabelColumns map[string]string
	OrderColumns []string
}

func newListPage(view listView, params service.ListParams, count int64) listPage {
	return listPage{
		Count:        count,
		Page:         max(params.Page, 0),
		PageSize:     params.Limit(),
		ListColumns:  view.columns,
		LabelColumns: view.labels,
		OrderColumns: view.order,
	}
}

// failure is a service error translated to a status code and a reply.
type failure struct {
	status int
	body   api.Error
}

func newFailure(ctx context.Context, operation string, err error) failure {
	status := http.StatusInternalServerError

	var (
		notFound     *service.ErrResourceNotFound
		invalidState *service.ErrInvalidStatus
		invalidParam *service.ErrInvalidParameter
		duplicate    *service.ErrDuplicateRunID
		noOutput     *service.ErrOutputNotAvailable
	)
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalidState), errors.As(err, &invalidParam):
		status = http.StatusBadRequest
	case errors.As(err, &duplicate), errors.As(err, &noOutput):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		zap.S().Named("handlers").Errorw("request failed", "operation", operation, "request_id", requestid.FromContext(ctx), "error", err)
		message = "internal error"
	}
	return failure{status: status, body: newError(ctx, message)}
}

func newError(ctx context.Context, message string) api.Error {
	return api.Error{Message: message, RequestId: requestid.FromContextPtr(ctx)}
}

func listParams(page *api.Page, pageSize *api.PageSize, orderColumn *api.OrderColumn, direction *api.OrderDirection) service.ListParams {
	params := service.ListParams{Descending: direction.Descending()}
	if page != nil {
		params.Page = *page
	}
	if pageSize != nil {
		params.PageSize = *pageSize
	}
	if orderColumn != nil {
		params.OrderColumn = *orderColumn
	}
	return params
}

// OapiErrorHandler writes request validation failures in the shape of the
// api Error schema.
func OapiErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	message, _, _ = strings.Cut(message, "\n")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}

func validationMessage(err error) string {
	fields := validator.FieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}
	return fieldMessage(fields)
}

// fieldMessage flattens field errors into "field: message" pairs.
func fieldMessage(fields map[string]string) string {
	keys := lo.Keys(fields)
	slices.Sort(keys)
	return strings.Join(lo.Map(keys, func(k string, _ int) string { return k + ": " + fields[k] }), "; ")
}
