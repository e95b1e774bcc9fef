package v1

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/samber/lo"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/api/server"
	"github.com/solarbi/savvy-planner/internal/handlers/v1/mappers"
)

// (GET /assumptionmodelview/list)
func (h *ServiceHandler) ListAssumptions(ctx context.Context, request server.ListAssumptionsRequestObject) (server.ListAssumptionsResponseObject, error) {
	p := request.Params
	params := listParams(p.Page, p.PageSize, p.OrderColumn, p.OrderDirection)
	params.Status = lo.FromPtr(p.Status)
	params.Name = lo.FromPtr(p.Name)

	list, count, err := h.assumptionSrv.List(ctx, params)
	if err != nil {
		f := newFailure(ctx, "ListAssumptions", err)
		if f.status == http.StatusBadRequest {
			return server.ListAssumptions400JSONResponse(f.body), nil
		}
		return server.ListAssumptions500JSONResponse(f.body), nil
	}

	page := newListPage(assumptionView, params, count)
	return server.ListAssumptions200JSONResponse(api.AssumptionList{
		Count:        page.Count,
		Page:         page.Page,
		PageSize:     page.PageSize,
		ListColumns:  page.ListColumns,
		LabelColumns: page.LabelColumns,
		OrderColumns: page.OrderColumns,
		Result:       mappers.AssumptionListToApi(list),
	}), nil
}

// (GET /assumptionmodelview/show/{name})
func (h *ServiceHandler) GetAssumption(ctx context.Context, request server.GetAssumptionRequestObject) (server.GetAssumptionResponseObject, error) {
	a, err := h.assumptionSrv.Get(ctx, request.Name)
	if err != nil {
		f := newFailure(ctx, "GetAssumption", err)
		if f.status == http.StatusNotFound {
			return server.GetAssumption404JSONResponse(f.body), nil
		}
		return server.GetAssumption500JSONResponse(f.body), nil
	}
	return server.GetAssumption200JSONResponse(mappers.AssumptionToApi(*a)), nil
}

// (PUT /assumptionmodelview/edit/{name})
func (h *ServiceHandler) UpdateAssumption(ctx context.Context, request server.UpdateAssumptionRequestObject) (server.UpdateAssumptionResponseObject, error) {
	if request.Body == nil {
		return server.UpdateAssumption400JSONResponse(newError(ctx, "empty body")), nil
	}

	form := mappers.AssumptionUpdateFromApi(*request.Body)
	if form.Empty() {
		return server.UpdateAssumption400JSONResponse(newError(ctx, "empty body")), nil
	}
	if err := h.validator.Struct(form); err != nil {
		return server.UpdateAssumption400JSONResponse(newError(ctx, validationMessage(err))), nil
	}

	a, err := h.assumptionSrv.Update(ctx, request.Name, form.ToForm())
	if err != nil {
		f := newFailure(ctx, "UpdateAssumption", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.UpdateAssumption400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.UpdateAssumption404JSONResponse(f.body), nil
		default:
			return server.UpdateAssumption500JSONResponse(f.body), nil
		}
	}
	return server.UpdateAssumption200JSONResponse(mappers.AssumptionToApi(*a)), nil
}

// (DELETE /assumptionmodelview/delete/{name})
func (h *ServiceHandler) DeleteAssumption(ctx context.Context, request server.DeleteAssumptionRequestObject) (server.DeleteAssumptionResponseObject, error) {
	if err := h.assumptionSrv.Delete(ctx, request.Name); err != nil {
		f := newFailure(ctx, "DeleteAssumption", err)
		if f.status == http.StatusNotFound {
			return server.DeleteAssumption404JSONResponse(f.body), nil
		}
		return server.DeleteAssumption500JSONResponse(f.body), nil
	}
	return server.DeleteAssumption200JSONResponse{Message: "Deleted Row"}, nil
}

// (GET /assumptionmodelview/download/{name})
func (h *ServiceHandler) DownloadAssumption(ctx context.Context, request server.DownloadAssumptionRequestObject) (server.DownloadAssumptionResponseObject, error) {
	rc, err := h.assumptionSrv.Download(ctx, request.Name)
	if err != nil {
		f := newFailure(ctx, "DownloadAssumption", err)
		switch f.status {
		case http.StatusNotFound:
			return server.DownloadAssumption404JSONResponse(f.body), nil
		case http.StatusConflict:
			return server.DownloadAssumption409JSONResponse(f.body), nil
		default:
			return server.DownloadAssumption500JSONResponse(f.body), nil
		}
	}

	return server.DownloadAssumption200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
		Body: rc,
		Headers: server.DownloadAssumption200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(request.Name+".xlsx")),
		},
	}, nil
}
