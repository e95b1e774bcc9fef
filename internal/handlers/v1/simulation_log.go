package v1

import (
	"context"
	"net/http"

	"github.com/samber/lo"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/api/server"
	"github.com/solarbi/savvy-planner/internal/handlers/v1/mappers"
)

// (GET /simulationlog/list)
func (h *ServiceHandler) ListSimulationLogs(ctx context.Context, request server.ListSimulationLogsRequestObject) (server.ListSimulationLogsResponseObject, error) {
	p := request.Params
	params := listParams(p.Page, p.PageSize, p.OrderColumn, p.OrderDirection)
	params.Name = lo.FromPtr(p.Name)
	params.User = lo.FromPtr(p.User)
	params.Action = lo.FromPtr(p.Action)

	list, count, err := h.simulationLogSrv.List(ctx, params)
	if err != nil {
		f := newFailure(ctx, "ListSimulationLogs", err)
		if f.status == http.StatusBadRequest {
			return server.ListSimulationLogs400JSONResponse(f.body), nil
		}
		return server.ListSimulationLogs500JSONResponse(f.body), nil
	}

	page := newListPage(simulationLogView, params, count)
	return server.ListSimulationLogs200JSONResponse(api.SimulationLogList{
		Count:        page.Count,
		Page:         page.Page,
		PageSize:     page.PageSize,
		ListColumns:  page.ListColumns,
		LabelColumns: page.LabelColumns,
		OrderColumns: page.OrderColumns,
		Result:       mappers.SimulationLogListToApi(list),
	}), nil
}

// (GET /simulationlog/show/{id})
func (h *ServiceHandler) GetSimulationLog(ctx context.Context, request server.GetSimulationLogRequestObject) (server.GetSimulationLogResponseObject, error) {
	entry, err := h.simulationLogSrv.Get(ctx, uint(request.Id))
	if err != nil {
		f := newFailure(ctx, "GetSimulationLog", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.GetSimulationLog400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.GetSimulationLog404JSONResponse(f.body), nil
		default:
			return server.GetSimulationLog500JSONResponse(f.body), nil
		}
	}
	return server.GetSimulationLog200JSONResponse(mappers.SimulationLogToApi(*entry)), nil
}
