package v1

import (
	"context"
	"net/http"

	"github.com/samber/lo"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/api/server"
	"github.com/solarbi/savvy-planner/internal/handlers/v1/mappers"
)

// (GET /simulationmodelview/list)
func (h *ServiceHandler) ListSimulations(ctx context.Context, request server.ListSimulationsRequestObject) (server.ListSimulationsResponseObject, error) {
	p := request.Params
	params := listParams(p.Page, p.PageSize, p.OrderColumn, p.OrderDirection)
	params.Status = lo.FromPtr(p.Status)
	params.Name = lo.FromPtr(p.Name)
	params.Assumption = lo.FromPtr(p.Assumption)

	list, count, err := h.simulationSrv.List(ctx, params)
	if err != nil {
		f := newFailure(ctx, "ListSimulations", err)
		if f.status == http.StatusBadRequest {
			return server.ListSimulations400JSONResponse(f.body), nil
		}
		return server.ListSimulations500JSONResponse(f.body), nil
	}

	page := newListPage(simulationView, params, count)
	return server.ListSimulations200JSONResponse(api.SimulationList{
		Count:        page.Count,
		Page:         page.Page,
		PageSize:     page.PageSize,
		ListColumns:  page.ListColumns,
		LabelColumns: page.LabelColumns,
		OrderColumns: page.OrderColumns,
		Result:       mappers.SimulationListToApi(list),
	}), nil
}

// (GET /simulationmodelview/show/{id})
func (h *ServiceHandler) GetSimulation(ctx context.Context, request server.GetSimulationRequestObject) (server.GetSimulationResponseObject, error) {
	sim, err := h.simulationSrv.Get(ctx, uint(request.Id))
	if err != nil {
		f := newFailure(ctx, "GetSimulation", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.GetSimulation400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.GetSimulation404JSONResponse(f.body), nil
		default:
			return server.GetSimulation500JSONResponse(f.body), nil
		}
	}
	return server.GetSimulation200JSONResponse(mappers.SimulationToApi(*sim)), nil
}

// (POST /simulationmodelview/add)
func (h *ServiceHandler) CreateSimulation(ctx context.Context, request server.CreateSimulationRequestObject) (server.CreateSimulationResponseObject, error) {
	if request.Body == nil {
		return server.CreateSimulation400JSONResponse(newError(ctx, "empty body")), nil
	}

	form := mappers.SimulationCreateFromApi(*request.Body)
	if err := h.validator.Struct(form); err != nil {
		return server.CreateSimulation400JSONResponse(newError(ctx, validationMessage(err))), nil
	}

	sim, err := h.simulationSrv.Create(ctx, form.ToForm())
	if err != nil {
		f := newFailure(ctx, "CreateSimulation", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.CreateSimulation400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.CreateSimulation404JSONResponse(f.body), nil
		case http.StatusConflict:
			return server.CreateSimulation409JSONResponse(f.body), nil
		default:
			return server.CreateSimulation500JSONResponse(f.body), nil
		}
	}
	return server.CreateSimulation201JSONResponse(mappers.SimulationToApi(*sim)), nil
}

// (PUT /simulationmodelview/edit/{id})
func (h *ServiceHandler) UpdateSimulation(ctx context.Context, request server.UpdateSimulationRequestObject) (server.UpdateSimulationResponseObject, error) {
	if request.Body == nil {
		return server.UpdateSimulation400JSONResponse(newError(ctx, "empty body")), nil
	}

	form := mappers.SimulationUpdateFromApi(*request.Body)
	if err := h.validator.Struct(form); err != nil {
		return server.UpdateSimulation400JSONResponse(newError(ctx, validationMessage(err))), nil
	}

	sim, err := h.simulationSrv.Update(ctx, uint(request.Id), form.ToForm())
	if err != nil {
		f := newFailure(ctx, "UpdateSimulation", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.UpdateSimulation400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.UpdateSimulation404JSONResponse(f.body), nil
		default:
			return server.UpdateSimulation500JSONResponse(f.body), nil
		}
	}
	return server.UpdateSimulation200JSONResponse(mappers.SimulationToApi(*sim)), nil
}

// (DELETE /simulationmodelview/delete/{id})
func (h *ServiceHandler) DeleteSimulation(ctx context.Context, request server.DeleteSimulationRequestObject) (server.DeleteSimulationResponseObject, error) {
	if err := h.simulationSrv.Delete(ctx, uint(request.Id)); err != nil {
		f := newFailure(ctx, "DeleteSimulation", err)
		switch f.status {
		case http.StatusBadRequest:
			return server.DeleteSimulation400JSONResponse(f.body), nil
		case http.StatusNotFound:
			return server.DeleteSimulation404JSONResponse(f.body), nil
		default:
			return server.DeleteSimulation500JSONResponse(f.body), nil
		}
	}
	return server.DeleteSimulation200JSONResponse{Message: "Deleted Row"}, nil
}
