package mappers

import (
	"github.com/samber/lo"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

func AssumptionToApi(a model.Assumption) api.Assumption {
	return api.Assumption{
		Name:         a.Name,
		Status:       api.StringToAssumptionStatus(string(a.Status)),
		StatusDetail: a.StatusDetail,
		DownloadLink: a.DownloadLink,
		CreatedOn:    a.CreatedAt,
		ChangedOn:    a.UpdatedAt,
	}
}

func AssumptionListToApi(list model.AssumptionList) []api.Assumption {
	return lo.Map(list, func(a model.Assumption, _ int) api.Assumption { return AssumptionToApi(a) })
}

func SimulationToApi(s model.Simulation) api.Simulation {
	return api.Simulation{
		Id:         int64(s.ID),
		RunId:      s.RunID,
		Name:       s.Name,
		Assumption: s.AssumptionName,
		Status:     s.Status,
		CreatedOn:  s.CreatedAt,
		ChangedOn:  s.UpdatedAt,
	}
}

func SimulationListToApi(list model.SimulationList) []api.Simulation {
	return lo.Map(list, func(s model.Simulation, _ int) api.Simulation { return SimulationToApi(s) })
}

func SimulationLogToApi(l model.SimulationLog) api.SimulationLog {
	return api.SimulationLog{
		Id:               int64(l.ID),
		User:             l.User,
		Action:           l.Action,
		ActionObject:     l.ActionObject,
		ActionObjectType: l.ActionObjectType,
		Dttm:             l.Dttm,
		Result:           l.Result,
		Detail:           l.Detail,
	}
}

func SimulationLogListToApi(list model.SimulationLogList) []api.SimulationLog {
	return lo.Map(list, func(l model.SimulationLog, _ int) api.SimulationLog { return SimulationLogToApi(l) })
}
