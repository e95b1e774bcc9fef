package service

import (
	"context"
	"errors"

	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

type SimulationLogService struct {
	store store.Store
}

func NewSimulationLogService(s store.Store) *SimulationLogService {
	return &SimulationLogService{store: s}
}

func (s *SimulationLogService) List(ctx context.Context, params ListParams) (model.SimulationLogList, int64, error) {
	opts, err := params.queryOptions(SimulationLogOrdering)
	if err != nil {
		return nil, 0, err
	}
	return s.store.SimulationLog().List(ctx, params.simulationLogFilter(), opts)
}

func (s *SimulationLogService) Get(ctx context.Context, id uint) (*model.SimulationLog, error) {
	entry, err := s.store.SimulationLog().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSimulationLogNotFound(id)
		}
		return nil, err
	}
	return entry, nil
}
