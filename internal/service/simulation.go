package service

import (
	"context"
	"errors"

	"github.com/solarbi/savvy-planner/internal/audit"
	"github.com/solarbi/savvy-planner/internal/service/mappers"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
	"github.com/solarbi/savvy-planner/pkg/log"
)

type SimulationService struct {
	store    store.Store
	recorder *audit.Recorder
	logger   *log.StructuredLogger
}

func NewSimulationService(s store.Store, recorder *audit.Recorder) *SimulationService {
	return &SimulationService{
		store:    s,
		recorder: recorder,
		logger:   log.NewDebugLogger("simulation_service"),
	}
}

func (s *SimulationService) List(ctx context.Context, params ListParams) (model.SimulationList, int64, error) {
	opts, err := params.queryOptions(SimulationOrdering)
	if err != nil {
		return nil, 0, err
	}
	return s.store.Simulation().List(ctx, params.simulationFilter(), opts)
}

func (s *SimulationService) Get(ctx context.Context, id uint) (*model.Simulation, error) {
	sim, err := s.store.Simulation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSimulationNotFound(id)
		}
		return nil, err
	}
	return sim, nil
}

func (s *SimulationService) Create(ctx context.Context, form mappers.SimulationForm) (*model.Simulation, error) {
	tracer := s.logger.WithContext(ctx).Operation("create").WithString("name", form.Name).Build()

	var created *model.Simulation
	err := s.recorder.Record(ctx, audit.ActionCreateSimulation, func(e *audit.Entry) error {
		simulation := form.ToSimulation()
		e.SetObject(audit.ObjectTypeSimulation, simulation.Name)

		if err := s.checkAssumption(ctx, simulation.AssumptionName); err != nil {
			return err
		}

		result, err := s.store.Simulation().Create(ctx, simulation)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return NewErrDuplicateRunID(simulation.RunID)
			}
			return err
		}
		created = result
		return nil
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().WithInt("id", int(created.ID)).Log()
	return created, nil
}

func (s *SimulationService) Update(ctx context.Context, id uint, form mappers.SimulationForm) (*model.Simulation, error) {
	var updated *model.Simulation
	err := s.recorder.Record(ctx, audit.ActionUpdateSimulation, func(e *audit.Entry) error {
		current, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		e.SetObject(audit.ObjectTypeSimulation, current.Name)

		if err := s.checkAssumption(ctx, form.AssumptionName); err != nil {
			return err
		}

		updated, err = s.store.Simulation().Update(ctx, *form.Apply(current))
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrSimulationNotFound(id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SimulationService) Delete(ctx context.Context, id uint) error {
	return s.recorder.Record(ctx, audit.ActionDeleteSimulation, func(e *audit.Entry) error {
		current, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		e.SetObject(audit.ObjectTypeSimulation, current.Name)

		if err := s.store.Simulation().Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return NewErrSimulationNotFound(id)
			}
			return err
		}
		return nil
	})
}

func (s *SimulationService) checkAssumption(ctx context.Context, name *string) error {
	if name == nil {
		return nil
	}
	if _, err := s.store.Assumption().Get(ctx, *name); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrAssumptionNotFound(*name)
		}
		return err
	}
	return nil
}
