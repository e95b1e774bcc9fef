package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type Simulation interface {
	List(ctx context.Context, filter *SimulationQueryFilter, opts *QueryOptions) (model.SimulationList, int64, error)
	Get(ctx context.Context, id uint) (*model.Simulation, error)
	Create(ctx context.Context, simulation model.Simulation) (*model.Simulation, error)
	Update(ctx context.Context, simulation model.Simulation) (*model.Simulation, error)
	Delete(ctx context.Context, id uint) error
}

type SimulationStore struct {
	db *gorm.DB
}

var _ Simulation = (*SimulationStore)(nil)

func NewSimulationStore(db *gorm.DB) Simulation {
	return &SimulationStore{db: db}
}

func (s *SimulationStore) List(ctx context.Context, filter *SimulationQueryFilter, opts *QueryOptions) (model.SimulationList, int64, error) {
	var (
		simulations model.SimulationList
		total       int64
	)

	query := func() *gorm.DB {
		return (*BaseQuerier)(filter).apply(s.getDB(ctx).Model(&model.Simulation{}))
	}
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := query()
	if opts == nil {
		tx = tx.Order("created_at DESC")
	}
	if err := (*BaseQuerier)(opts).apply(tx).Find(&simulations).Error; err != nil {
		return nil, 0, err
	}
	return simulations, total, nil
}

func (s *SimulationStore) Get(ctx context.Context, id uint) (*model.Simulation, error) {
	var simulation model.Simulation
	result := s.getDB(ctx).First(&simulation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &simulation, nil
}

func (s *SimulationStore) Create(ctx context.Context, simulation model.Simulation) (*model.Simulation, error) {
	result := s.getDB(ctx).Omit(clause.Associations).Create(&simulation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &simulation, nil
}

func (s *SimulationStore) Update(ctx context.Context, simulation model.Simulation) (*model.Simulation, error) {
	result := s.getDB(ctx).Model(&model.Simulation{}).
		Where("id = ?", simulation.ID).
		Select("name", "assumption_name", "status", "updated_at").
		Updates(&simulation)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return s.Get(ctx, simulation.ID)
}

func (s *SimulationStore) Delete(ctx context.Context, id uint) error {
	result := s.getDB(ctx).Delete(&model.Simulation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *SimulationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}
