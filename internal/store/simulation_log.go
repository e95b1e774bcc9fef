package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type SimulationLog interface {
	Create(ctx context.Context, entry model.SimulationLog) (*model.SimulationLog, error)
	List(ctx context.Context, filter *SimulationLogQueryFilter, opts *QueryOptions) (model.SimulationLogList, int64, error)
	Get(ctx context.Context, id uint) (*model.SimulationLog, error)
}

type SimulationLogStore struct {
	db *gorm.DB
}

var _ SimulationLog = (*SimulationLogStore)(nil)

func NewSimulationLogStore(db *gorm.DB) SimulationLog {
	return &SimulationLogStore{db: db}
}

func (s *SimulationLogStore) Create(ctx context.Context, entry model.SimulationLog) (*model.SimulationLog, error) {
	if err := s.getDB(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *SimulationLogStore) List(ctx context.Context, filter *SimulationLogQueryFilter, opts *QueryOptions) (model.SimulationLogList, int64, error) {
	var (
		entries model.SimulationLogList
		total   int64
	)

	query := func() *gorm.DB {
		return (*BaseQuerier)(filter).apply(s.getDB(ctx).Model(&model.SimulationLog{}))
	}
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := query()
	if opts == nil {
		tx = tx.Order("dttm DESC")
	}
	if err := (*BaseQuerier)(opts).apply(tx).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *SimulationLogStore) Get(ctx context.Context, id uint) (*model.SimulationLog, error) {
	var entry model.SimulationLog
	result := s.getDB(ctx).First(&entry, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (s *SimulationLogStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}
