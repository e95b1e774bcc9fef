package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

const valueBatchSize = 500

type AssumptionValue interface {
	Replace(ctx context.Context, assumptionName string, values []model.AssumptionValue) error
	List(ctx context.Context, assumptionName string) ([]model.AssumptionValue, error)
	Count(ctx context.Context, assumptionName string) (int64, error)
}

type AssumptionValueStore struct {
	db *gorm.DB
}

var _ AssumptionValue = (*AssumptionValueStore)(nil)

func NewAssumptionValueStore(db *gorm.DB) AssumptionValue {
	return &AssumptionValueStore{db: db}
}

// Replace drops every value stored for assumptionName and inserts values.
// Callers wrap it in a transaction to make the swap atomic.
func (s *AssumptionValueStore) Replace(ctx context.Context, assumptionName string, values []model.AssumptionValue) error {
	db := s.getDB(ctx)
	if err := db.Where("assumption_name = ?", assumptionName).Delete(&model.AssumptionValue{}).Error; err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	for i := range values {
		values[i].ID = 0
		values[i].AssumptionName = assumptionName
	}
	return db.CreateInBatches(values, valueBatchSize).Error
}

func (s *AssumptionValueStore) List(ctx context.Context, assumptionName string) ([]model.AssumptionValue, error) {
	var values []model.AssumptionValue
	if err := s.getDB(ctx).Where("assumption_name = ?", assumptionName).Order("id").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (s *AssumptionValueStore) Count(ctx context.Context, assumptionName string) (int64, error) {
	var count int64
	err := s.getDB(ctx).Model(&model.AssumptionValue{}).Where("assumption_name = ?", assumptionName).Count(&count).Error
	return count, err
}

func (s *AssumptionValueStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}
