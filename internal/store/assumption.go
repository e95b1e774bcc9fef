package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type Assumption interface {
	List(ctx context.Context, filter *AssumptionQueryFilter, opts *QueryOptions) (model.AssumptionList, int64, error)
	Get(ctx context.Context, name string) (*model.Assumption, error)
	Upsert(ctx context.Context, assumption model.Assumption) (*model.Assumption, error)
	UpdateStatus(ctx context.Context, name string, status model.AssumptionStatus, detail, downloadLink *string) (*model.Assumption, error)
	Delete(ctx context.Context, name string) error
}

type AssumptionStore struct {
	db *gorm.DB
}

// Make sure we conform to Assumption interface
var _ Assumption = (*AssumptionStore)(nil)

func NewAssumptionStore(db *gorm.DB) Assumption {
	return &AssumptionStore{db: db}
}

func (a *AssumptionStore) List(ctx context.Context, filter *AssumptionQueryFilter, opts *QueryOptions) (model.AssumptionList, int64, error) {
	var (
		assumptions model.AssumptionList
		total       int64
	)

	query := func() *gorm.DB {
		return (*BaseQuerier)(filter).apply(a.getDB(ctx).Model(&model.Assumption{}))
	}
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := query()
	if opts == nil {
		tx = tx.Order("name")
	}
	if err := (*BaseQuerier)(opts).apply(tx).Find(&assumptions).Error; err != nil {
		return nil, 0, err
	}

	return assumptions, total, nil
}

func (a *AssumptionStore) Get(ctx context.Context, name string) (*model.Assumption, error) {
	var assumption model.Assumption
	result := a.getDB(ctx).First(&assumption, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &assumption, nil
}

// Upsert inserts the assumption or overwrites the row with the same name.
func (a *AssumptionStore) Upsert(ctx context.Context, assumption model.Assumption) (*model.Assumption, error) {
	assumption.UpdatedAt = time.Now()
	result := a.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "status_detail", "download_link", "updated_at"}),
	}).Create(&assumption)
	if result.Error != nil {
		return nil, result.Error
	}

	return a.Get(ctx, assumption.Name)
}

func (a *AssumptionStore) UpdateStatus(ctx context.Context, name string, status model.AssumptionStatus, detail, downloadLink *string) (*model.Assumption, error) {
	result := a.getDB(ctx).Model(&model.Assumption{}).Where("name = ?", name).Updates(map[string]any{
		"status":        status,
		"status_detail": detail,
		"download_link": downloadLink,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return a.Get(ctx, name)
}

// Delete removes the assumption and its values and detaches simulations
// referencing it.
func (a *AssumptionStore) Delete(ctx context.Context, name string) error {
	db := a.getDB(ctx)

	if err := db.Where("assumption_name = ?", name).Delete(&model.AssumptionValue{}).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Simulation{}).Where("assumption_name = ?", name).Update("assumption_name", nil).Error; err != nil {
		return err
	}

	result := db.Delete(&model.Assumption{}, "name = ?", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (a *AssumptionStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return a.db.WithContext(ctx)
}
