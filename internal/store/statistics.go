package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type statusCount struct {
	Status string
	Total  int
}

func (s *DataStore) Statistics(ctx context.Context) (model.Statistics, error) {
	db := s.db.WithContext(ctx)

	var byStatus []statusCount
	if err := db.Model(&model.Assumption{}).Select("status, COUNT(*) AS total").Group("status").Scan(&byStatus).Error; err != nil {
		return model.Statistics{}, err
	}

	stats := model.Statistics{Assumptions: model.AssumptionStats{ByStatus: make(map[string]int)}}
	for _, c := range byStatus {
		stats.Assumptions.ByStatus[c.Status] = c.Total
		stats.Assumptions.Total += c.Total
	}

	counts := []struct {
		model any
		dst   *int
	}{
		{&model.AssumptionValue{}, &stats.TotalValues},
		{&model.Simulation{}, &stats.TotalSimulations},
		{&model.SimulationLog{}, &stats.TotalLogs},
	}
	for _, c := range counts {
		total, err := count(db, c.model)
		if err != nil {
			return model.Statistics{}, err
		}
		*c.dst = int(total)
	}

	return stats, nil
}

func count(db *gorm.DB, m any) (int64, error) {
	var total int64
	err := db.Model(m).Count(&total).Error
	return total, err
}
