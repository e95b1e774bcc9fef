package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

func (b *BaseQuerier) apply(tx *gorm.DB) *gorm.DB {
	if b == nil {
		return tx
	}
	for _, fn := range b.QueryFn {
		tx = fn(tx)
	}
	return tx
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

type AssumptionQueryFilter BaseQuerier

func NewAssumptionQueryFilter() *AssumptionQueryFilter {
	return &AssumptionQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *AssumptionQueryFilter) ByStatus(status string) *AssumptionQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return f
}

func (f *AssumptionQueryFilter) ByNameLike(pattern string) *AssumptionQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE ?", likePattern(pattern))
	})
	return f
}

type SimulationQueryFilter BaseQuerier

func NewSimulationQueryFilter() *SimulationQueryFilter {
	return &SimulationQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *SimulationQueryFilter) ByAssumption(name string) *SimulationQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("assumption_name = ?", name)
	})
	return f
}

func (f *SimulationQueryFilter) ByStatus(status string) *SimulationQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return f
}

func (f *SimulationQueryFilter) ByNameLike(pattern string) *SimulationQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE ?", likePattern(pattern))
	})
	return f
}

type SimulationLogQueryFilter BaseQuerier

func NewSimulationLogQueryFilter() *SimulationLogQueryFilter {
	return &SimulationLogQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *SimulationLogQueryFilter) ByUser(user string) *SimulationLogQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where(`"user" = ?`, user)
	})
	return f
}

func (f *SimulationLogQueryFilter) ByAction(action string) *SimulationLogQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("action = ?", action)
	})
	return f
}

func (f *SimulationLogQueryFilter) ByActionObject(object string) *SimulationLogQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("action_object = ?", object)
	})
	return f
}

// QueryOptions holds pagination and ordering. They are applied after the
// total count is taken.
type QueryOptions BaseQuerier

func NewQueryOptions() *QueryOptions {
	return &QueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *QueryOptions) WithLimit(limit int) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *QueryOptions) WithOffset(offset int) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}

// WithOrder orders by column. column must come from an allow-list: it is
// quoted but not otherwise checked.
func (o *QueryOptions) WithOrder(column string, desc bool) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		direction := "ASC"
		if desc {
			direction = "DESC"
		}
		return tx.Order(fmt.Sprintf("%q %s", column, direction))
	})
	return o
}
