package service

import (
	"math"

	"github.com/samber/lo"

	"github.com/solarbi/savvy-planner/internal/store"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps the row offset of any page within an int.
	MaxPage = math.MaxInt / MaxPageSize
)

type ordering struct {
	Columns     []string
	Default     string
	DefaultDesc bool
}

var (
	AssumptionOrdering    = ordering{Columns: []string{"name"}, Default: "name"}
	SimulationOrdering    = ordering{Columns: []string{"name", "run_id", "status", "created_at"}, Default: "created_at", DefaultDesc: true}
	SimulationLogOrdering = ordering{Columns: []string{"user", "action_object", "action_object_type", "dttm"}, Default: "dttm", DefaultDesc: true}
)

// ListParams carries the paging, ordering and filtering of a list view.
// Page is zero based.
type ListParams struct {
	Page        int
	PageSize    int
	OrderColumn string
	Descending  bool
	Status      string
	Name        string
	User        string
	Action      string
	Assumption  string
}

func (p ListParams) queryOptions(o ordering) (*store.QueryOptions, error) {
	opts := store.NewQueryOptions()

	switch {
	case p.OrderColumn == "":
		opts = opts.WithOrder(o.Default, o.DefaultDesc)
	case lo.Contains(o.Columns, p.OrderColumn):
		opts = opts.WithOrder(p.OrderColumn, p.Descending)
	default:
		return nil, NewErrInvalidOrderColumn(p.OrderColumn, o.Columns)
	}

	if p.Page > MaxPage {
		return nil, NewErrPageOutOfRange(p.Page)
	}

	size := p.Limit()
	return opts.WithLimit(size).WithOffset(max(p.Page, 0) * size), nil
}

// Limit is the effective page size.
func (p ListParams) Limit() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return min(p.PageSize, MaxPageSize)
}

func (p ListParams) assumptionFilter() *store.AssumptionQueryFilter {
	f := store.NewAssumptionQueryFilter()
	if p.Status != "" {
		f = f.ByStatus(p.Status)
	}
	if p.Name != "" {
		f = f.ByNameLike(p.Name)
	}
	return f
}

func (p ListParams) simulationFilter() *store.SimulationQueryFilter {
	f := store.NewSimulationQueryFilter()
	if p.Status != "" {
		f = f.ByStatus(p.Status)
	}
	if p.Name != "" {
		f = f.ByNameLike(p.Name)
	}
	if p.Assumption != "" {
		f = f.ByAssumption(p.Assumption)
	}
	return f
}

func (p ListParams) simulationLogFilter() *store.SimulationLogQueryFilter {
	f := store.NewSimulationLogQueryFilter()
	if p.User != "" {
		f = f.ByUser(p.User)
	}
	if p.Action != "" {
		f = f.ByAction(p.Action)
	}
	if p.Name != "" {
		f = f.ByActionObject(p.Name)
	}
	return f
}
