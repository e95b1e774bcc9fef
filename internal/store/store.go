package store

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Assumption() Assumption
	AssumptionValue() AssumptionValue
	Simulation() Simulation
	SimulationLog() SimulationLog
	InitialMigration(ctx context.Context) error
	Statistics(ctx context.Context) (model.Statistics, error)
	SqlDB() (*sql.DB, error)
	Close() error
}

type DataStore struct {
	db              *gorm.DB
	assumption      Assumption
	assumptionValue AssumptionValue
	simulation      Simulation
	simulationLog   SimulationLog
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:              db,
		assumption:      NewAssumptionStore(db),
		assumptionValue: NewAssumptionValueStore(db),
		simulation:      NewSimulationStore(db),
		simulationLog:   NewSimulationLogStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Assumption() Assumption {
	return s.assumption
}

func (s *DataStore) AssumptionValue() AssumptionValue {
	return s.assumptionValue
}

func (s *DataStore) Simulation() Simulation {
	return s.simulation
}

func (s *DataStore) SimulationLog() SimulationLog {
	return s.simulationLog
}

// InitialMigration creates the schema from the models. Postgres deployments
// run the goose migrations instead (see pkg/migrations).
func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&model.Assumption{},
		&model.AssumptionValue{},
		&model.Simulation{},
		&model.SimulationLog{},
	)
}

func (s *DataStore) SqlDB() (*sql.DB, error) {
	return s.db.DB()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
