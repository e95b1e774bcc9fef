package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/audit"
	"github.com/solarbi/savvy-planner/internal/service"
	"github.com/solarbi/savvy-planner/internal/service/mappers"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

var _ = Describe("simulation service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.SimulationService
		logs   *service.SimulationLogService
	)

	BeforeAll(func() {
		s, gormdb = newTestStore()
		srv = service.NewSimulationService(s, audit.NewRecorder(s))
		logs = service.NewSimulationLogService(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM simulation_logs;")
		gormdb.Exec("DELETE FROM simulations;")
		gormdb.Exec("DELETE FROM assumptions;")
	})

	It("creates a simulation with defaults", func() {
		sim, err := srv.Create(context.TODO(), mappers.SimulationForm{Name: "base case"})
		Expect(err).To(BeNil())
		Expect(sim.RunID).ToNot(BeEmpty())
		Expect(sim.Status).To(Equal(model.SimulationStatusCreated))

		entries, total, err := logs.List(context.TODO(), service.ListParams{})
		Expect(err).To(BeNil())
		Expect(total).To(BeNumerically("==", 1))
		Expect(entries[0].Action).To(Equal("create simulation"))
		Expect(entries[0].ActionObject).To(Equal("base case"))
		Expect(entries[0].ActionObjectType).To(Equal("Simulation"))
	})

	It("rejects an unknown assumption", func() {
		name := "missing"
		_, err := srv.Create(context.TODO(), mappers.SimulationForm{Name: "x", AssumptionName: &name})
		var notFound *service.ErrResourceNotFound
		Expect(errors.As(err, &notFound)).To(BeTrue())

		entries, _, err := logs.List(context.TODO(), service.ListParams{})
		Expect(err).To(BeNil())
		Expect(entries[0].Result).To(Equal(model.ActionResultFailed))
	})

	It("rejects a duplicate run id", func() {
		_, err := srv.Create(context.TODO(), mappers.SimulationForm{RunID: "run-1", Name: "a"})
		Expect(err).To(BeNil())
		_, err = srv.Create(context.TODO(), mappers.SimulationForm{RunID: "run-1", Name: "b"})
		var duplicate *service.ErrDuplicateRunID
		Expect(errors.As(err, &duplicate)).To(BeTrue())
	})

	It("links, updates and deletes a simulation", func() {
		_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusSuccess})
		Expect(err).To(BeNil())

		name := "Q1"
		sim, err := srv.Create(context.TODO(), mappers.SimulationForm{Name: "a", AssumptionName: &name})
		Expect(err).To(BeNil())

		updated, err := srv.Update(context.TODO(), sim.ID, mappers.SimulationForm{Name: "renamed", Status: "Running", AssumptionName: &name})
		Expect(err).To(BeNil())
		Expect(updated.Name).To(Equal("renamed"))
		Expect(updated.Status).To(Equal("Running"))
		Expect(*updated.AssumptionName).To(Equal("Q1"))

		list, _, err := srv.List(context.TODO(), service.ListParams{Assumption: "Q1"})
		Expect(err).To(BeNil())
		Expect(list).To(HaveLen(1))

		Expect(srv.Delete(context.TODO(), sim.ID)).To(Succeed())
		_, err = srv.Get(context.TODO(), sim.ID)
		var notFound *service.ErrResourceNotFound
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})

	It("returns not found for a missing log entry", func() {
		_, err := logs.Get(context.TODO(), 42)
		var notFound *service.ErrResourceNotFound
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})
})
