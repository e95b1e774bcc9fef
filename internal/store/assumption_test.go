package store_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	st "github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

const (
	insertAssumptionStm = "INSERT INTO assumptions (name, status, created_at, updated_at) VALUES ('%s', '%s', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);"
	insertValueStm      = "INSERT INTO assumption_values (assumption_name, sheet, parameter, period, value) VALUES ('%s', 'Assumptions', 'price', '2024', 1.5);"
	insertSimulationStm = "INSERT INTO simulations (run_id, name, assumption_name, status, created_at, updated_at) VALUES ('%s', 'sim', '%s', 'Created', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);"
)

var _ = Describe("assumption store", Ordered, func() {
	var (
		s      st.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		s, gormdb = newTestStore()
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM simulations;")
		gormdb.Exec("DELETE FROM assumption_values;")
		gormdb.Exec("DELETE FROM assumptions;")
	})

	Context("upsert", func() {
		It("creates the row when the name is new", func() {
			a, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1Assumptions", Status: model.AssumptionStatusProcessing})
			Expect(err).To(BeNil())
			Expect(a.Name).To(Equal("Q1Assumptions"))
			Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))
			Expect(a.StatusDetail).To(BeNil())
		})

		It("overwrites the row with the same name", func() {
			detail := "bad sheet"
			link := "/download/Q1"
			tx := gormdb.Exec(fmt.Sprintf(insertAssumptionStm, "Q1", model.AssumptionStatusError))
			Expect(tx.Error).To(BeNil())
			_, err := s.Assumption().UpdateStatus(context.TODO(), "Q1", model.AssumptionStatusError, &detail, &link)
			Expect(err).To(BeNil())

			a, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
			Expect(err).To(BeNil())
			Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))
			Expect(a.StatusDetail).To(BeNil())
			Expect(a.DownloadLink).To(BeNil())

			count := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM assumptions WHERE name = 'Q1';").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(1))
		})
	})

	Context("update status", func() {
		It("sets the terminal status", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertAssumptionStm, "Q1", model.AssumptionStatusProcessing))
			Expect(tx.Error).To(BeNil())

			detail := "boom"
			a, err := s.Assumption().UpdateStatus(context.TODO(), "Q1", model.AssumptionStatusError, &detail, nil)
			Expect(err).To(BeNil())
			Expect(a.Status).To(Equal(model.AssumptionStatusError))
			Expect(*a.StatusDetail).To(Equal("boom"))
		})

		It("fails when the row is missing", func() {
			_, err := s.Assumption().UpdateStatus(context.TODO(), "missing", model.AssumptionStatusSuccess, nil, nil)
			Expect(err).To(MatchError(st.ErrRecordNotFound))
		})
	})

	Context("list", func() {
		BeforeEach(func() {
			for i, status := range []model.AssumptionStatus{model.AssumptionStatusProcessing, model.AssumptionStatusSuccess, model.AssumptionStatusSuccess} {
				tx := gormdb.Exec(fmt.Sprintf(insertAssumptionStm, fmt.Sprintf("budget-%d", i), status))
				Expect(tx.Error).To(BeNil())
			}
			tx := gormdb.Exec(fmt.Sprintf(insertAssumptionStm, "Forecast", model.AssumptionStatusError))
			Expect(tx.Error).To(BeNil())
		})

		It("lists all assumptions ordered by name", func() {
			list, total, err := s.Assumption().List(context.TODO(), nil, nil)
			Expect(err).To(BeNil())
			Expect(total).To(BeNumerically("==", 4))
			Expect(list).To(HaveLen(4))
			Expect(list[0].Name).To(Equal("Forecast"))
		})

		It("filters by status", func() {
			list, total, err := s.Assumption().List(context.TODO(), st.NewAssumptionQueryFilter().ByStatus(string(model.AssumptionStatusSuccess)), nil)
			Expect(err).To(BeNil())
			Expect(total).To(BeNumerically("==", 2))
			Expect(list).To(HaveLen(2))
		})

		It("filters by name case insensitively", func() {
			list, _, err := s.Assumption().List(context.TODO(), st.NewAssumptionQueryFilter().ByNameLike("FORE"), nil)
			Expect(err).To(BeNil())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Name).To(Equal("Forecast"))
		})

		It("paginates and keeps the total", func() {
			opts := st.NewQueryOptions().WithOrder("name", true).WithLimit(2).WithOffset(1)
			list, total, err := s.Assumption().List(context.TODO(), nil, opts)
			Expect(err).To(BeNil())
			Expect(total).To(BeNumerically("==", 4))
			Expect(list).To(HaveLen(2))
			Expect(list[0].Name).To(Equal("budget-1"))
			Expect(list[1].Name).To(Equal("budget-0"))
		})
	})

	Context("delete", func() {
		It("removes values and detaches simulations", func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertAssumptionStm, "Q1", model.AssumptionStatusSuccess)).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertValueStm, "Q1")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertSimulationStm, "run-1", "Q1")).Error).To(BeNil())

			Expect(s.Assumption().Delete(context.TODO(), "Q1")).To(Succeed())

			count := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM assumption_values;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))

			var assumptionName *string
			Expect(gormdb.Raw("SELECT assumption_name FROM simulations WHERE run_id = 'run-1';").Scan(&assumptionName).Error).To(BeNil())
			Expect(assumptionName).To(BeNil())
		})

		It("returns not found for a missing name", func() {
			Expect(s.Assumption().Delete(context.TODO(), "missing")).To(MatchError(st.ErrRecordNotFound))
		})
	})

	Context("values", func() {
		It("replaces the values of an assumption", func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertAssumptionStm, "Q1", model.AssumptionStatusProcessing)).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertValueStm, "Q1")).Error).To(BeNil())

			err := s.AssumptionValue().Replace(context.TODO(), "Q1", []model.AssumptionValue{
				{Sheet: "Assumptions", Parameter: "volume", Period: "2024", Value: 10},
				{Sheet: "Assumptions", Parameter: "volume", Period: "2025", Value: 12},
			})
			Expect(err).To(BeNil())

			values, err := s.AssumptionValue().List(context.TODO(), "Q1")
			Expect(err).To(BeNil())
			Expect(values).To(HaveLen(2))
			Expect(values[0].Parameter).To(Equal("volume"))
			Expect(values[1].Value).To(Equal(12.0))

			count, err := s.AssumptionValue().Count(context.TODO(), "Q1")
			Expect(err).To(BeNil())
			Expect(count).To(BeNumerically("==", 2))
		})
	})
})
