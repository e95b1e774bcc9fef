package assumptions_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

var _ = Describe("processor", Ordered, func() {
	var (
		s       store.Store
		gormdb  *gorm.DB
		objects *storage.FileStore
		dir     string
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = config.DbTypeSqlite
		cfg.Database.Name = "file::memory:"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())
		gormdb = db
		s = store.NewStore(db)
		Expect(s.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		var err error
		objects, err = storage.NewFileStore(GinkgoT().TempDir())
		Expect(err).To(BeNil())

		_, err = s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM assumption_values;")
		gormdb.Exec("DELETE FROM assumptions;")
	})

	It("stores the values and publishes the summary", func() {
		path := writeWorkbook(dir, sheetRows{
			"Prices": {
				{"Parameter", "2024", "2025"},
				{"panel price", 1, 2},
			},
		}, "Prices")

		result, err := assumptions.NewProcessor(s, objects).Process(context.TODO(), path, "Q1")
		Expect(err).To(BeNil())
		Expect(result.Values).To(Equal(2))
		Expect(result.DownloadLink).To(Equal("/assumptionmodelview/download/Q1"))

		count, err := s.AssumptionValue().Count(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(count).To(BeNumerically("==", 2))

		rc, err := objects.Get(context.TODO(), assumptions.ObjectKey("Q1"))
		Expect(err).To(BeNil())
		rc.Close()
	})

	It("keeps the previous values when parsing fails", func() {
		Expect(gormdb.Exec(fmt.Sprintf(
			"INSERT INTO assumption_values (assumption_name, sheet, parameter, period, value) VALUES ('%s', 'Prices', 'old', '2023', 1);", "Q1",
		)).Error).To(BeNil())

		path := writeWorkbook(dir, sheetRows{
			"Prices": {{"Parameter", "2024"}, {"panel price", "n/a"}},
		}, "Prices")

		_, err := assumptions.NewProcessor(s, objects).Process(context.TODO(), path, "Q1")
		Expect(err).ToNot(BeNil())

		values, err := s.AssumptionValue().List(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(values).To(HaveLen(1))
		Expect(values[0].Parameter).To(Equal("old"))

		_, err = objects.Get(context.TODO(), assumptions.ObjectKey("Q1"))
		Expect(err).To(MatchError(storage.ErrObjectNotFound))
	})

	It("escapes the name in the download link", func() {
		Expect(assumptions.DownloadLink("Q1 base")).To(Equal("/assumptionmodelview/download/Q1%20base"))
	})
})
