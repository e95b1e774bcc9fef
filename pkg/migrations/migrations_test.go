package migrations_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
	"github.com/solarbi/savvy-planner/pkg/migrations"
)

var _ = Describe("migrations", func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeEach(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = config.DbTypeSqlite
		cfg.Database.Name = "file::memory:"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		gormdb = db
	})

	AfterEach(func() {
		s.Close()
	})

	tableExists := func(name string) bool {
		var count int64
		tx := gormdb.Raw(fmt.Sprintf("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = '%s';", name)).Scan(&count)
		Expect(tx.Error).To(BeNil())
		return count == 1
	}

	It("fails to migrate the db -- migration folder does not exist", func() {
		err := migrations.MigrateStore(gormdb, config.DbTypeSqlite, "some folder")
		Expect(err).NotTo(BeNil())
	})

	It("fails to migrate the db -- migration folder is a file", func() {
		file := filepath.Join(GinkgoT().TempDir(), "file.sql")
		Expect(os.WriteFile(file, []byte("SELECT 1;"), 0o600)).To(Succeed())

		err := migrations.MigrateStore(gormdb, config.DbTypeSqlite, file)
		Expect(err).To(MatchError(ContainSubstring("is not a folder")))
	})

	It("successfully migrates the db with the embedded migrations", func() {
		Expect(migrations.MigrateStore(gormdb, config.DbTypeSqlite, "")).To(Succeed())

		for _, table := range []string{"assumptions", "assumption_values", "simulations", "simulation_logs", "goose_db_version"} {
			Expect(tableExists(table)).To(BeTrue(), table)
		}
	})

	It("is idempotent", func() {
		Expect(migrations.MigrateStore(gormdb, config.DbTypeSqlite, "")).To(Succeed())
		Expect(migrations.MigrateStore(gormdb, config.DbTypeSqlite, "")).To(Succeed())
	})

	It("creates a schema the store can use", func() {
		Expect(migrations.MigrateStore(gormdb, config.DbTypeSqlite, "")).To(Succeed())

		_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
		Expect(err).To(BeNil())

		_, err = s.Simulation().Create(context.TODO(), model.Simulation{RunID: "run-1", Name: "sim", Status: model.SimulationStatusCreated})
		Expect(err).To(BeNil())
		_, err = s.Simulation().Create(context.TODO(), model.Simulation{RunID: "run-1", Name: "sim", Status: model.SimulationStatusCreated})
		Expect(err).To(MatchError(store.ErrDuplicateKey))
	})

	It("runs migrations from a folder", func() {
		dir := GinkgoT().TempDir()
		content := "-- +goose Up\nCREATE TABLE extra (id INTEGER PRIMARY KEY);\n\n-- +goose Down\nDROP TABLE extra;\n"
		Expect(os.WriteFile(filepath.Join(dir, "00001_extra.sql"), []byte(content), 0o600)).To(Succeed())

		Expect(migrations.MigrateStore(gormdb, config.DbTypeSqlite, dir)).To(Succeed())
		Expect(tableExists("extra")).To(BeTrue())
		Expect(tableExists("assumptions")).To(BeFalse())
	})
})
