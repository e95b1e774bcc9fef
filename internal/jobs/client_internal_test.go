package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/riverqueue/river/rivertype"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

type noopProcessor struct{}

func (noopProcessor) Process(ctx context.Context, path, name string) (*assumptions.Result, error) {
	return nil, errors.New("not expected")
}

var _ = Describe("river error handler", Ordered, func() {
	var (
		s       store.Store
		handler *errorHandler
		upload  string
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = config.DbTypeSqlite
		cfg.Database.Name = "file::memory:"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		Expect(s.InitialMigration(context.TODO())).To(Succeed())
		handler = &errorHandler{handler: NewHandler(s, noopProcessor{})}
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		upload = filepath.Join(GinkgoT().TempDir(), "assumption-1.xlsx")
		Expect(os.WriteFile(upload, []byte("data"), 0o600)).To(Succeed())

		_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
		Expect(err).To(BeNil())
	})

	It("marks the assumption failed when a job panics", func() {
		args, err := json.Marshal(AssumptionArgs{Path: upload, Name: "Q1"})
		Expect(err).To(BeNil())

		result := handler.HandlePanic(context.TODO(), &rivertype.JobRow{ID: 7, Attempt: 1, EncodedArgs: args}, "boom", "trace")
		Expect(result).To(BeNil())

		a, err := s.Assumption().Get(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(a.Status).To(Equal(model.AssumptionStatusError))
		Expect(*a.StatusDetail).To(Equal("processing panicked: boom"))

		_, err = os.Stat(upload)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("leaves the assumption alone when the job args cannot be decoded", func() {
		result := handler.HandlePanic(context.TODO(), &rivertype.JobRow{ID: 8, EncodedArgs: []byte("{")}, "boom", "trace")
		Expect(result).To(BeNil())

		a, err := s.Assumption().Get(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))
	})

	It("only logs plain job errors", func() {
		result := handler.HandleError(context.TODO(), &rivertype.JobRow{ID: 9, Attempt: 3}, errors.New("timeout"))
		Expect(result).To(BeNil())
	})
})
