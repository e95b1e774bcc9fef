package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/audit"
	"github.com/solarbi/savvy-planner/internal/auth"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/service"
	"github.com/solarbi/savvy-planner/internal/service/mappers"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

var _ = Describe("assumption service", Ordered, func() {
	var (
		s       store.Store
		gormdb  *gorm.DB
		queue   *fakeQueue
		objects *storage.FileStore
		folder  string
		srv     *service.AssumptionService
		ctx     context.Context
	)

	BeforeAll(func() {
		s, gormdb = newTestStore()
		ctx = auth.NewUserContext(context.TODO(), auth.User{Username: "alice"})
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		queue = &fakeQueue{}
		folder = filepath.Join(GinkgoT().TempDir(), "uploads")
		var err error
		objects, err = storage.NewFileStore(GinkgoT().TempDir())
		Expect(err).To(BeNil())
		srv = service.NewAssumptionService(s, queue, objects, audit.NewRecorder(s), folder, 4)
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM simulation_logs;")
		gormdb.Exec("DELETE FROM assumptions;")
	})

	uploadedFiles := func() []os.DirEntry {
		entries, err := os.ReadDir(folder)
		if os.IsNotExist(err) {
			return nil
		}
		Expect(err).To(BeNil())
		return entries
	}

	Context("upload", func() {
		It("stores the file, queues it and marks the assumption Processing", func() {
			result := srv.Upload(ctx, mappers.UploadForm{Name: "Q1", Filename: "Budget.XLSX", File: strings.NewReader("workbook content")})
			Expect(result.Failed).To(BeFalse())
			Expect(result.Message).To(Equal("Upload success"))
			Expect(filepath.Ext(result.Path)).To(Equal(".xlsx"))

			content, err := os.ReadFile(result.Path)
			Expect(err).To(BeNil())
			Expect(string(content)).To(Equal("workbook content"))

			Expect(queue.jobs).To(HaveLen(1))
			Expect(queue.jobs[0].Path).To(Equal(result.Path))
			Expect(queue.jobs[0].Name).To(Equal("Q1"))

			a, err := s.Assumption().Get(context.TODO(), "Q1")
			Expect(err).To(BeNil())
			Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))

			logs, _, err := s.SimulationLog().List(context.TODO(), nil, nil)
			Expect(err).To(BeNil())
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].User).To(Equal("alice"))
			Expect(logs[0].Action).To(Equal("upload assumption"))
			Expect(logs[0].Result).To(Equal(model.ActionResultSuccess))
		})

		It("overwrites a previous upload with the same name", func() {
			_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
			Expect(err).To(BeNil())
			detail := "bad sheet"
			_, err = s.Assumption().UpdateStatus(context.TODO(), "Q1", model.AssumptionStatusError, &detail, nil)
			Expect(err).To(BeNil())

			result := srv.Upload(ctx, mappers.UploadForm{Name: "Q1", Filename: "q1.xlsx", File: strings.NewReader("v2")})
			Expect(result.Failed).To(BeFalse())

			list, total, err := s.Assumption().List(context.TODO(), nil, nil)
			Expect(err).To(BeNil())
			Expect(total).To(BeNumerically("==", 1))
			Expect(list[0].Status).To(Equal(model.AssumptionStatusProcessing))
			Expect(list[0].StatusDetail).To(BeNil())
		})

		It("removes the file and stores nothing when queueing fails", func() {
			queue.err = errors.New("queue unavailable")

			result := srv.Upload(ctx, mappers.UploadForm{Name: "Q1", Filename: "q1.xlsx", File: strings.NewReader("data")})
			Expect(result.Failed).To(BeTrue())
			Expect(result.Message).To(Equal("Upload failed:queue unavailable"))
			Expect(uploadedFiles()).To(BeEmpty())

			_, err := s.Assumption().Get(context.TODO(), "Q1")
			Expect(err).To(MatchError(store.ErrRecordNotFound))

			logs, _, err := s.SimulationLog().List(context.TODO(), nil, nil)
			Expect(err).To(BeNil())
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].Result).To(Equal(model.ActionResultFailed))
			Expect(*logs[0].Detail).To(Equal("Upload failed:queue unavailable"))
		})

		It("fails the upload when the local queue is full", func() {
			local := jobs.NewLocalQueue(jobs.NewHandler(s, assumptions.NewProcessor(s, objects)), 1, 1)
			srv = service.NewAssumptionService(s, local, objects, audit.NewRecorder(s), folder, 4)

			first := srv.Upload(ctx, mappers.UploadForm{Name: "Q1", Filename: "q1.xlsx", File: strings.NewReader("data")})
			Expect(first.Failed).To(BeFalse())

			second := srv.Upload(ctx, mappers.UploadForm{Name: "Q2", Filename: "q2.xlsx", File: strings.NewReader("data")})
			Expect(second.Failed).To(BeTrue())
			Expect(second.Message).To(Equal("Upload failed:task queue is full"))
			Expect(uploadedFiles()).To(HaveLen(1))

			_, err := s.Assumption().Get(context.TODO(), "Q2")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("removes the partial file when the stream breaks", func() {
			result := srv.Upload(ctx, mappers.UploadForm{Name: "Q1", Filename: "q1.xlsx", File: io.MultiReader(strings.NewReader("part"), failingReader{})})
			Expect(result.Failed).To(BeTrue())
			Expect(result.Message).To(ContainSubstring("connection reset"))
			Expect(uploadedFiles()).To(BeEmpty())
			Expect(queue.jobs).To(BeEmpty())
		})
	})

	Context("views", func() {
		BeforeEach(func() {
			for _, name := range []string{"b", "a", "c"} {
				_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: name, Status: model.AssumptionStatusProcessing})
				Expect(err).To(BeNil())
			}
		})

		It("lists ordered by name with paging", func() {
			list, total, err := srv.List(context.TODO(), service.ListParams{PageSize: 2, Page: 1})
			Expect(err).To(BeNil())
			Expect(total).To(BeNumerically("==", 3))
			Expect(list).To(HaveLen(1))
			Expect(list[0].Name).To(Equal("c"))
		})

		It("rejects a page whose offset would overflow", func() {
			_, _, err := srv.List(context.TODO(), service.ListParams{Page: math.MaxInt / 2, PageSize: 100})
			var invalid *service.ErrInvalidParameter
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(err.Error()).To(HavePrefix("page "))

			list, _, err := srv.List(context.TODO(), service.ListParams{Page: service.MaxPage, PageSize: 100})
			Expect(err).To(BeNil())
			Expect(list).To(BeEmpty())
		})

		It("rejects an unknown order column", func() {
			_, _, err := srv.List(context.TODO(), service.ListParams{OrderColumn: "status_detail"})
			var invalid *service.ErrInvalidParameter
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("returns not found for a missing assumption", func() {
			_, err := srv.Get(context.TODO(), "missing")
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("updates the detail", func() {
			detail := "checked by hand"
			a, err := srv.Update(context.TODO(), "a", mappers.AssumptionUpdateForm{StatusDetail: &detail})
			Expect(err).To(BeNil())
			Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))
			Expect(*a.StatusDetail).To(Equal(detail))
		})

		It("rejects an invalid status", func() {
			status := "Done"
			_, err := srv.Update(context.TODO(), "a", mappers.AssumptionUpdateForm{Status: &status})
			var invalid *service.ErrInvalidStatus
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("deletes the assumption and its output", func() {
			Expect(objects.Put(context.TODO(), assumptions.ObjectKey("a"), bytes.NewReader([]byte("x")), 1)).To(Succeed())

			Expect(srv.Delete(ctx, "a")).To(Succeed())

			_, err := s.Assumption().Get(context.TODO(), "a")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
			_, err = objects.Get(context.TODO(), assumptions.ObjectKey("a"))
			Expect(err).To(MatchError(storage.ErrObjectNotFound))
		})

		It("refuses to download an unprocessed assumption", func() {
			_, err := srv.Download(context.TODO(), "a")
			var unavailable *service.ErrOutputNotAvailable
			Expect(errors.As(err, &unavailable)).To(BeTrue())
		})

		It("downloads the output of a processed assumption", func() {
			link := assumptions.DownloadLink("a")
			_, err := s.Assumption().UpdateStatus(context.TODO(), "a", model.AssumptionStatusSuccess, nil, &link)
			Expect(err).To(BeNil())
			Expect(objects.Put(context.TODO(), assumptions.ObjectKey("a"), bytes.NewReader([]byte("xlsx")), 4)).To(Succeed())

			rc, err := srv.Download(context.TODO(), "a")
			Expect(err).To(BeNil())
			defer rc.Close()
			content, _ := io.ReadAll(rc)
			Expect(string(content)).To(Equal("xlsx"))
		})
	})
})
