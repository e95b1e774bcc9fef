package jobs_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

var _ = Describe("LocalQueue", Ordered, func() {
	var (
		s         store.Store
		gormdb    *gorm.DB
		processed atomic.Int32
		handler   *jobs.Handler
	)

	BeforeAll(func() {
		s, gormdb = newTestStore()
		handler = jobs.NewHandler(s, processorFunc(func(ctx context.Context, path, name string) (*assumptions.Result, error) {
			processed.Add(1)
			return succeed(ctx, path, name)
		}))
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		processed.Store(0)
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM assumptions;")
	})

	newUpload := func() string {
		p := filepath.Join(GinkgoT().TempDir(), "assumption.xlsx")
		Expect(os.WriteFile(p, []byte("data"), 0o600)).To(Succeed())
		return p
	}

	start := func(q *jobs.LocalQueue) (context.CancelFunc, chan error) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Run(ctx) }()
		return cancel, done
	}

	It("processes a job enqueued outside a transaction", func() {
		q := jobs.NewLocalQueue(handler, 2, 10)
		cancel, done := start(q)
		defer func() { cancel(); Eventually(done).Should(Receive()) }()

		_, err := s.Assumption().Upsert(context.TODO(), model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
		Expect(err).To(BeNil())

		path := newUpload()
		Expect(q.EnqueueAssumption(context.TODO(), path, "Q1")).To(Succeed())

		Eventually(func() model.AssumptionStatus {
			a, err := s.Assumption().Get(context.TODO(), "Q1")
			if err != nil {
				return ""
			}
			return a.Status
		}).WithTimeout(5 * time.Second).Should(Equal(model.AssumptionStatusSuccess))

		Eventually(func() bool {
			_, err := os.Stat(path)
			return os.IsNotExist(err)
		}).Should(BeTrue())
	})

	It("releases the job only when the transaction commits", func() {
		q := jobs.NewLocalQueue(handler, 1, 10)
		cancel, done := start(q)
		defer func() { cancel(); Eventually(done).Should(Receive()) }()

		ctx, err := s.NewTransactionContext(context.TODO())
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(ctx, newUpload(), "Q1")).To(Succeed())
		_, err = s.Assumption().Upsert(ctx, model.Assumption{Name: "Q1", Status: model.AssumptionStatusProcessing})
		Expect(err).To(BeNil())

		Consistently(processed.Load).WithTimeout(200 * time.Millisecond).Should(BeZero())

		_, err = store.Commit(ctx)
		Expect(err).To(BeNil())

		Eventually(processed.Load).WithTimeout(5 * time.Second).Should(BeEquivalentTo(1))
	})

	It("drops the job when the transaction rolls back", func() {
		q := jobs.NewLocalQueue(handler, 1, 10)
		cancel, done := start(q)
		defer func() { cancel(); Eventually(done).Should(Receive()) }()

		ctx, err := s.NewTransactionContext(context.TODO())
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(ctx, newUpload(), "Q1")).To(Succeed())

		_, err = store.Rollback(ctx)
		Expect(err).To(BeNil())

		Consistently(processed.Load).WithTimeout(200 * time.Millisecond).Should(BeZero())
	})

	It("rejects jobs beyond its capacity", func() {
		q := jobs.NewLocalQueue(handler, 1, 1)

		Expect(q.EnqueueAssumption(context.TODO(), newUpload(), "Q1")).To(Succeed())
		Expect(q.EnqueueAssumption(context.TODO(), newUpload(), "Q2")).To(MatchError(jobs.ErrQueueFull))
	})

	It("counts jobs held by an open transaction against its capacity", func() {
		q := jobs.NewLocalQueue(handler, 1, 1)

		ctx, err := s.NewTransactionContext(context.TODO())
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(ctx, newUpload(), "Q1")).To(Succeed())

		other, err := s.NewTransactionContext(context.TODO())
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(other, newUpload(), "Q2")).To(MatchError(jobs.ErrQueueFull))
		_, err = store.Rollback(other)
		Expect(err).To(BeNil())

		_, err = store.Commit(ctx)
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(context.TODO(), newUpload(), "Q3")).To(MatchError(jobs.ErrQueueFull))
	})

	It("frees the slot when the transaction rolls back", func() {
		q := jobs.NewLocalQueue(handler, 1, 1)

		ctx, err := s.NewTransactionContext(context.TODO())
		Expect(err).To(BeNil())
		Expect(q.EnqueueAssumption(ctx, newUpload(), "Q1")).To(Succeed())
		_, err = store.Rollback(ctx)
		Expect(err).To(BeNil())

		Expect(q.EnqueueAssumption(context.TODO(), newUpload(), "Q2")).To(Succeed())
	})

	It("rejects jobs once stopped", func() {
		q := jobs.NewLocalQueue(handler, 1, 1)
		cancel, done := start(q)
		cancel()
		Eventually(done).Should(Receive(BeNil()))

		Expect(q.EnqueueAssumption(context.TODO(), newUpload(), "Q1")).To(MatchError(jobs.ErrQueueClosed))
	})
})
