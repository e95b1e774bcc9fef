package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	api "github.com/solarbi/savvy-planner/api/v1"
	apiserver "github.com/solarbi/savvy-planner/internal/api_server"
	"github.com/solarbi/savvy-planner/internal/client"
	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/pkg/metrics"
	"github.com/solarbi/savvy-planner/pkg/migrations"
)

var _ = Describe("client", Ordered, func() {
	var (
		s      store.Store
		srv    *httptest.Server
		c      *client.Client
		cancel context.CancelFunc
		done   chan error
		dir    string
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = config.DbTypeSqlite
		cfg.Database.Name = "file::memory:"
		cfg.Service.UploadFolder = GinkgoT().TempDir()
		cfg.Service.OutputFolder = GinkgoT().TempDir()
		cfg.Service.Auth.AuthenticationType = "none"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())
		Expect(migrations.MigrateStore(db, cfg.Database.Type, "")).To(Succeed())
		s = store.NewStore(db)

		objects, err := storage.New(context.TODO(), cfg)
		Expect(err).To(BeNil())
		queue, run, err := apiserver.NewTaskQueue(cfg, s, objects)
		Expect(err).To(BeNil())

		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
		go func() { done <- run(ctx) }()

		handler, err := apiserver.New(cfg, s, nil, queue, objects).Handler(metrics.NewMiddleware("client_test", nil))
		Expect(err).To(BeNil())
		srv = httptest.NewServer(handler)

		c, err = client.New(srv.URL, client.WithToken("ignored"))
		Expect(err).To(BeNil())

		dir = GinkgoT().TempDir()
	})

	AfterAll(func() {
		srv.Close()
		cancel()
		Eventually(done).Should(Receive())
		s.Close()
	})

	writeWorkbook := func(name string) string {
		f := excelize.NewFile()
		defer f.Close()
		Expect(f.SetSheetRow("Sheet1", "A1", &[]any{"Parameter", "2024"})).To(Succeed())
		Expect(f.SetSheetRow("Sheet1", "A2", &[]any{"panel price", 200})).To(Succeed())
		path := filepath.Join(dir, name)
		Expect(f.SaveAs(path)).To(Succeed())
		return path
	}

	It("rejects a bad server url", func() {
		_, err := client.New("localhost")
		Expect(err).NotTo(BeNil())
	})

	It("uploads a workbook and reads the result", func() {
		result, err := c.UploadAssumption(context.TODO(), "Q1", writeWorkbook("q1.xlsx"))
		Expect(err).To(BeNil())
		Expect(result.Failed).To(BeFalse())
		Expect(result.Flashes).To(HaveLen(2))
		Expect(result.Flashes[0].Message).To(Equal("Upload success"))
		Expect(result.Flashes[1].Message).To(HavePrefix("Time used:"))

		Eventually(func() api.AssumptionStatus {
			resp, err := c.GetAssumptionWithResponse(context.TODO(), "Q1")
			if err != nil || resp.JSON200 == nil {
				return ""
			}
			return resp.JSON200.Status
		}).Should(Equal(api.AssumptionStatusSuccess))
	})

	It("surfaces the form errors", func() {
		path := filepath.Join(dir, "q1.csv")
		Expect(os.WriteFile(path, []byte("a,b"), 0o600)).To(Succeed())

		_, err := c.UploadAssumption(context.TODO(), "Q1", path)
		Expect(err).To(MatchError(ContainSubstring("File type is not allowed.")))
		Expect(err).To(BeAssignableToTypeOf(&client.ResponseError{}))
	})

	It("fails on a missing file", func() {
		_, err := c.UploadAssumption(context.TODO(), "Q1", filepath.Join(dir, "missing.xlsx"))
		Expect(err).To(MatchError(ContainSubstring("opening assumption file")))
	})

	It("lists assumptions with a filter", func() {
		resp, err := c.ListAssumptionsWithResponse(context.TODO(), &api.ListAssumptionsParams{Name: lo.ToPtr("q1")})
		Expect(err).To(BeNil())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))
		Expect(resp.JSON200.Count).To(BeNumerically("==", 1))
		Expect(resp.JSON200.Result[0].Name).To(Equal("Q1"))
	})

	It("lists the audit log", func() {
		resp, err := c.ListSimulationLogsWithResponse(context.TODO(), nil)
		Expect(err).To(BeNil())
		Expect(resp.JSON200.Result).NotTo(BeEmpty())
		Expect(resp.JSON200.Result[0].Action).To(Equal("upload assumption"))
	})

	It("gets the validation error of a bad query", func() {
		resp, err := c.ListSimulationsWithResponse(context.TODO(), &api.ListSimulationsParams{PageSize: lo.ToPtr(-1)})
		Expect(err).To(BeNil())
		Expect(resp.StatusCode()).To(Equal(http.StatusBadRequest))
		Expect(resp.JSON400).NotTo(BeNil())
		Expect(resp.JSON400.Message).To(ContainSubstring("page_size"))
	})

	It("creates and deletes a simulation", func() {
		created, err := c.CreateSimulationWithResponse(context.TODO(), api.SimulationCreate{Name: "base case", Assumption: lo.ToPtr("Q1")})
		Expect(err).To(BeNil())
		Expect(created.StatusCode()).To(Equal(http.StatusCreated))
		Expect(created.JSON201.RunId).NotTo(BeEmpty())

		deleted, err := c.DeleteSimulationWithResponse(context.TODO(), created.JSON201.Id)
		Expect(err).To(BeNil())
		Expect(deleted.StatusCode()).To(Equal(http.StatusOK))
	})

	It("deletes an assumption", func() {
		resp, err := c.DeleteAssumptionWithResponse(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))

		get, err := c.GetAssumptionWithResponse(context.TODO(), "Q1")
		Expect(err).To(BeNil())
		Expect(get.StatusCode()).To(Equal(http.StatusNotFound))
	})

	It("reports 404 with the server message", func() {
		resp, err := c.DeleteSimulationWithResponse(context.TODO(), 42)
		Expect(err).To(BeNil())
		Expect(resp.JSON404).NotTo(BeNil())
		Expect(resp.JSON404.Message).To(ContainSubstring("simulation 42 not found"))
		Expect(resp.JSON404.RequestId).NotTo(BeNil())

		re := client.NewResponseError(resp.HTTPResponse, resp.Body)
		Expect(client.IsNotFound(re)).To(BeTrue())
		Expect(re.RequestID).To(Equal(*resp.JSON404.RequestId))
	})
})
