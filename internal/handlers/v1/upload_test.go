package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/gorilla/securecookie"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

var _ = Describe("upload handler", Ordered, func() {
	var env *testEnv

	BeforeAll(func() {
		env = newTestEnv()
	})

	AfterAll(func() {
		env.store.Close()
	})

	AfterEach(func() {
		env.db.Exec("DELETE FROM assumptions;")
		env.db.Exec("DELETE FROM simulation_logs;")
		env.queue.mu.Lock()
		env.queue.jobs = nil
		env.queue.err = nil
		env.queue.mu.Unlock()
	})

	countAssumptions := func() int64 {
		var count int64
		Expect(env.db.Model(&model.Assumption{}).Count(&count).Error).To(BeNil())
		return count
	}

	post := func(name, filename string) *httptest.ResponseRecorder {
		body, contentType := multipartBody(name, filename, []byte("workbook"))
		req := httptest.NewRequest(http.MethodPost, "/upload_assumption_file/form", body)
		req.Header.Set("Content-Type", contentType)
		return env.do(req)
	}

	followFlash := func(rec *httptest.ResponseRecorder) string {
		req := httptest.NewRequest(http.MethodGet, "/upload_assumption_file/form", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		page := env.do(req)
		Expect(page.Code).To(Equal(http.StatusOK))
		return page.Body.String()
	}

	It("renders the empty form", func() {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/upload_assumption_file/form", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("Upload assumption excel template"))
		Expect(rec.Body.String()).To(ContainSubstring(`accept=".xlsx,.xlsm"`))
	})

	It("queues the upload and redirects with flashes", func() {
		rec := post("Q1 Budget", "budget.xlsx")
		Expect(rec.Code).To(Equal(http.StatusSeeOther))
		Expect(rec.Header().Get("Location")).To(Equal("/upload_assumption_file/form"))

		Expect(env.queue.Len()).To(Equal(1))
		a, err := env.store.Assumption().Get(context.TODO(), "Q1 Budget")
		Expect(err).To(BeNil())
		Expect(a.Status).To(Equal(model.AssumptionStatusProcessing))

		page := followFlash(rec)
		Expect(page).To(ContainSubstring(`alert-info">Upload success`))
		Expect(page).To(ContainSubstring("Time used:"))
	})

	It("flashes the failure when the queue rejects the job", func() {
		before, err := os.ReadDir(env.cfg.Service.UploadFolder)
		Expect(err).To(BeNil())
		env.queue.err = errors.New("queue is full")

		rec := post("Q2", "budget.xlsx")
		Expect(rec.Code).To(Equal(http.StatusSeeOther))
		Expect(countAssumptions()).To(BeZero())

		page := followFlash(rec)
		Expect(page).To(ContainSubstring(`alert-danger">Upload failed:queue is full`))

		after, err := os.ReadDir(env.cfg.Service.UploadFolder)
		Expect(err).To(BeNil())
		Expect(after).To(HaveLen(len(before)))
	})

	It("shows flashes only once", func() {
		rec := post("Q3", "budget.xlsx")
		Expect(followFlash(rec)).To(ContainSubstring("Upload success"))

		page := env.do(httptest.NewRequest(http.MethodGet, "/upload_assumption_file/form", nil))
		Expect(page.Body.String()).NotTo(ContainSubstring("Upload success"))
	})

	It("ignores a tampered flash cookie", func() {
		req := httptest.NewRequest(http.MethodGet, "/upload_assumption_file/form", nil)
		req.AddCookie(&http.Cookie{Name: "savvy_flash", Value: "W3sibSI6ImhhY2tlZCIsImMiOiJpbmZvIn1d.bad"})
		rec := env.do(req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).NotTo(ContainSubstring("hacked"))
	})

	It("ignores a flash cookie signed with another secret", func() {
		forger := securecookie.New([]byte("another-secret"), nil)
		forger.SetSerializer(securecookie.JSONEncoder{})
		value, err := forger.Encode("savvy_flash", []api.UploadFlash{{Message: "forged", Category: api.Info}})
		Expect(err).To(BeNil())

		req := httptest.NewRequest(http.MethodGet, "/upload_assumption_file/form", nil)
		req.AddCookie(&http.Cookie{Name: "savvy_flash", Value: value})
		rec := env.do(req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).NotTo(ContainSubstring("forged"))
	})

	Context("json clients", func() {
		postJSON := func(name, filename string) *httptest.ResponseRecorder {
			body, contentType := multipartBody(name, filename, []byte("workbook"))
			req := httptest.NewRequest(http.MethodPost, "/upload_assumption_file/form", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Accept", "application/json")
			return env.do(req)
		}

		It("answers with the upload result instead of a redirect", func() {
			rec := postJSON("Q4", "budget.xlsx")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Result().Cookies()).To(BeEmpty())

			var result api.UploadResult
			Expect(json.Unmarshal(rec.Body.Bytes(), &result)).To(Succeed())
			Expect(result.Name).To(Equal("Q4"))
			Expect(result.Failed).To(BeFalse())
			Expect(result.Flashes).To(HaveLen(2))
			Expect(result.Flashes[0].Message).To(HavePrefix("Upload success"))
			Expect(env.queue.Len()).To(Equal(1))
		})

		It("reports a queue failure", func() {
			env.queue.err = errors.New("queue is full")

			var result api.UploadResult
			Expect(json.Unmarshal(postJSON("Q5", "budget.xlsx").Body.Bytes(), &result)).To(Succeed())
			Expect(result.Failed).To(BeTrue())
			Expect(result.Flashes[0].Category).To(Equal(api.Danger))
			Expect(result.Flashes[0].Message).To(Equal("Upload failed:queue is full"))
		})

		It("answers validation errors with an error body", func() {
			rec := postJSON("Q1", "budget.csv")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var body api.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Message).To(Equal("excel_file: File type is not allowed."))
			Expect(countAssumptions()).To(BeZero())
		})
	})

	Context("validation", func() {
		It("rejects a disallowed extension without creating a row", func() {
			rec := post("Q1", "budget.csv")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("File type is not allowed."))
			Expect(rec.Body.String()).To(ContainSubstring(`value="Q1"`))

			Expect(countAssumptions()).To(BeZero())
			Expect(env.queue.Len()).To(BeZero())
		})

		It("rejects a legacy xls workbook", func() {
			rec := post("Q1", "budget.xls")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("File type is not allowed."))
			Expect(countAssumptions()).To(BeZero())
		})

		It("rejects an illegal name", func() {
			rec := post("Q1$", "budget.xlsx")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Only letters, digits, spaces and + - _ . are allowed."))
			Expect(countAssumptions()).To(BeZero())
		})

		It("requires both fields", func() {
			rec := post("", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("This field is required."))
			Expect(countAssumptions()).To(BeZero())
		})

		It("rejects a body larger than the limit", func() {
			body, contentType := multipartBody("Q1", "budget.xlsx", make([]byte, env.cfg.Service.MaxUploadSize+1))
			req := httptest.NewRequest(http.MethodPost, "/upload_assumption_file/form", body)
			req.Header.Set("Content-Type", contentType)

			rec := env.do(req)
			Expect(rec.Code).To(BeNumerically(">=", http.StatusBadRequest))
			Expect(countAssumptions()).To(BeZero())
		})
	})
})
