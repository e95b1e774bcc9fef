package cli

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"
)

var _ = Describe("savvyctl", func() {
	var (
		srv     *httptest.Server
		out     *bytes.Buffer
		deleted []string
		auth    string
		accept  string
		query   url.Values
	)

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
		deleted = nil
		auth = ""
		accept = ""
		query = nil

		r := chi.NewRouter()
		r.Get("/assumptionmodelview/list", func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			query = r.URL.Query()
			writeJSON(w, http.StatusOK, map[string]any{
				"count": 1,
				"page":  0,
				"result": []map[string]any{
					{"name": "Q1", "status": r.URL.Query().Get("status"), "status_detail": "5 sheets", "changed_on": time.Now()},
				},
			})
		})
		r.Get("/simulationmodelview/show/{id}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") != "3" {
				writeJSON(w, http.StatusNotFound, map[string]any{"message": "simulation not found"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"id": 3, "run_id": "r-3", "name": "base", "assumption": "Q1", "status": "Pending"})
		})
		r.Get("/simulationlog/list", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"count":  1,
				"result": []map[string]any{{"id": 7, "user": "batman", "action": "upload assumption", "action_object": "Q1", "result": "success"}},
			})
		})
		r.Delete("/assumptionmodelview/delete/{name}", func(w http.ResponseWriter, r *http.Request) {
			deleted = append(deleted, "assumption/"+chi.URLParam(r, "name"))
			writeJSON(w, http.StatusOK, map[string]any{"message": "Deleted Row"})
		})
		r.Delete("/simulationmodelview/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "simulation 9 not found"})
		})
		r.Post("/upload_assumption_file/form", func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			_ = r.ParseMultipartForm(1 << 20)
			switch r.FormValue("name") {
			case "bad":
				writeJSON(w, http.StatusBadRequest, map[string]any{"message": "name: Illegal name"})
			case "full":
				writeJSON(w, http.StatusOK, map[string]any{
					"name":    "full",
					"failed":  true,
					"flashes": []map[string]any{{"message": "Upload failed:task queue is full", "category": "danger"}},
				})
			default:
				writeJSON(w, http.StatusOK, map[string]any{
					"name":    r.FormValue("name"),
					"failed":  false,
					"flashes": []map[string]any{{"message": "Upload success", "category": "info"}},
				})
			}
		})
		srv = httptest.NewServer(r)
	})

	AfterEach(func() {
		srv.Close()
	})

	Context("get", func() {
		newGet := func(output string) *GetOptions {
			o := DefaultGetOptions()
			o.ServerUrl = srv.URL
			o.Token = "t0ken"
			o.Output = output
			o.out = out
			return o
		}

		It("prints a table of assumptions with filters", func() {
			o := newGet("")
			o.Filters = map[string]string{"status": "Success"}
			Expect(o.Validate([]string{"assumptions"})).To(Succeed())
			Expect(o.Run(context.TODO(), []string{"assumptions"})).To(Succeed())

			Expect(out.String()).To(ContainSubstring("NAME"))
			Expect(out.String()).To(MatchRegexp(`Q1\s+Success\s+5 sheets`))
			Expect(auth).To(Equal("Bearer t0ken"))
			Expect(query.Get("status")).To(Equal("Success"))
		})

		It("sends paging as typed query parameters", func() {
			o := newGet(jsonFormat)
			o.Page = 2
			o.PageSize = 5
			Expect(o.Run(context.TODO(), []string{"assumptions"})).To(Succeed())
			Expect(query.Get("page")).To(Equal("2"))
			Expect(query.Get("page_size")).To(Equal("5"))
			Expect(query.Has("status")).To(BeFalse())
		})

		It("rejects a filter the resource does not have", func() {
			o := newGet("")
			o.Filters = map[string]string{"user": "batman"}
			Expect(o.Validate([]string{"assumptions"})).To(MatchError(ContainSubstring(`unknown filter "user"`)))

			o.Filters = map[string]string{"user": "batman"}
			Expect(o.Validate([]string{"logs"})).To(Succeed())
		})

		It("rejects a non numeric simulation id", func() {
			err := newGet("").Run(context.TODO(), []string{"simulation/abc"})
			Expect(err).To(MatchError(ContainSubstring("must be a positive integer")))
		})

		It("prints a simulation as yaml", func() {
			o := newGet(yamlFormat)
			Expect(o.Run(context.TODO(), []string{"simulation/3"})).To(Succeed())

			var got map[string]any
			Expect(yaml.Unmarshal(out.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveKeyWithValue("run_id", "r-3"))
		})

		It("prints logs as json", func() {
			o := newGet(jsonFormat)
			Expect(o.Run(context.TODO(), []string{"logs"})).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`"action":"upload assumption"`))
		})

		It("reports a missing resource", func() {
			o := newGet("")
			err := o.Run(context.TODO(), []string{"simulation/4"})
			Expect(err).To(MatchError(ContainSubstring("reading simulation/4")))
			Expect(err).To(MatchError(ContainSubstring("simulation not found")))
		})

		It("rejects an unknown kind or output", func() {
			Expect(newGet("").Validate([]string{"sources"})).NotTo(Succeed())
			Expect(newGet("xml").Validate([]string{"assumptions"})).To(MatchError(ContainSubstring("output format")))
		})
	})

	Context("delete", func() {
		newDelete := func() *DeleteOptions {
			o := DefaultDeleteOptions()
			o.ServerUrl = srv.URL
			o.out = out
			return o
		}

		It("deletes an assumption by name", func() {
			Expect(newDelete().Run(context.TODO(), []string{"assumption/Q1"})).To(Succeed())
			Expect(deleted).To(ConsistOf("assumption/Q1"))
			Expect(out.String()).To(Equal("assumption/Q1 deleted\n"))
		})

		It("surfaces the server message", func() {
			err := newDelete().Run(context.TODO(), []string{"simulation/9"})
			Expect(err).To(MatchError(ContainSubstring("simulation 9 not found")))
		})

		It("refuses logs and missing ids", func() {
			Expect(newDelete().Validate([]string{"log/1"})).To(MatchError(ContainSubstring("cannot be deleted")))
			Expect(newDelete().Validate([]string{"assumption"})).To(MatchError(ContainSubstring("is required")))
		})
	})

	Context("upload", func() {
		newUpload := func(name string) *UploadOptions {
			path := filepath.Join(GinkgoT().TempDir(), "q1.xlsx")
			Expect(os.WriteFile(path, []byte("not really a workbook"), 0o600)).To(Succeed())

			o := DefaultUploadOptions()
			o.ServerUrl = srv.URL
			o.name = name
			o.filePath = path
			o.out = out
			return o
		}

		It("prints the flashed messages", func() {
			Expect(newUpload("Q1").Run(context.TODO(), nil)).To(Succeed())
			Expect(out.String()).To(Equal("Upload success\n"))
			Expect(accept).To(Equal("application/json"))
		})

		It("fails when the server reports a failed upload", func() {
			err := newUpload("full").Run(context.TODO(), nil)
			Expect(err).To(MatchError(ContainSubstring(`assumption "full" was not uploaded`)))
			Expect(out.String()).To(Equal("Upload failed:task queue is full\n"))
		})

		It("returns the form errors", func() {
			err := newUpload("bad").Run(context.TODO(), nil)
			Expect(err).To(MatchError(ContainSubstring("Illegal name")))
		})

		It("requires the name and file flags", func() {
			cmd := NewCmdUpload()
			cmd.SetArgs([]string{"--name", "Q1"})
			cmd.SetOut(out)
			cmd.SetErr(out)
			Expect(cmd.Execute()).To(MatchError(ContainSubstring("file-path")))
		})
	})

	Context("sso", func() {
		It("generates a token the authenticator can read", func() {
			key, err := rsa.GenerateKey(rand.Reader, 2048)
			Expect(err).To(BeNil())
			keyPath := filepath.Join(GinkgoT().TempDir(), "key.pem")
			pemdata := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
			Expect(os.WriteFile(keyPath, pemdata, 0o600)).To(Succeed())

			cmd := NewCmdSSO()
			cmd.SetArgs([]string{"token", "--private-key", keyPath, "--username", "batman", "--email", "batman@gotham.com"})
			cmd.SetOut(out)
			Expect(cmd.Execute()).To(Succeed())

			token, err := jwt.Parse(string(bytes.TrimSpace(out.Bytes())), func(t *jwt.Token) (any, error) {
				return &key.PublicKey, nil
			}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithIssuedAt())
			Expect(err).To(BeNil())
			claims := token.Claims.(jwt.MapClaims)
			Expect(claims).To(HaveKeyWithValue("preferred_username", "batman"))
			Expect(claims).To(HaveKeyWithValue("email", "batman@gotham.com"))
			Expect(claims).To(HaveKey("exp"))
		})

		It("rejects a token request without identity", func() {
			cmd := NewCmdSSO()
			cmd.SetArgs([]string{"token", "--private-key", "/nonexistent"})
			cmd.SetOut(out)
			cmd.SetErr(out)
			Expect(cmd.Execute()).To(MatchError(ContainSubstring("--username or --email")))
		})

		It("fails on garbage keys", func() {
			_, err := ParsePrivateKey("nope")
			Expect(err).NotTo(BeNil())
		})
	})
})
