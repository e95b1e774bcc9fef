package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/storage"
)

var _ = Describe("file store", func() {
	var (
		root  string
		store storage.ObjectStore
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		s, err := storage.NewFileStore(root)
		Expect(err).To(BeNil())
		store = s
	})

	It("stores and reads back an object", func() {
		data := []byte("workbook")
		Expect(store.Put(context.TODO(), "assumptions/Q1.xlsx", bytes.NewReader(data), int64(len(data)))).To(Succeed())

		_, err := os.Stat(filepath.Join(root, "assumptions", "Q1.xlsx"))
		Expect(err).To(BeNil())

		rc, err := store.Get(context.TODO(), "assumptions/Q1.xlsx")
		Expect(err).To(BeNil())
		defer rc.Close()
		got, err := io.ReadAll(rc)
		Expect(err).To(BeNil())
		Expect(got).To(Equal(data))
	})

	It("overwrites an existing object", func() {
		Expect(store.Put(context.TODO(), "a.xlsx", bytes.NewReader([]byte("one")), 3)).To(Succeed())
		Expect(store.Put(context.TODO(), "a.xlsx", bytes.NewReader([]byte("two")), 3)).To(Succeed())

		rc, err := store.Get(context.TODO(), "a.xlsx")
		Expect(err).To(BeNil())
		defer rc.Close()
		got, _ := io.ReadAll(rc)
		Expect(string(got)).To(Equal("two"))

		entries, err := os.ReadDir(root)
		Expect(err).To(BeNil())
		Expect(entries).To(HaveLen(1))
	})

	It("reports missing objects", func() {
		_, err := store.Get(context.TODO(), "missing.xlsx")
		Expect(err).To(MatchError(storage.ErrObjectNotFound))
		Expect(store.Delete(context.TODO(), "missing.xlsx")).To(MatchError(storage.ErrObjectNotFound))
	})

	It("deletes an object", func() {
		Expect(store.Put(context.TODO(), "a.xlsx", bytes.NewReader([]byte("x")), 1)).To(Succeed())
		Expect(store.Delete(context.TODO(), "a.xlsx")).To(Succeed())
		_, err := store.Get(context.TODO(), "a.xlsx")
		Expect(err).To(MatchError(storage.ErrObjectNotFound))
	})

	It("rejects keys escaping the root", func() {
		err := store.Put(context.TODO(), "../outside.xlsx", bytes.NewReader(nil), 0)
		Expect(err).ToNot(BeNil())
	})

	It("falls back to the file store without an s3 endpoint", func() {
		cfg := config.NewDefault()
		cfg.Service.OutputFolder = root
		s, err := storage.New(context.TODO(), cfg)
		Expect(err).To(BeNil())
		Expect(s.Type()).To(Equal("fs"))
	})
})
