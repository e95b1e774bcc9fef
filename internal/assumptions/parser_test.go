package assumptions_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

var _ = Describe("parser", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reads values from every assumption sheet", func() {
		path := writeWorkbook(dir, sheetRows{
			"Prices": {
				{"Parameter", "2024", "2025"},
				{"panel price", 210.5, 199},
				{},
				{"inverter price", "1,200", ""},
			},
			"Notes": {
				{"free text"},
			},
			"Volumes": {
				{"name", "Q1"},
				{"units", 40},
			},
		}, "Prices", "Notes", "Volumes")

		values, err := assumptions.ParseFile(path)
		Expect(err).To(BeNil())
		Expect(values).To(HaveLen(4))
		Expect(values[0]).To(Equal(model.AssumptionValue{Sheet: "Prices", Parameter: "panel price", Period: "2024", Value: 210.5}))
		Expect(values[1].Period).To(Equal("2025"))
		Expect(values[2]).To(Equal(model.AssumptionValue{Sheet: "Prices", Parameter: "inverter price", Period: "2024", Value: 1200}))
		Expect(values[3]).To(Equal(model.AssumptionValue{Sheet: "Volumes", Parameter: "units", Period: "Q1", Value: 40}))
	})

	It("fails when no sheet carries a parameter header", func() {
		path := writeWorkbook(dir, sheetRows{
			"Sheet": {{"a", "b"}, {"1", "2"}},
		}, "Sheet")

		_, err := assumptions.ParseFile(path)
		Expect(err).To(MatchError(assumptions.ErrNoAssumptionSheet))
		Expect(err.Error()).To(Equal("no assumption sheet found in workbook"))
	})

	It("fails on a non numeric value", func() {
		path := writeWorkbook(dir, sheetRows{
			"Prices": {
				{"Parameter", "2024"},
				{"panel price", "cheap"},
			},
		}, "Prices")

		_, err := assumptions.ParseFile(path)
		Expect(err).To(MatchError(`sheet "Prices" row 2: invalid value "cheap" for period "2024"`))
	})

	DescribeTable("rejects values that are not finite numbers",
		func(raw string) {
			path := writeWorkbook(dir, sheetRows{
				"Prices": {
					{"Parameter", "2024"},
					{"panel price", raw},
				},
			}, "Prices")

			_, err := assumptions.ParseFile(path)
			Expect(err).To(MatchError(fmt.Sprintf(`sheet "Prices" row 2: invalid value %q for period "2024"`, raw)))
		},
		Entry("NaN", "NaN"),
		Entry("infinity", "Inf"),
		Entry("negative infinity", "-Infinity"),
		Entry("infinite percentage", "+inf%"),
		Entry("overflow", "1e400"),
	)

	It("fails on a row without parameter", func() {
		path := writeWorkbook(dir, sheetRows{
			"Prices": {
				{"Parameter", "2024"},
				{"panel price", 1},
				{"", 2},
			},
		}, "Prices")

		_, err := assumptions.ParseFile(path)
		Expect(err).To(MatchError(`sheet "Prices" row 3: missing parameter name`))
	})

	It("fails on a file that is not a workbook", func() {
		path := filepath.Join(dir, "broken.xlsx")
		Expect(os.WriteFile(path, []byte("not a zip"), 0o600)).To(Succeed())

		_, err := assumptions.ParseFile(path)
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(HavePrefix("error opening Excel file"))
	})
})

var _ = Describe("summary", func() {
	It("writes a normalized summary sheet", func() {
		buf, err := assumptions.WriteSummary([]model.AssumptionValue{
			{Sheet: "Prices", Parameter: "panel price", Period: "2024", Value: 2.5},
		})
		Expect(err).To(BeNil())

		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		Expect(err).To(BeNil())
		defer f.Close()

		Expect(f.GetSheetList()).To(Equal([]string{assumptions.SummarySheet}))
		rows, err := f.GetRows(assumptions.SummarySheet)
		Expect(err).To(BeNil())
		Expect(rows).To(Equal([][]string{
			{"Sheet", "Parameter", "Period", "Value"},
			{"Prices", "panel price", "2024", "2.5"},
		}))
	})
})
