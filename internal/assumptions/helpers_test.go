package assumptions_test

import (
	"path/filepath"

	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

type sheetRows map[string][][]any

// writeWorkbook saves a workbook with the given sheets under dir and returns its path.
func writeWorkbook(dir string, sheets sheetRows, order ...string) string {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			Expect(f.SetSheetName("Sheet1", name)).To(Succeed())
		} else {
			_, err := f.NewSheet(name)
			Expect(err).To(Succeed())
		}
		for r, row := range sheets[name] {
			ref, err := excelize.CoordinatesToCellName(1, r+1)
			Expect(err).To(Succeed())
			values := row
			Expect(f.SetSheetRow(name, ref, &values)).To(Succeed())
		}
	}

	path := filepath.Join(dir, "assumption.xlsx")
	Expect(f.SaveAs(path)).To(Succeed())
	return path
}
