package assumptions

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

var ErrNoAssumptionSheet = errors.New("no assumption sheet found in workbook")

// ParseFile reads every assumption sheet of the workbook at path. A sheet is
// an assumption sheet when its first row starts with a Parameter (or Name)
// header followed by period columns.
func ParseFile(path string) ([]model.AssumptionValue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) ([]model.AssumptionValue, error) {
	values := []model.AssumptionValue{}
	found := false

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 || !isHeader(rows[0]) {
			zap.S().Named("assumptions").Debugf("skipping sheet %q: no parameter header", sheet)
			continue
		}
		found = true

		sheetValues, err := parseSheet(sheet, rows)
		if err != nil {
			return nil, err
		}
		values = append(values, sheetValues...)
	}

	if !found {
		return nil, ErrNoAssumptionSheet
	}
	return values, nil
}

func parseSheet(sheet string, rows [][]string) ([]model.AssumptionValue, error) {
	periods := periodColumns(rows[0])
	values := []model.AssumptionValue{}

	for i, row := range rows[1:] {
		rowNumber := i + 2
		if isBlank(row) {
			continue
		}

		parameter := cell(row, 0)
		if parameter == "" {
			return nil, fmt.Errorf("sheet %q row %d: missing parameter name", sheet, rowNumber)
		}

		for _, p := range periods {
			raw := cell(row, p.index)
			if raw == "" {
				continue
			}
			v, err := parseNumber(raw)
			if err != nil {
				return nil, fmt.Errorf("sheet %q row %d: invalid value %q for period %q", sheet, rowNumber, raw, p.name)
			}
			values = append(values, model.AssumptionValue{
				Sheet:     sheet,
				Parameter: parameter,
				Period:    p.name,
				Value:     v,
			})
		}
	}

	return values, nil
}

type period struct {
	index int
	name  string
}

func periodColumns(header []string) []period {
	periods := make([]period, 0, len(header))
	for i := 1; i < len(header); i++ {
		name := strings.TrimSpace(header[i])
		if name == "" {
			continue
		}
		periods = append(periods, period{index: i, name: name})
	}
	return periods
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(row[0])) {
	case "parameter", "name":
		return len(periodColumns(row)) > 0
	default:
		return false
	}
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseNumber accepts thousands separators and a trailing percent sign.
func parseNumber(s string) (float64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	percent := strings.HasSuffix(clean, "%")
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "%"))

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	if percent {
		v = v / 100
	}
	return v, nil
}
