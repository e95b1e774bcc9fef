package assumptions

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

const SummarySheet = "Summary"

var summaryHeader = []any{"Sheet", "Parameter", "Period", "Value"}

// WriteSummary renders the parsed values as a single normalized sheet.
func WriteSummary(values []model.AssumptionValue) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return nil, err
	}

	for i, v := range values {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{v.Sheet, v.Parameter, v.Period, v.Value}
		if err := f.SetSheetRow(SummarySheet, ref, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}
