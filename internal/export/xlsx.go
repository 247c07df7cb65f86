package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"leskita/internal/domain"
	"leskita/internal/report"
)

const paymentSheet = "Pembayaran"

// WriteXLSX renders payment records as an XLSX workbook with a summary block
// under the table: total paid, pending, and overdue amounts.
func WriteXLSX(w io.Writer, recs []domain.PaymentRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", paymentSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("export.WriteXLSX style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(paymentSheet, cell, col); err != nil {
			return fmt.Errorf("export.WriteXLSX header: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(paymentSheet, "A1", endHeader, headerStyle); err != nil {
		return fmt.Errorf("export.WriteXLSX header style: %w", err)
	}

	var totalPaid, totalPending, totalOverdue float64
	for i := range recs {
		row := paymentToRow(&recs[i])
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(paymentSheet, cell, val); err != nil {
				return fmt.Errorf("export.WriteXLSX row %d: %w", i+2, err)
			}
		}
		switch recs[i].Status {
		case domain.PaymentStatusPaid:
			totalPaid += recs[i].Amount
		case domain.PaymentStatusPending:
			totalPending += recs[i].Amount
		case domain.PaymentStatusOverdue:
			totalOverdue += recs[i].Amount
		}
	}

	// Summary block two rows below the table.
	base := len(recs) + 3
	summary := []struct {
		label  string
		amount float64
	}{
		{"Total Dibayar", totalPaid},
		{"Total Tertunda", totalPending},
		{"Total Terlambat", totalOverdue},
	}
	for i, s := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, base+i)
		if err := f.SetCellValue(paymentSheet, labelCell, s.label); err != nil {
			return fmt.Errorf("export.WriteXLSX summary: %w", err)
		}
		if err := f.SetCellValue(paymentSheet, valueCell, report.FormatIDR(s.amount)); err != nil {
			return fmt.Errorf("export.WriteXLSX summary: %w", err)
		}
		if err := f.SetCellStyle(paymentSheet, labelCell, labelCell, headerStyle); err != nil {
			return fmt.Errorf("export.WriteXLSX summary style: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX write: %w", err)
	}
	return nil
}
