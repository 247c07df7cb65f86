// Package export renders payment reports as downloadable documents: CSV and
// XLSX for spreadsheets, plus a printable HTML statement. All writers take
// rows the caller already fetched and never reach into storage.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"leskita/internal/domain"
	"leskita/internal/report"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row. Headers are Indonesian because that is
// what the dashboard's operators read; treat them as a stable contract.
var columns = []string{
	"Nama Siswa",
	"Mata Pelajaran",
	"Jumlah",
	"Tanggal",
	"Status",
	"Metode Pembayaran",
}

// Writer wraps csv.Writer for exporting payment records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WritePayments converts a batch of payment records to CSV rows and writes
// them.
func (w *Writer) WritePayments(recs []domain.PaymentRecord) error {
	for i := range recs {
		if err := w.csv.Write(paymentToRow(&recs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// paymentToRow converts a single record to a row. Missing student columns
// were already replaced with sentinel labels by the fetch layer, but the
// fallback is applied again here so the writer stands on its own.
func paymentToRow(rec *domain.PaymentRecord) []string {
	name := rec.StudentName
	if name == "" {
		name = domain.UnknownStudentLabel
	}
	subject := rec.StudentSubject
	if subject == "" {
		subject = domain.UnknownSubjectLabel
	}
	method := rec.Method
	if method == "" {
		method = domain.UnknownMethodLabel
	}
	return []string{
		name,
		subject,
		report.FormatIDR(rec.Amount),
		report.FormatDate(rec.PaymentDate),
		string(rec.Status),
		method,
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a tenant name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_tenant_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(tenantName, ext string) string {
	sanitized := SanitizeFilename(tenantName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
