package export

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"leskita/internal/domain"
	"leskita/internal/report"
)

// PrintData feeds the printable payment statement.
type PrintData struct {
	TenantName  string
	GeneratedAt time.Time
	Rows        []printRow
	TotalPaid   string
	Pending     string
	Overdue     string
}

type printRow struct {
	StudentName string
	Subject     string
	Amount      string
	Date        string
	Status      domain.PaymentStatus
	Method      string
}

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Laporan Pembayaran - {{.TenantName}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #111; }
h1 { font-size: 1.3rem; margin-bottom: 0; }
p.meta { color: #666; margin-top: 0.25rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 0.9rem; }
th { background: #f3f3f3; }
tr.status-overdue td { color: #b00020; }
.summary { margin-top: 1.5rem; }
.summary dt { font-weight: bold; display: inline-block; width: 10rem; }
.summary dd { display: inline; margin: 0; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Laporan Pembayaran - {{.TenantName}}</h1>
<p class="meta">Dibuat {{.GeneratedAt.Format "02/01/2006 15:04"}}</p>
<table>
<thead>
<tr><th>Nama Siswa</th><th>Mata Pelajaran</th><th>Jumlah</th><th>Tanggal</th><th>Status</th><th>Metode Pembayaran</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr class="status-{{.Status}}"><td>{{.StudentName}}</td><td>{{.Subject}}</td><td>{{.Amount}}</td><td>{{.Date}}</td><td>{{.Status}}</td><td>{{.Method}}</td></tr>
{{end}}</tbody>
</table>
<dl class="summary">
<div><dt>Total Dibayar</dt><dd>{{.TotalPaid}}</dd></div>
<div><dt>Total Tertunda</dt><dd>{{.Pending}}</dd></div>
<div><dt>Total Terlambat</dt><dd>{{.Overdue}}</dd></div>
</dl>
<script>window.print();</script>
</body>
</html>
`))

// WriteHTML renders payment records as a self-printing HTML statement.
func WriteHTML(w io.Writer, tenantName string, recs []domain.PaymentRecord) error {
	data := PrintData{
		TenantName:  tenantName,
		GeneratedAt: time.Now(),
	}

	var paid, pending, overdue float64
	for i := range recs {
		row := paymentToRow(&recs[i])
		data.Rows = append(data.Rows, printRow{
			StudentName: row[0],
			Subject:     row[1],
			Amount:      row[2],
			Date:        row[3],
			Status:      recs[i].Status,
			Method:      row[5],
		})
		switch recs[i].Status {
		case domain.PaymentStatusPaid:
			paid += recs[i].Amount
		case domain.PaymentStatusPending:
			pending += recs[i].Amount
		case domain.PaymentStatusOverdue:
			overdue += recs[i].Amount
		}
	}
	data.TotalPaid = report.FormatIDR(paid)
	data.Pending = report.FormatIDR(pending)
	data.Overdue = report.FormatIDR(overdue)

	if err := printTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("export.WriteHTML: %w", err)
	}
	return nil
}
