package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leskita/internal/domain"
)

func record(name, subject string, amount float64, status domain.PaymentStatus, method string) domain.PaymentRecord {
	sid := uuid.New()
	return domain.PaymentRecord{
		Payment: domain.Payment{
			ID:          uuid.New(),
			StudentID:   &sid,
			Amount:      amount,
			PaymentDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:      status,
			Method:      method,
		},
		StudentName:    name,
		StudentSubject: subject,
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Nama Siswa", "Mata Pelajaran", "Jumlah", "Tanggal", "Status", "Metode Pembayaran",
	}, row)
}

func TestWritePayments(t *testing.T) {
	rec := record("Budi Santoso", "Matematika", 500000, domain.PaymentStatusPaid, "transfer")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePayments([]domain.PaymentRecord{rec}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", row[0])
	assert.Equal(t, "Matematika", row[1])
	assert.Equal(t, "Rp 500.000", row[2])
	assert.Equal(t, "15/03/2025", row[3])
	assert.Equal(t, "paid", row[4])
	assert.Equal(t, "transfer", row[5])
}

func TestWritePayments_SentinelFallbacks(t *testing.T) {
	rec := record("", "", 150000, domain.PaymentStatusPending, "")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePayments([]domain.PaymentRecord{rec}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, domain.UnknownStudentLabel, row[0])
	assert.Equal(t, domain.UnknownSubjectLabel, row[1])
	assert.Equal(t, domain.UnknownMethodLabel, row[5])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Les_Pintar", SanitizeFilename("Les Pintar!"))
	assert.Equal(t, "a_b", SanitizeFilename("a   b"))
	assert.Equal(t, "bimbel-01", SanitizeFilename("bimbel-01"))

	long := SanitizeFilename(string(bytes.Repeat([]byte("x"), 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Les Pintar", "csv")
	assert.Contains(t, name, "Les_Pintar_")
	assert.Contains(t, name, ".csv")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
}
