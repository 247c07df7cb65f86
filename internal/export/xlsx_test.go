package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"leskita/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	recs := []domain.PaymentRecord{
		record("Budi Santoso", "Matematika", 500000, domain.PaymentStatusPaid, "transfer"),
		record("Siti Aminah", "Fisika", 300000, domain.PaymentStatusPending, "tunai"),
		record("Andi Wijaya", "Kimia", 200000, domain.PaymentStatusOverdue, "transfer"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, recs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pembayaran")
	require.NoError(t, err)

	assert.Equal(t, "Nama Siswa", rows[0][0])
	assert.Equal(t, "Budi Santoso", rows[1][0])
	assert.Equal(t, "Rp 500.000", rows[1][2])
	assert.Equal(t, "Siti Aminah", rows[2][0])

	// Summary block starts two rows below the table.
	assert.Equal(t, "Total Dibayar", rows[5][0])
	assert.Equal(t, "Rp 500.000", rows[5][1])
	assert.Equal(t, "Total Tertunda", rows[6][0])
	assert.Equal(t, "Rp 300.000", rows[6][1])
	assert.Equal(t, "Total Terlambat", rows[7][0])
	assert.Equal(t, "Rp 200.000", rows[7][1])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pembayaran")
	require.NoError(t, err)
	assert.Equal(t, "Nama Siswa", rows[0][0])
}
