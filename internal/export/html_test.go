package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leskita/internal/domain"
)

func TestWriteHTML(t *testing.T) {
	recs := []domain.PaymentRecord{
		record("Budi Santoso", "Matematika", 500000, domain.PaymentStatusPaid, "transfer"),
		record("", "", 200000, domain.PaymentStatusOverdue, ""),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, "Les Pintar", recs))
	out := buf.String()

	assert.Contains(t, out, "Les Pintar")
	assert.Contains(t, out, "Budi Santoso")
	assert.Contains(t, out, "Rp 500.000")
	assert.Contains(t, out, domain.UnknownStudentLabel)
	assert.Contains(t, out, "Total Dibayar")
	assert.Contains(t, out, "window.print()")
}
