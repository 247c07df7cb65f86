package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 500.000", FormatIDR(500000))
	assert.Equal(t, "Rp 1.250.000", FormatIDR(1250000))
	assert.Equal(t, "Rp 0", FormatIDR(0))
	// Zero fractional digits: the amount is rounded, never truncated.
	assert.Equal(t, "Rp 100.001", FormatIDR(100000.6))
}

func TestFormatIDR_MalformedAmount(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatIDR(math.NaN()))
	assert.Equal(t, "Rp 0", FormatIDR(math.Inf(1)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", FormatDate(time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
