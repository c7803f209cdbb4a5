package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartstore/smartstore_backend/internal/utils/invoice"
)

func TestNextID_FirstOfYear(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	id := invoice.NextID(nil, "SAL", now)

	assert.Equal(t, "SAL-2025-0001", id)
}

func TestNextID_SequentialIssuance(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, invoice.NextID(ids, "SAL", now))
	}

	assert.Equal(t, []string{"SAL-2025-0001", "SAL-2025-0002", "SAL-2025-0003"}, ids)
}

func TestNextID_PartitionedByPrefix(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	ids := []string{"SAL-2025-0007", "PUR-2025-0002"}

	assert.Equal(t, "SAL-2025-0008", invoice.NextID(ids, "SAL", now))
	assert.Equal(t, "PUR-2025-0003", invoice.NextID(ids, "PUR", now))
}

func TestNextID_ResetsOnYearRollover(t *testing.T) {
	ids := []string{"SAL-2024-0451", "SAL-2024-0452"}
	newYear := time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)

	assert.Equal(t, "SAL-2025-0001", invoice.NextID(ids, "SAL", newYear))
}

func TestLastSeq_IgnoresMalformedSuffixes(t *testing.T) {
	ids := []string{"SAL-2025-0009", "SAL-2025-draft", "SAL-2025-"}

	assert.Equal(t, int64(9), invoice.LastSeq(ids, "SAL", 2025))
}

func TestLastSeq_EmptyHistory(t *testing.T) {
	assert.Equal(t, int64(0), invoice.LastSeq(nil, "SAL", 2025))
}

func TestFormatID_ZeroPadding(t *testing.T) {
	assert.Equal(t, "PUR-2025-0042", invoice.FormatID("PUR", 2025, 42))
	assert.Equal(t, "PUR-2025-12345", invoice.FormatID("PUR", 2025, 12345))
}
