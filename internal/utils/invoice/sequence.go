package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatID renders an invoice identifier as PREFIX-YYYY-NNNN with a
// four-digit zero-padded sequence.
func FormatID(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// LastSeq scans existing invoice IDs and returns the highest numeric suffix
// found in the given (prefix, year) partition, or 0 if none match. IDs from
// other prefixes or years are ignored, which is what makes the sequence reset
// at each calendar year boundary.
func LastSeq(ids []string, prefix string, year int) int64 {
	idPrefix := fmt.Sprintf("%s-%d-", prefix, year)
	var last int64
	for _, id := range ids {
		if !strings.HasPrefix(id, idPrefix) {
			continue
		}
		seq, err := strconv.ParseInt(id[len(idPrefix):], 10, 64)
		if err != nil {
			continue
		}
		if seq > last {
			last = seq
		}
	}
	return last
}

// NextID derives the next invoice identifier from the IDs issued so far.
// Uniqueness holds only for sequential single-caller issuance against a
// consistent snapshot; concurrent callers must allocate through the
// persistence-layer sequence counter instead.
func NextID(ids []string, prefix string, now time.Time) string {
	year := now.Year()
	return FormatID(prefix, year, LastSeq(ids, prefix, year)+1)
}
