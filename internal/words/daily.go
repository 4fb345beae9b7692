// internal/words/daily.go
//
// Deterministic daily target selection: every run on the same (UTC) date with
// the same salt picks the same word, without publishing the schedule.

package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns the word for a date using HMAC(salt, YYYY-MM-DD) % Len.
func (l *List) Daily(t time.Time, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return l.words[int(n%uint64(len(l.words)))]
}
