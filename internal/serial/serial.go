package serial

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	prefix       = "KPL"
	alphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength = 6
)

// New mints an order serial number of the form KPL-YYMMDD-XXXXXX,
// where the suffix is drawn uniformly from [0-9A-Z]. Uniqueness is
// probabilistic only (36^6 combinations per day); there is no
// collision check here or anywhere downstream.
func New() string {
	return NewAt(time.Now())
}

// NewAt mints a serial number dated by t. Split out so tests can pin
// the date part.
func NewAt(t time.Time) string {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + 6 + 1 + suffixLength)
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(t.Format("060102"))
	b.WriteByte('-')
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
