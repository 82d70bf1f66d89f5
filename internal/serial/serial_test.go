package serial

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var reSerial = regexp.MustCompile(`^KPL-\d{6}-[0-9A-Z]{6}$`)

func TestNew_Format(t *testing.T) {
	s := New()
	require.Regexp(t, reSerial, s)
	require.True(t, strings.HasPrefix(s, "KPL-"+time.Now().Format("060102")+"-"))
}

func TestNewAt_DatePart(t *testing.T) {
	at := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)
	s := NewAt(at)
	require.Regexp(t, reSerial, s)
	require.Equal(t, "KPL-250531-", s[:11])
}

func TestNew_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s := New()
		require.False(t, seen[s], "duplicate serial %s", s)
		seen[s] = true
	}
}
