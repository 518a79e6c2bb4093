package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInclusive(t *testing.T) {
	t.Parallel()

	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %s: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"single day", "2025-06-02", "2025-06-02", 1},
		{"two days", "2025-06-02", "2025-06-03", 2},
		{"full week", "2025-06-02", "2025-06-08", 7},
		{"across month boundary", "2025-06-28", "2025-07-02", 5},
		{"across year boundary", "2025-12-30", "2026-01-02", 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaysInclusive(date(tt.start), date(tt.end)))
		})
	}
}
