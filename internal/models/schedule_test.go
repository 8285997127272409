package models

import (
	"testing"
	"time"
)

func TestScheduleDuration(t *testing.T) {
	start := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		e := time.Date(2025, time.March, 15, h, m, 0, 0, time.UTC)
		return &e
	}

	tests := []struct {
		name string
		end  *time.Time
		want string
	}{
		{"no end time", nil, "No end time"},
		{"45 minutes", at(9, 45), "45 minutes"},
		{"one hour thirty", at(10, 30), "1h 30m"},
		{"exact hours omit minutes", at(11, 0), "2h"},
		{"zero minutes", at(9, 0), "0 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schedule{StartTime: start, EndTime: tt.end}
			if got := s.Duration(); got != tt.want {
				t.Errorf("Duration() = %q, want %q", got, tt.want)
			}
		})
	}
}
