package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTotalHours(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     string
	}{
		{"standard workday", day(8, 0), day(17, 30), "9:30"},
		{"minutes truncated not rounded", day(8, 0), day(16, 59), "8:59"},
		{"seconds ignored", day(8, 0), time.Date(2024, 1, 15, 9, 0, 59, 0, time.UTC), "1:00"},
		{"zero padding on minutes", day(9, 0), day(17, 5), "8:05"},
		{"under an hour", day(9, 0), day(9, 45), "0:45"},
		{"over one hundred hours stays plain", day(0, 0), time.Date(2024, 1, 20, 0, 30, 0, 0, time.UTC), "120:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTotalHours(tt.checkIn, tt.checkOut))
		})
	}
}

func TestWorkdaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"january has 31 days", 2024, 1, 22},
		{"leap february", 2024, 2, 20},
		{"non-leap february", 2023, 2, 20},
		{"thirty day month", 2024, 4, 21},
		{"december", 2024, 12, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkdaysInMonth(tt.year, tt.month))
		})
	}
}
