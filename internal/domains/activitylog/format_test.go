package activitylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeLabels(t *testing.T) {
	assert.Equal(t, "Memberi Makan", TypeLabel(ActivityFeeding))
	assert.Equal(t, "Cek Kesehatan", TypeLabel(ActivityHealthCheck))
	assert.Equal(t, "Grooming", TypeLabel(ActivityGrooming))
	assert.Equal(t, "Lainnya", TypeLabel(ActivityOther))
	assert.Equal(t, "Lainnya", TypeLabel(ActivityType("mystery")))
}

func TestTypeIcons(t *testing.T) {
	assert.Equal(t, "🍽️", TypeIcon(ActivityFeeding))
	assert.Equal(t, "💊", TypeIcon(ActivityHealthCheck))
	assert.Equal(t, "✂️", TypeIcon(ActivityGrooming))
	assert.Equal(t, "📝", TypeIcon(ActivityOther))
	assert.Equal(t, "📝", TypeIcon(ActivityType("mystery")))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Baru saja"},
		{"minutes", now.Add(-90 * time.Second), "1 menit yang lalu"},
		{"many minutes", now.Add(-45 * time.Minute), "45 menit yang lalu"},
		{"hours", now.Add(-5 * time.Hour), "5 jam yang lalu"},
		{"almost a day", now.Add(-23 * time.Hour), "23 jam yang lalu"},
		{"days", now.Add(-25 * time.Hour), "1 hari yang lalu"},
		{"almost a week", now.Add(-6 * 24 * time.Hour), "6 hari yang lalu"},
		{"absolute past a week", time.Date(2026, time.August, 3, 9, 5, 0, 0, time.UTC), "3 Agu 2026 09:05"},
		{"absolute other month", time.Date(2025, time.December, 31, 23, 40, 0, 0, time.UTC), "31 Des 2025 23:40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.at, now))
		})
	}
}
