package activitylog

import (
	"fmt"
	"time"
)

// Presentation helpers for the activity feed. Labels are Indonesian to
// match the audience of the app.

var typeLabels = map[ActivityType]string{
	ActivityFeeding:     "Memberi Makan",
	ActivityHealthCheck: "Cek Kesehatan",
	ActivityGrooming:    "Grooming",
	ActivityOther:       "Lainnya",
}

var typeIcons = map[ActivityType]string{
	ActivityFeeding:     "🍽️",
	ActivityHealthCheck: "💊",
	ActivityGrooming:    "✂️",
	ActivityOther:       "📝",
}

// TypeLabel returns the Indonesian display label for an activity type.
// Unknown types fall back to the "other" label.
func TypeLabel(t ActivityType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[ActivityOther]
}

// TypeIcon returns the feed icon for an activity type.
func TypeIcon(t ActivityType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return typeIcons[ActivityOther]
}

var indonesianMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatRelativeTime renders a timestamp relative to now, in Indonesian:
// under a minute "Baru saja", then minutes, hours, days, and past a week
// an absolute datetime like "3 Agu 2026 09:15".
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "Baru saja"
	case diff < time.Hour:
		return fmt.Sprintf("%d menit yang lalu", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d jam yang lalu", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d hari yang lalu", int(diff.Hours()/24))
	default:
		return fmt.Sprintf("%d %s %d %02d:%02d",
			t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
}
