package tui

import (
	"strings"

	"github.com/MKhiriev/go-sol-vault/models"
)

const maxToasts = 3

// pushToast keeps the newest maxToasts notifications.
func pushToast(toasts []models.Notification, n models.Notification) []models.Notification {
	toasts = append(toasts, n)
	if len(toasts) > maxToasts {
		toasts = toasts[len(toasts)-maxToasts:]
	}
	return toasts
}

func dropToast(toasts []models.Notification, id string) []models.Notification {
	kept := toasts[:0:0]
	for _, n := range toasts {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return kept
}

func renderToasts(toasts []models.Notification) string {
	if len(toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(toasts))
	for _, n := range toasts {
		lines = append(lines, levelStyle(n.Level).Render(n.Message))
	}
	return toastBoxStyle.Render(strings.Join(lines, "\n"))
}
