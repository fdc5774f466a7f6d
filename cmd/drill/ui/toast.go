package ui

import (
	"officerdrill/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

var severityIcons = map[notify.Severity]string{
	notify.SeverityInfo:    "↺",
	notify.SeveritySuccess: "✔",
	notify.SeverityError:   "!",
}

// RenderToast draws a single toast no wider than width.
func RenderToast(s Styles, t notify.Toast, width int) string {
	if width <= 0 || width > ToastMaxWidth {
		width = ToastMaxWidth
	}

	accent := s.Info
	border := Info
	switch t.Severity {
	case notify.SeveritySuccess:
		accent, border = s.Success, Success
	case notify.SeverityError:
		accent, border = s.Error, Destructive
	}

	icon := severityIcons[t.Severity]
	if icon == "" {
		icon = "•"
	}
	inner := width - PanelBorder - CardPaddingH
	title := accent.Render(icon + " " + t.Title)
	desc := s.Body.Width(inner).Render(t.Description)

	return s.Toast.
		BorderForeground(border).
		Width(width - PanelBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, desc))
}

// RenderToasts stacks the visible toasts, newest at the bottom.
func RenderToasts(s Styles, toasts []notify.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(s, t, width))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
