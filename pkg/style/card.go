package style

import (
	"strings"
)

// RenderCard styles a record card: the first line ("Student Information:")
// as a title and the field name before each colon as a label.
func RenderCard(card string) string {
	lines := strings.Split(strings.TrimRight(card, "\n"), "\n")
	if len(lines) == 0 {
		return card
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(lines[0]))
	for _, line := range lines[1:] {
		b.WriteString("\n")
		label, value, found := strings.Cut(line, ": ")
		if !found {
			b.WriteString(NormalStyle.Render(line))
			continue
		}
		b.WriteString(LabelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(renderValue(value))
	}
	b.WriteString("\n")
	return b.String()
}

func renderValue(value string) string {
	if value == "None" || value == "{}" {
		return MutedStyle.Render(value)
	}
	return NormalStyle.Render(value)
}

// RenderSuccess renders a command result message.
func RenderSuccess(msg string) string {
	return SuccessStyle.Render("✓") + " " + msg
}

// RenderError renders a user-facing error line.
func RenderError(msg string) string {
	return ErrorStyle.Render("Error:") + " " + msg
}

// RenderWarning renders a warning line.
func RenderWarning(msg string) string {
	return WarningStyle.Render("! " + msg)
}
