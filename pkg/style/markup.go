package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The body may not contain another tag, so the innermost pair matches first.
// A '[' followed by a digit (an ANSI sequence from an inner pass) is allowed.
var tagPattern = regexp.MustCompile(`\[([a-z_]+)\]((?:[^\[]|\[[^a-z/])*?)\[/([a-z_]+)\]`)

// MarkupParser handles parsing and rendering of markup tags such as
// [success]saved[/success].
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":    TitleStyle,
			"subtitle": SubtitleStyle,
			"label":    LabelStyle,
			"success":  SuccessStyle,
			"error":    ErrorStyle,
			"warning":  WarningStyle,
			"info":     InfoStyle,
			"code":     CodeStyle,
			"path":     PathStyle,
			"muted":    MutedStyle,
			"bold":     lipgloss.NewStyle().Bold(true),
			"italic":   lipgloss.NewStyle().Italic(true),
			"student":  StudentStyle,
			"course":   CourseStyle,
			"grade":    GradeStyle,
		},
	}
}

// Render replaces known tags with styled text. Unknown or mismatched tags are
// left as written. Nested tags are resolved innermost first.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		next := tagPattern.ReplaceAllStringFunc(result, func(match string) string {
			sub := tagPattern.FindStringSubmatch(match)
			if sub[1] != sub[3] {
				return match
			}
			st, ok := p.styles[sub[1]]
			if !ok {
				return match
			}
			return st.Render(sub[2])
		})
		if next == result {
			return result
		}
		result = next
	}
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

// RenderTemplate renders a template with variable substitution and markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
