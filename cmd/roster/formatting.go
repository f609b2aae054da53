package roster

import (
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// colorOutput is decided once per run from output.color and the terminal.
var colorOutput bool

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !colorOutput {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
