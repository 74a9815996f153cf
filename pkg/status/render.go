package status

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}

// StateStyle returns the pterm style for a state
func StateStyle(state State) *pterm.Style {
	switch state {
	case StateLinked, StatePresent:
		return pterm.NewStyle(pterm.FgGreen)
	case StateMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case StateConflict, StateUnknown, StateError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Render writes report to w in the given format. color only affects text.
func Render(w io.Writer, report *Report, format Format, color bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(report)
	default:
		_, err := io.WriteString(w, RenderText(report, color))
		return err
	}
}

// RenderText renders a report as aligned terminal lines
func RenderText(report *Report, color bool) string {
	var b strings.Builder

	title := report.Root
	if color {
		title = pterm.Bold.Sprint(title)
	}
	b.WriteString(title + "\n")

	if len(report.Entries) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}

	for _, e := range report.Entries {
		var tail []string
		if e.Destination != "" {
			tail = append(tail, e.Destination)
		}
		if e.LinkTarget != "" {
			tail = append(tail, "-> "+e.LinkTarget)
		}
		if e.Message != "" {
			tail = append(tail, "("+e.Message+")")
		}

		state := string(e.State)
		if len(tail) > 0 {
			state = fmt.Sprintf("%-9s", state)
		}
		if color {
			state = StateStyle(e.State).Sprint(state)
		}

		line := fmt.Sprintf("  %-16s %s", e.Entry, state)
		if len(tail) > 0 {
			line += " " + strings.Join(tail, " ")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
