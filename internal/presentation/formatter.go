package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Theme holds the colors used by text output
type Theme struct {
	Highlight string
	Subtle    string
	Error     string
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string

	highlight lipgloss.Style
	subtle    lipgloss.Style
	errStyle  lipgloss.Style
	header    lipgloss.Style
}

// NewFormatter creates a new formatter. Colors are only emitted when writer
// is a terminal.
func NewFormatter(writer io.Writer, format string, theme Theme) *Formatter {
	if format == "" {
		format = FormatText
	}
	r := lipgloss.NewRenderer(writer)
	return &Formatter{
		writer:    writer,
		format:    format,
		highlight: r.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Bold(true),
		subtle:    r.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		errStyle:  r.NewStyle().Foreground(lipgloss.Color(theme.Error)),
		header:    r.NewStyle().Bold(true).Underline(true),
	}
}

// FormatConversion writes "1 kg = 1000 g"
func (f *Formatter) FormatConversion(c ConversionDTO) error {
	if f.format == FormatJSON {
		return f.json(c)
	}
	_, err := fmt.Fprintf(f.writer, "%s = %s\n", c.From, f.highlight.Render(c.To.String()))
	return err
}

// FormatComparison writes "1 mi > 1 km"
func (f *Formatter) FormatComparison(c ComparisonDTO) error {
	if f.format == FormatJSON {
		return f.json(c)
	}
	_, err := fmt.Fprintf(f.writer, "%s %s %s\n", c.Left, f.highlight.Render(c.Relation), c.Right)
	return err
}

// FormatKinds writes one kind per line with its base unit
func (f *Formatter) FormatKinds(kinds []KindDTO) error {
	if f.format == FormatJSON {
		return f.json(kinds)
	}
	width := 0
	for _, k := range kinds {
		width = max(width, lipgloss.Width(k.Name))
	}
	name := lipgloss.NewStyle().Width(width + 2)
	for _, k := range kinds {
		line := name.Render(k.Name) + f.subtle.Render("base "+k.Base)
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatUnits writes a table of units for one kind
func (f *Formatter) FormatUnits(k KindDTO, withAliases bool) error {
	if f.format == FormatJSON {
		return f.json(k)
	}
	if _, err := fmt.Fprintln(f.writer, f.header.Render(k.Name)); err != nil {
		return err
	}

	width := 0
	for _, u := range k.Units {
		width = max(width, lipgloss.Width(u.Name))
	}
	name := lipgloss.NewStyle().Width(width + 2)

	for _, u := range k.Units {
		line := name.Render(u.Name) + "= " + u.Factor + " " + k.Base
		if u.Base {
			line = name.Render(u.Name) + f.highlight.Render("base")
		}
		if withAliases && len(u.Aliases) > 0 {
			line += f.subtle.Render("  (" + strings.Join(u.Aliases, ", ") + ")")
		}
		if _, err := fmt.Fprintln(f.writer, "  "+line); err != nil {
			return err
		}
	}
	return nil
}

// FormatAllUnits writes the unit table of every kind, or one JSON array
func (f *Formatter) FormatAllUnits(kinds []KindDTO, withAliases bool) error {
	if f.format == FormatJSON {
		return f.json(kinds)
	}
	for _, k := range kinds {
		if err := f.FormatUnits(k, withAliases); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames writes a flat, already sorted list of names
func (f *Formatter) FormatNames(names []string) error {
	if f.format == FormatJSON {
		if names == nil {
			names = []string{}
		}
		return f.json(names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(f.writer, n); err != nil {
			return err
		}
	}
	return nil
}

// FormatError renders err for the user
func (f *Formatter) FormatError(err error) error {
	if f.format == FormatJSON {
		return f.json(struct {
			Error string `json:"error"`
		}{err.Error()})
	}
	_, werr := fmt.Fprintln(f.writer, f.errStyle.Render("Error: "+err.Error()))
	return werr
}

func (f *Formatter) json(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
