package brief

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/errors"
)

// Ellipsis is appended to a summary cut from a multi-line description.
const Ellipsis = "…"

// Tab-writer geometry: cells are padded to at least two columns plus two
// spaces of separation.
const (
	cellMinWidth = 2
	cellTabWidth = 8
	cellPadding  = 2
)

// ColorMode selects whether detail labels are highlighted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Highlight when the output is a terminal
	ColorAlways ColorMode = "always" // Always emit ANSI colour
	ColorNever  ColorMode = "never"  // Plain text
)

// ParseColorMode validates s. The empty string means [ColorAuto].
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "invalid color mode %q (want auto, always or never)", s)
	}
}

// detailLabels is the fixed row order of the detail listing.
var detailLabels = [...]string{
	"name",
	"descrip.",
	"keywords",
	"categories",
	"version",
	"license",
	"homepage",
	"repository",
	"features",
}

// Renderer turns matched packages into column-aligned text.
type Renderer struct {
	Label lipgloss.Style // Style applied to detail labels
}

// NewRenderer creates a renderer whose colour detection is bound to w.
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{Label: r.NewStyle().Foreground(lipgloss.Color("2"))}
}

// PlainRenderer returns a renderer that never emits escape codes.
func PlainRenderer() *Renderer { return NewRenderer(io.Discard, ColorNever) }

// Summary returns the first line of desc, with [Ellipsis] appended when
// more lines follow. A single trailing newline does not count as a second
// line.
func Summary(desc string) string {
	first, rest, _ := strings.Cut(desc, "\n")
	first = strings.TrimSuffix(first, "\r")
	if rest != "" {
		return first + Ellipsis
	}
	return first
}

// Table renders one `name version summary` row per package.
func (r *Renderer) Table(pkgs []*deps.Package) (string, error) {
	var buf bytes.Buffer
	tw := newTabWriter(&buf)
	for _, p := range pkgs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Version, Summary(p.Description))
	}
	return finish(tw, &buf)
}

// Detail renders the nine-labeled-line listing for a single package. Absent
// fields produce empty values, never missing rows. Further lines of a
// multi-line value follow their row, aligned with its value column.
func (r *Renderer) Detail(p *deps.Package) (string, error) {
	values := [len(detailLabels)]string{
		p.Name,
		p.Description,
		strings.Join(p.Keywords, ", "),
		strings.Join(p.Categories, ", "),
		p.Version,
		p.License,
		p.Homepage,
		p.Repository,
		strings.Join(p.Features, ", "),
	}

	var buf bytes.Buffer
	tw := newTabWriter(&buf)
	for i, label := range detailLabels {
		fmt.Fprintf(tw, "%s\t: %s\n", label, continueCell(values[i]))
	}
	text, err := finish(tw, &buf)
	if err != nil {
		return "", err
	}
	return r.styleLabels(text), nil
}

// continueCell keeps the extra lines of a multi-line value inside the tab
// block, indented under the first line's value.
func continueCell(v string) string {
	v = strings.ReplaceAll(strings.TrimRight(v, "\r\n"), "\r\n", "\n")
	return strings.ReplaceAll(v, "\n", "\n\t  ")
}

// styleLabels applies the label style after alignment so that escape codes
// never count toward column widths. Continuation lines start with padding
// and are left alone.
func (r *Renderer) styleLabels(text string) string {
	lines := strings.SplitAfter(text, "\n")
	next := 0
	for i, l := range lines {
		if next == len(detailLabels) {
			break
		}
		if label := detailLabels[next]; strings.HasPrefix(l, label) {
			lines[i] = r.Label.Render(label) + l[len(label):]
			next++
		}
	}
	return strings.Join(lines, "")
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, cellMinWidth, cellTabWidth, cellPadding, ' ', 0)
}

func finish(tw *tabwriter.Writer, buf *bytes.Buffer) (string, error) {
	if err := tw.Flush(); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutput, err, "flush aligned output")
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errors.New(errors.ErrCodeOutput, "rendered output is not valid UTF-8")
	}
	return buf.String(), nil
}
