package brief

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/errors"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{"absent", "", ""},
		{"single line", "A logging facade", "A logging facade"},
		{"trailing newline", "A logging facade\n", "A logging facade"},
		{"crlf", "A logging facade\r\n", "A logging facade"},
		{"two lines", "Overwrite assert_eq!\nAlso nested.", "Overwrite assert_eq!…"},
		{"blank second line", "First\n\n", "First…"},
		{"leading newline", "\nSecond", "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.desc))
		})
	}
}

func TestTable(t *testing.T) {
	r := PlainRenderer()
	out, err := r.Table([]*deps.Package{
		pkg("libfoo", "1.0.0", "Foo library\nwith more text"),
		pkg("libbar", "0.2.0", ""),
		pkg("x", "10.20.30", "Single line"),
	})
	require.NoError(t, err)

	want := "" +
		"libfoo  1.0.0     Foo library…\n" +
		"libbar  0.2.0     \n" +
		"x       10.20.30  Single line\n"
	assert.Equal(t, want, out)
}

func TestTableEmpty(t *testing.T) {
	out, err := PlainRenderer().Table(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDetail(t *testing.T) {
	p := &deps.Package{
		ID:          "anyhow 1.0.86",
		Name:        "anyhow",
		Version:     "1.0.86",
		Description: "Flexible concrete Error type",
		Keywords:    []string{"error", "error-handling"},
		Categories:  []string{"rust-patterns", "no-std"},
		License:     "MIT OR Apache-2.0",
		Repository:  "https://github.com/dtolnay/anyhow",
		Features:    []string{"std", "default", "backtrace"},
	}

	out, err := PlainRenderer().Detail(p)
	require.NoError(t, err)

	want := "" +
		"name        : anyhow\n" +
		"descrip.    : Flexible concrete Error type\n" +
		"keywords    : error, error-handling\n" +
		"categories  : rust-patterns, no-std\n" +
		"version     : 1.0.86\n" +
		"license     : MIT OR Apache-2.0\n" +
		"homepage    : \n" +
		"repository  : https://github.com/dtolnay/anyhow\n" +
		"features    : std, default, backtrace\n"
	assert.Equal(t, want, out)
}

func TestDetailAlwaysNineLines(t *testing.T) {
	out, err := PlainRenderer().Detail(&deps.Package{Name: "bare", Version: "0.0.1"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	for i, label := range detailLabels {
		assert.True(t, strings.HasPrefix(lines[i], label), "line %d = %q, want label %q", i, lines[i], label)
		assert.Contains(t, lines[i], ": ")
	}
}

func TestDetailMultiLineDescription(t *testing.T) {
	out, err := PlainRenderer().Detail(pkg("beta", "2.0.0", "Beta crate\r\nsecond line\n"))
	require.NoError(t, err)

	want := "" +
		"name        : beta\n" +
		"descrip.    : Beta crate\n" +
		"              second line\n" +
		"keywords    : \n" +
		"categories  : \n" +
		"version     : 2.0.0\n" +
		"license     : \n" +
		"homepage    : \n" +
		"repository  : \n" +
		"features    : \n"
	assert.Equal(t, want, out)

	// Table rows only show the first line.
	table, err := PlainRenderer().Table([]*deps.Package{pkg("beta", "2.0.0", "Beta crate\nsecond line")})
	require.NoError(t, err)
	assert.Equal(t, "beta  2.0.0  Beta crate…\n", table)
}

func TestDetailLabelsAlignWithMultiLineValues(t *testing.T) {
	for _, mode := range []ColorMode{ColorNever, ColorAlways} {
		t.Run(string(mode), func(t *testing.T) {
			r := NewRenderer(&bytes.Buffer{}, mode)
			out, err := r.Detail(pkg("beta", "2.0.0", "Beta crate\nsecond line\nthird line"))
			require.NoError(t, err)

			var labeled []string
			for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
				if strings.Contains(l, ": ") {
					labeled = append(labeled, l)
				}
			}
			require.Len(t, labeled, len(detailLabels))
			col := strings.Index(labeled[0], ": ")
			for _, l := range labeled[1:] {
				assert.Equal(t, col, strings.Index(l, ": "), "misaligned line %q", l)
			}
		})
	}
}

func TestDetailColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ColorAlways)

	out, err := r.Detail(pkg("serde", "1.0.203", "Serialization"))
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "serde")

	// Every label carries the same escape overhead, so values still line up.
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	col := strings.Index(lines[0], ": ")
	for _, l := range lines[1:] {
		assert.Equal(t, col, strings.Index(l, ": "), "misaligned line %q", l)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"Always", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderInvalidUTF8(t *testing.T) {
	_, err := PlainRenderer().Table([]*deps.Package{pkg("bad\xc3\x28", "1.0.0", "")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutput))
}
