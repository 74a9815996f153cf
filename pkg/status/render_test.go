package status

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/cleanfig/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Home: "/home/u",
		Root: "/home/u/.config/cleanfig",
		Entries: []EntryStatus{
			{
				Entry:          "starship.toml",
				Kind:           types.KindFile,
				Destination:    "/home/u/.config/starship.toml",
				State:          StateLinked,
				LinkTarget:     "/home/u/.config/cleanfig/starship.toml",
				PointsToSource: true,
			},
			{Entry: ".git", Kind: types.KindIgnore, State: StateIgnored},
			{Entry: "foo.ini", State: StateUnknown, Message: "not a known configuration entry"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleReport(), false)

	assert.Contains(t, out, "/home/u/.config/cleanfig\n")
	assert.Contains(t, out, "starship.toml")
	assert.Contains(t, out, "linked")
	assert.Contains(t, out, "-> /home/u/.config/cleanfig/starship.toml")
	assert.Contains(t, out, "(not a known configuration entry)")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderText_NoTrailingSpace(t *testing.T) {
	report := sampleReport()
	report.Entries = append(report.Entries, EntryStatus{Entry: "README.md", Kind: types.KindIgnore, State: StateIgnored})

	out := RenderText(report, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line, "line %q", line)
	}
	assert.Contains(t, out, "  .git             ignored\n")
	assert.Contains(t, out, "  foo.ini          unknown   (not a known configuration entry)\n")
}

func TestRenderText_Empty(t *testing.T) {
	out := RenderText(&Report{Root: "/r"}, false)
	assert.Equal(t, "/r\n  (empty)\n", out)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatJSON, false))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatYAML, false))

	assert.Contains(t, buf.String(), "state: linked")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}

func TestRender_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatTOML, false))

	assert.Contains(t, buf.String(), "[[entries]]")

	var decoded Report
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), &decoded)
}
