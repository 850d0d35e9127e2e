package display

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipcheck/pkg/classify"
	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/output"
	"github.com/ajxudir/pipcheck/pkg/query"
)

// recordingRenderer captures every Render call instead of drawing.
type recordingRenderer struct {
	tables [][][]string
	styles []output.Style
	err    error
}

func (r *recordingRenderer) Render(w io.Writer, rows [][]string, style output.Style) error {
	r.tables = append(r.tables, rows)
	r.styles = append(r.styles, style)
	_, _ = io.WriteString(w, "<table>\n")
	return r.err
}

func disableColor(t *testing.T) {
	t.Helper()
	previous := output.ColorEnabled()
	output.SetColorEnabled(false)
	t.Cleanup(func() { output.SetColorEnabled(previous) })
}

func sampleSet() classify.ClassifiedSet {
	return classify.Classify(
		[]query.PackageRecord{
			{Name: "foo", Version: "1.0.0", LatestVersion: "2.0.0"},
			{Name: "bar", Version: "1.0.0", LatestVersion: "1.1.0"},
			{Name: "qux", Version: "2.0.0", LatestVersion: "1.0.0"},
			{Name: "nover"},
		},
		[]query.PackageRecord{{Name: "baz", Version: "1.0.0"}},
	)
}

// TestRenderBucketOrder tests table order, headers, and accents.
//
// It verifies:
//   - One table per non-empty bucket, in Major, Minor, Unchanged, Unknown order
//   - Header rows name the bucket and the fixed columns
//   - Each bucket gets its own header color
//   - Tables are separated by a blank line
func TestRenderBucketOrder(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingRenderer{}
	p := NewPresenter(&buf, rec, config.Default(), Options{Border: output.BorderASCII})

	require.NoError(t, p.Render(sampleSet()))
	require.Len(t, rec.tables, 4)

	assert.Equal(t, []string{"Major Release Update", "Installed", "Latest", "Help"}, rec.tables[0][0])
	assert.Equal(t, "Minor Release Update", rec.tables[1][0][0])
	assert.Equal(t, "Unchanged Packages", rec.tables[2][0][0])
	assert.Equal(t, "Unknown Package", rec.tables[3][0][0])

	assert.Equal(t, output.Style{Border: output.BorderASCII, Accent: output.AccentRed}, rec.styles[0])
	assert.Equal(t, output.AccentYellow, rec.styles[1].Accent)
	assert.Equal(t, output.AccentGreen, rec.styles[2].Accent)
	assert.Equal(t, output.AccentMagenta, rec.styles[3].Accent)

	assert.Equal(t, "<table>\n\n<table>\n\n<table>\n\n<table>\n", buf.String())
}

// TestRenderRows tests the cell content of each row.
func TestRenderRows(t *testing.T) {
	rec := &recordingRenderer{}
	p := NewPresenter(io.Discard, rec, config.Default(), Options{})
	require.NoError(t, p.Render(sampleSet()))

	assert.Equal(t, []string{"foo", "1.0.0", "2.0.0", "https://pypi.org/project/foo/"}, rec.tables[0][1])
	assert.Equal(t, []string{"baz", "1.0.0", "1.0.0", "https://pypi.org/project/baz/"}, rec.tables[2][1])
	assert.Equal(t, []string{"nover", "#N/A", "#N/A", "https://pypi.org/project/nover/"}, rec.tables[3][2])
}

// TestRenderSkipsEmptyBuckets tests that empty buckets produce no table.
func TestRenderSkipsEmptyBuckets(t *testing.T) {
	rec := &recordingRenderer{}
	set := classify.Classify([]query.PackageRecord{{Name: "bar", Version: "1.0", LatestVersion: "1.1"}}, nil)

	require.NoError(t, NewPresenter(io.Discard, rec, config.Default(), Options{}).Render(set))
	require.Len(t, rec.tables, 1)
	assert.Equal(t, "Minor Release Update", rec.tables[0][0][0])
}

// TestRenderError tests that renderer errors stop rendering.
func TestRenderError(t *testing.T) {
	rec := &recordingRenderer{err: errors.New("closed pipe")}
	err := NewPresenter(io.Discard, rec, config.Default(), Options{}).Render(sampleSet())
	assert.EqualError(t, err, "closed pipe")
	assert.Len(t, rec.tables, 1)
}

// TestTruncation tests version truncation and full-version mode.
//
// It verifies:
//   - Versions longer than the limit render as exactly "<first N>..."
//   - FullVersion disables truncation
//   - Versions at the limit are unchanged
func TestTruncation(t *testing.T) {
	settings := config.Default()
	settings.TruncateLength = 5
	r := query.PackageRecord{Name: "long", Version: "1.0.0.dev20240101", LatestVersion: "1.0.1"}

	assert.Equal(t, "1.0.0...", InstalledValue(r, settings, false))
	assert.Equal(t, "1.0.1", LatestValue(r, settings, false))
	assert.Equal(t, "1.0.0.dev20240101", InstalledValue(r, settings, true))

	r.LatestVersion = "2.0.0rc1"
	assert.Equal(t, "2.0.0...", LatestValue(r, settings, false))
}

// TestSafeVersionValue tests the placeholder helper.
func TestSafeVersionValue(t *testing.T) {
	assert.Equal(t, "#N/A", SafeVersionValue(""))
	assert.Equal(t, "#N/A", SafeVersionValue("  "))
	assert.Equal(t, "1.2", SafeVersionValue(" 1.2 "))
}

// TestHelpValue tests the Help column.
func TestHelpValue(t *testing.T) {
	settings := config.Default()
	r := query.PackageRecord{Name: "foo", Version: "1.0", LatestVersion: "2.0"}

	assert.Equal(t, "https://pypi.org/project/foo/", HelpValue(r, settings, false))
	assert.Equal(t, "pip install foo==2.0", HelpValue(r, settings, true))

	r.LatestVersion = ""
	assert.Equal(t, "https://pypi.org/project/foo/", HelpValue(r, settings, true))

	settings.Cmd = "python3 -m pip"
	r.LatestVersion = "2.0 beta"
	assert.Equal(t, "python3 -m pip install 'foo==2.0 beta'", HelpValue(r, settings, true))
}

// TestRenderHints tests the combined upgrade commands.
//
// It verifies:
//   - Nothing is printed without ShowUpdate
//   - One hint per non-empty Major and Minor bucket
//   - Package names are listed in bucket order
func TestRenderHints(t *testing.T) {
	disableColor(t)

	set := classify.Classify([]query.PackageRecord{
		{Name: "foo", Version: "1.0", LatestVersion: "2.0"},
		{Name: "bar", Version: "1.0", LatestVersion: "1.1"},
		{Name: "gamma", Version: "3.0", LatestVersion: "4.0"},
	}, nil)

	var buf bytes.Buffer
	NewPresenter(&buf, nil, config.Default(), Options{}).RenderHints(set)
	assert.Empty(t, buf.String())

	NewPresenter(&buf, nil, config.Default(), Options{ShowUpdate: true}).RenderHints(set)
	expected := strings.Join([]string{
		"",
		"To update major releases run:",
		"pip install --upgrade foo gamma",
		"",
		"To update minor releases run:",
		"pip install --upgrade bar",
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	onlyMinor := classify.Classify([]query.PackageRecord{{Name: "bar", Version: "1.0", LatestVersion: "1.1"}}, nil)
	NewPresenter(&buf, nil, config.Default(), Options{ShowUpdate: true}).RenderHints(onlyMinor)
	assert.NotContains(t, buf.String(), "major")
}

// TestRenderWithTableRenderer tests the presenter end to end with real borders.
func TestRenderWithTableRenderer(t *testing.T) {
	disableColor(t)

	set := classify.Classify([]query.PackageRecord{{Name: "foo", Version: "1.0.0", LatestVersion: "2.0.0"}}, nil)

	var ascii, box bytes.Buffer
	require.NoError(t, NewPresenter(&ascii, nil, config.Default(), Options{Border: output.BorderASCII}).Render(set))
	require.NoError(t, NewPresenter(&box, nil, config.Default(), Options{Border: output.BorderBox}).Render(set))

	assert.Contains(t, ascii.String(), "| foo                  | 1.0.0     | 2.0.0  | https://pypi.org/project/foo/ |")
	assert.Contains(t, box.String(), "│ foo                  │ 1.0.0     │ 2.0.0  │ https://pypi.org/project/foo/ │")
}

// TestBuildReport tests the structured report.
func TestBuildReport(t *testing.T) {
	report := BuildReport(sampleSet(), config.Default(), true)

	require.Len(t, report.Buckets, 4)
	assert.Equal(t, "major", report.Buckets[0].Name)
	assert.Equal(t, []output.ReportPackage{{Name: "foo", Version: "1.0.0", LatestVersion: "2.0.0", Command: "pip install foo==2.0.0"}}, report.Buckets[0].Packages)
	assert.Equal(t, "unchanged", report.Buckets[2].Name)
	assert.Equal(t, "baz", report.Buckets[2].Packages[0].Name)
	assert.Empty(t, report.Buckets[2].Packages[0].Command)
	assert.Equal(t, "nover", report.Buckets[3].Packages[1].Name)

	empty := BuildReport(classify.ClassifiedSet{}, config.Default(), false)
	require.Len(t, empty.Buckets, 4)
	assert.Empty(t, empty.Buckets[0].Packages)
}
