package display

import (
	"fmt"
	"io"

	"github.com/ajxudir/pipcheck/pkg/classify"
	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/constants"
	"github.com/ajxudir/pipcheck/pkg/output"
	"github.com/ajxudir/pipcheck/pkg/verbose"
)

// Options controls how a Presenter fills and draws its tables.
//
// Fields:
//   - Border: Table border characters
//   - FullVersion: Show version strings without truncation
//   - ShowUpdate: Show install commands instead of index URLs, and print upgrade hints
type Options struct {
	Border      output.Border
	FullVersion bool
	ShowUpdate  bool
}

// bucketAccents maps each bucket to its header color.
var bucketAccents = map[classify.Classification]output.Accent{
	classify.Major:     output.AccentRed,
	classify.Minor:     output.AccentYellow,
	classify.Unchanged: output.AccentGreen,
	classify.Unknown:   output.AccentMagenta,
}

// Presenter writes bucket tables and upgrade hints.
type Presenter struct {
	w        io.Writer
	renderer output.Renderer
	settings config.Settings
	opts     Options
}

// NewPresenter creates a Presenter.
//
// Parameters:
//   - w: Destination writer
//   - renderer: Table renderer; nil selects output.NewTableRenderer()
//   - settings: Supplies the command, truncation length, and index URL
//   - opts: Presentation options
//
// Returns:
//   - *Presenter: A presenter ready to Render
func NewPresenter(w io.Writer, renderer output.Renderer, settings config.Settings, opts Options) *Presenter {
	if renderer == nil {
		renderer = output.NewTableRenderer()
	}
	return &Presenter{w: w, renderer: renderer, settings: settings, opts: opts}
}

// Rows builds the table rows of one bucket, header first.
func (p *Presenter) Rows(b classify.Bucket) [][]string {
	rows := make([][]string, 0, len(b.Records)+1)
	rows = append(rows, []string{b.Classification.Title(), constants.HeaderInstalled, constants.HeaderLatest, constants.HeaderHelp})
	for _, r := range b.Records {
		rows = append(rows, []string{
			r.Name,
			InstalledValue(r, p.settings, p.opts.FullVersion),
			LatestValue(r, p.settings, p.opts.FullVersion),
			HelpValue(r, p.settings, p.opts.ShowUpdate),
		})
	}
	return rows
}

// Render writes one table per non-empty bucket.
//
// It performs the following operations:
//   - Step 1: Walks the buckets in the fixed order, skipping empty ones
//   - Step 2: Builds the rows for each bucket
//   - Step 3: Renders the table with the bucket's header color
//   - Step 4: Separates consecutive tables with a blank line
//
// Parameters:
//   - set: The classified packages
//
// Returns:
//   - error: The first rendering error, or nil
func (p *Presenter) Render(set classify.ClassifiedSet) error {
	for i, b := range set.Buckets() {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		style := output.Style{Border: p.opts.Border, Accent: bucketAccents[b.Classification]}
		verbose.Printf("Rendering %s table with %d packages", b.Classification, len(b.Records))
		if err := p.renderer.Render(p.w, p.Rows(b), style); err != nil {
			return err
		}
	}
	return nil
}

// RenderHints prints the combined upgrade command of the Major and Minor
// buckets. It does nothing unless ShowUpdate is set.
func (p *Presenter) RenderHints(set classify.ClassifiedSet) {
	if !p.opts.ShowUpdate {
		return
	}
	for _, c := range []classify.Classification{classify.Major, classify.Minor} {
		records := set.Get(c)
		if len(records) == 0 {
			continue
		}
		_, _ = fmt.Fprintln(p.w)
		output.Notice(p.w, constants.HintIntro, c)
		_, _ = fmt.Fprintln(p.w, UpgradeCommand(p.settings, records))
	}
}

// BuildReport converts set into a structured report. Every bucket is
// present, empty or not, in the fixed order. Versions are never truncated.
//
// Parameters:
//   - set: The classified packages
//   - settings: Supplies the command for install commands
//   - showUpdate: Include the install command of each package with a latest version
//
// Returns:
//   - output.Report: The report
func BuildReport(set classify.ClassifiedSet, settings config.Settings, showUpdate bool) output.Report {
	report := output.Report{Buckets: make([]output.ReportBucket, 0, len(classify.Order))}
	for _, c := range classify.Order {
		bucket := output.ReportBucket{Name: c.String()}
		for _, r := range set.Get(c) {
			pkg := output.ReportPackage{Name: r.Name, Version: r.Version, LatestVersion: r.LatestVersion}
			if showUpdate && r.HasLatest() {
				pkg.Command = InstallCommand(settings, r)
			}
			bucket.Packages = append(bucket.Packages, pkg)
		}
		report.Buckets = append(report.Buckets, bucket)
	}
	return report
}
