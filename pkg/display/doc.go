// Package display turns classified packages into user-facing output.
//
// Tables:
//
// A Presenter renders one table per non-empty bucket through an
// output.Renderer, in the fixed bucket order:
//
//	p := display.NewPresenter(os.Stdout, output.NewTableRenderer(), settings, display.Options{})
//	if err := p.Render(set); err != nil { ... }
//	p.RenderHints(set)
//
// Values:
//
// Use the value helpers for consistent cell content:
//
//	display.SafeVersionValue("")                   // Returns "#N/A"
//	display.LatestValue(record, settings, false)   // Falls back to the installed version
//
// Structured output:
//
// BuildReport converts a ClassifiedSet into an output.Report for the JSON,
// CSV, and XML formats.
package display
