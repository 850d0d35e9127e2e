package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive; an empty string selects FormatTable.
//
// Parameters:
//   - s: Format string to parse (e.g., "table", "JSON", "csv")
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json, csv, or xml)", s)
	}
}

// IsStructuredFormat returns true if the format is meant for machines (not table).
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Report is the structured form of a classified run.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Buckets: One entry per classification, in presentation order
type Report struct {
	XMLName xml.Name       `json:"-" xml:"pipcheckResult"`
	Buckets []ReportBucket `json:"-" xml:"bucket"`
}

// ReportBucket is one classification and its packages.
type ReportBucket struct {
	Name     string          `xml:"name,attr"`
	Packages []ReportPackage `xml:"package"`
}

// ReportPackage is a package entry in structured output.
//
// Fields:
//   - Name: Package name
//   - Version: Installed version (omitted if absent)
//   - LatestVersion: Latest available version (omitted if absent)
//   - Command: Install command for the latest version (omitted unless requested)
type ReportPackage struct {
	Name          string `json:"name" xml:"name"`
	Version       string `json:"version,omitempty" xml:"version,omitempty"`
	LatestVersion string `json:"latest_version,omitempty" xml:"latestVersion,omitempty"`
	Command       string `json:"command,omitempty" xml:"command,omitempty"`
}

// WriteReport writes report to w in the given structured format.
//
// Parameters:
//   - w: Destination writer
//   - format: FormatJSON, FormatCSV, or FormatXML
//   - report: The report to write
//
// Returns:
//   - error: When format is not structured or encoding fails
func WriteReport(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		return writeCSV(w, report)
	case FormatXML:
		return writeXML(w, report)
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// writeJSON writes the report as an object keyed by bucket name. The keys
// keep the report's bucket order.
func writeJSON(w io.Writer, report Report) error {
	data := orderedmap.New()
	data.SetEscapeHTML(false)
	for _, b := range report.Buckets {
		packages := b.Packages
		if packages == nil {
			packages = []ReportPackage{}
		}
		data.Set(b.Name, packages)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// writeCSV writes one row per package with its classification.
//
// Note: csv.Writer buffers all writes and only reports errors via Error() after Flush().
func writeCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"classification", "name", "version", "latest_version", "command"})
	for _, b := range report.Buckets {
		for _, p := range b.Packages {
			_ = cw.Write([]string{b.Name, p.Name, p.Version, p.LatestVersion, p.Command})
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeXML writes the XML header followed by the indented report.
func writeXML(w io.Writer, report Report) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
