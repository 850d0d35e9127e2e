package testutil

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ajxudir/pipcheck/pkg/query"
)

// PackageBuilder provides a fluent API for building test package records.
type PackageBuilder struct {
	rec query.PackageRecord
}

// NewPackage creates a new PackageBuilder with the given name.
//
// Parameters:
//   - name: Package name to set
//
// Returns:
//   - *PackageBuilder: New builder instance ready for method chaining
func NewPackage(name string) *PackageBuilder {
	return &PackageBuilder{rec: query.PackageRecord{Name: name}}
}

// WithVersion sets the installed version.
//
// Parameters:
//   - v: Installed version (e.g., "1.0.0")
//
// Returns:
//   - *PackageBuilder: Self for method chaining
func (b *PackageBuilder) WithVersion(v string) *PackageBuilder {
	b.rec.Version = v
	return b
}

// WithLatest sets the latest available version.
//
// Parameters:
//   - v: Latest version (e.g., "2.0.0")
//
// Returns:
//   - *PackageBuilder: Self for method chaining
func (b *PackageBuilder) WithLatest(v string) *PackageBuilder {
	b.rec.LatestVersion = v
	return b
}

// Build returns the constructed record.
func (b *PackageBuilder) Build() query.PackageRecord {
	return b.rec
}

// ListingJSON encodes records the way "pip list --format=json" prints them.
func ListingJSON(records ...query.PackageRecord) string {
	if records == nil {
		records = []query.PackageRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// FakeManager answers package manager commands from canned output.
//
// It matches commands by their trailing arguments, so it works for any
// configured command prefix. Every argv is recorded in Calls.
//
// Fields:
//   - Version: Output of "<cmd> --version"
//   - Outdated: Output of "<cmd> list --outdated ..."
//   - UpToDate: Output of "<cmd> list --uptodate ..."
//   - Errors: Error to return when a command line contains the key
//   - Calls: Every command line executed, in order
type FakeManager struct {
	Version  string
	Outdated string
	UpToDate string
	Errors   map[string]error
	Calls    []string
}

// NewFakeManager returns a FakeManager reporting pip 23.1 and empty listings.
func NewFakeManager() *FakeManager {
	return &FakeManager{
		Version:  "pip 23.1.2 from /usr/lib/python3/site-packages/pip (python 3.11)\n",
		Outdated: "[]",
		UpToDate: "[]",
	}
}

// Execute implements cmdexec.ExecuteFunc.
func (f *FakeManager) Execute(args []string) ([]byte, error) {
	line := strings.Join(args, " ")
	f.Calls = append(f.Calls, line)
	for key, err := range f.Errors {
		if strings.Contains(line, key) {
			return nil, err
		}
	}
	switch {
	case strings.HasSuffix(line, "--version"):
		return []byte(f.Version), nil
	case strings.Contains(line, " list --outdated"):
		return []byte(f.Outdated), nil
	case strings.Contains(line, " list --uptodate"):
		return []byte(f.UpToDate), nil
	}
	return nil, errors.New("unexpected command: " + line)
}
