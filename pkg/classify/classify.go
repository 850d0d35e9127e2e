// Package classify sorts package records into update severity buckets.
//
// Anomalies reported by the package manager are kept visible rather than
// dropped: an "outdated" package whose installed version is newer than the
// latest one lands in Unknown, and one whose versions are equal lands in
// Unchanged.
package classify

import (
	"github.com/ajxudir/pipcheck/pkg/query"
	"github.com/ajxudir/pipcheck/pkg/verbose"
	"github.com/ajxudir/pipcheck/pkg/version"
)

// Classification is the update severity of a package.
type Classification int

const (
	// Major means the leading version component changed.
	Major Classification = iota
	// Minor means a newer version exists with the same leading component.
	Minor
	// Unchanged means the package is up to date.
	Unchanged
	// Unknown means the versions are missing, unreadable, or inverted.
	Unknown
)

// Order is the fixed presentation order of the buckets.
var Order = []Classification{Major, Minor, Unchanged, Unknown}

// String returns the lower-case bucket key (e.g., "major").
func (c Classification) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Title returns the table heading for the bucket.
func (c Classification) Title() string {
	switch c {
	case Major:
		return "Major Release Update"
	case Minor:
		return "Minor Release Update"
	case Unchanged:
		return "Unchanged Packages"
	default:
		return "Unknown Package"
	}
}

// ClassifiedSet holds the records of each bucket in discovery order.
type ClassifiedSet struct {
	buckets [4][]query.PackageRecord
}

// Add appends a record to the bucket for c.
func (s *ClassifiedSet) Add(c Classification, r query.PackageRecord) {
	if c < Major || c > Unknown {
		c = Unknown
	}
	s.buckets[c] = append(s.buckets[c], r)
}

// Get returns the records of bucket c in insertion order.
func (s *ClassifiedSet) Get(c Classification) []query.PackageRecord {
	if c < Major || c > Unknown {
		return nil
	}
	return s.buckets[c]
}

// Len returns the total number of records across all buckets.
func (s *ClassifiedSet) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Bucket is one non-empty classification with its records.
type Bucket struct {
	Classification Classification
	Records        []query.PackageRecord
}

// Buckets returns the non-empty buckets in Order.
func (s *ClassifiedSet) Buckets() []Bucket {
	var out []Bucket
	for _, c := range Order {
		if records := s.buckets[c]; len(records) > 0 {
			out = append(out, Bucket{Classification: c, Records: records})
		}
	}
	return out
}

// ClassifyRecord decides the bucket for one outdated record.
//
// Rules, applied in order:
//   - missing or unparseable installed or latest version -> Unknown
//   - installed newer than latest -> Unknown (pre-release anomaly)
//   - installed equal to latest -> Unchanged (upstream anomaly)
//   - latest leading numeric component greater -> Major
//   - otherwise -> Minor
//
// Parameters:
//   - r: The record to classify
//
// Returns:
//   - Classification: The bucket for r
func ClassifyRecord(r query.PackageRecord) Classification {
	if !r.HasVersion() || !r.HasLatest() {
		verbose.Tracef("%s: missing version information -> %s", r.Name, Unknown)
		return Unknown
	}

	current, err := version.Parse(r.Version)
	if err != nil {
		verbose.Tracef("%s: %v -> %s", r.Name, err, Unknown)
		return Unknown
	}
	latest, err := version.Parse(r.LatestVersion)
	if err != nil {
		verbose.Tracef("%s: %v -> %s", r.Name, err, Unknown)
		return Unknown
	}

	var c Classification
	switch cmp := version.Compare(current, latest); {
	case cmp > 0:
		c = Unknown
	case cmp == 0:
		c = Unchanged
	case version.CompareMajor(latest, current) > 0:
		c = Major
	default:
		c = Minor
	}

	verbose.Tracef("%s: %s -> %s = %s", r.Name, current, latest, c)
	return c
}

// Classify builds the ClassifiedSet for one run.
//
// Outdated records go through ClassifyRecord; up-to-date records go to
// Unchanged directly. Within each bucket, outdated records come first, then
// up-to-date records, each in input order.
//
// Parameters:
//   - outdated: Records from the outdated listing
//   - upToDate: Records from the up-to-date listing, may be nil
//
// Returns:
//   - ClassifiedSet: The populated buckets
func Classify(outdated, upToDate []query.PackageRecord) ClassifiedSet {
	var set ClassifiedSet
	for _, r := range outdated {
		set.Add(ClassifyRecord(r), r)
	}
	for _, r := range upToDate {
		set.Add(Unchanged, r)
	}
	verbose.Printf("Classified %d packages: %d major, %d minor, %d unchanged, %d unknown",
		set.Len(), len(set.Get(Major)), len(set.Get(Minor)), len(set.Get(Unchanged)), len(set.Get(Unknown)))
	return set
}
