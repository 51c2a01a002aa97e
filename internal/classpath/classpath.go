// Package classpath turns class file paths and documentation links into
// dotted package paths and ranks them against a search word.
package classpath

// Separator is the menu entry placed between exact and partial candidates.
const Separator = "-"

// MatchKind tags a package path as an exact or partial match for a word
type MatchKind int

const (
	Exact MatchKind = iota
	Partial
)

func (k MatchKind) String() string {
	if k == Exact {
		return "exact"
	}
	return "partial"
}

// Source identifies where a candidate was found. The numeric order is the
// merge order.
type Source int

const (
	SourceProject Source = iota
	SourceDocumentation
	SourceLibrary
)

func (s Source) String() string {
	switch s {
	case SourceProject:
		return "project"
	case SourceDocumentation:
		return "documentation"
	case SourceLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// Candidate is a raw hit from a scanner. File sources report a path relative
// to the scanned root; the documentation source reports a dotted path.
type Candidate struct {
	Source Source
	Path   string
}

// Record is a normalized package path and its classification
type Record struct {
	Path string
	Kind MatchKind
}

// NewRecord classifies an already normalized path
func NewRecord(path, word string) Record {
	return Record{Path: path, Kind: Classify(path, word)}
}

// ResultSet holds exact and partial package paths in insertion order
type ResultSet struct {
	Exact   []string `json:"exact" yaml:"exact"`
	Partial []string `json:"partial" yaml:"partial"`
}

// Add appends r to the list matching its kind
func (rs *ResultSet) Add(r Record) {
	if r.Kind == Exact {
		rs.Exact = append(rs.Exact, r.Path)
	} else {
		rs.Partial = append(rs.Partial, r.Path)
	}
}

// Append concatenates other's lists after rs's lists
func (rs *ResultSet) Append(other ResultSet) {
	rs.Exact = append(rs.Exact, other.Exact...)
	rs.Partial = append(rs.Partial, other.Partial...)
}

// Dedupe removes repeated paths within each list, keeping first occurrences.
// A path present in both lists stays in both.
func (rs *ResultSet) Dedupe() {
	rs.Exact = uniq(rs.Exact)
	rs.Partial = uniq(rs.Partial)
}

// Len is the total number of candidates
func (rs ResultSet) Len() int {
	return len(rs.Exact) + len(rs.Partial)
}

// Ordered returns the presentation list: exact paths, then Separator when
// both lists are non-empty, then partial paths.
func (rs ResultSet) Ordered() []string {
	out := make([]string, 0, rs.Len()+1)
	out = append(out, rs.Exact...)
	if len(rs.Exact) > 0 && len(rs.Partial) > 0 {
		out = append(out, Separator)
	}
	return append(out, rs.Partial...)
}

func uniq(paths []string) []string {
	if len(paths) == 0 {
		return paths
	}
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
