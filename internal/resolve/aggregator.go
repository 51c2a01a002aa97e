package resolve

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/debug"
	as3errors "github.com/danlite/as3pkg/internal/errors"
	"github.com/danlite/as3pkg/internal/scanner"
)

// Aggregator runs every source for a word and merges their results
type Aggregator struct {
	scanners []scanner.Scanner
	roots    []string
	exts     []string
}

// NewAggregator creates an aggregator. Scanners are merged in source order
// (project, documentation, libraries) whatever order they are passed in.
func NewAggregator(roots, exts []string, scanners ...scanner.Scanner) *Aggregator {
	ordered := append([]scanner.Scanner(nil), scanners...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Source() < ordered[j].Source()
	})
	return &Aggregator{scanners: ordered, roots: roots, exts: exts}
}

// Aggregate scans all sources concurrently, normalizes and classifies each
// hit, then concatenates the exact lists and the partial lists in source
// order and removes duplicates within each list.
//
// A failing source contributes whatever it returned before failing; only
// cancellation of ctx aborts the query.
func (a *Aggregator) Aggregate(ctx context.Context, word string) (classpath.ResultSet, error) {
	perSource := make([][]classpath.Candidate, len(a.scanners))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range a.scanners {
		g.Go(func() error {
			candidates, err := s.Scan(gctx, word)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				if as3errors.IsResourceMissing(err) {
					debug.LogResolve("%s source unavailable, treating as empty: %v", s.Source(), err)
				} else {
					debug.LogResolve("%s source failed: %v", s.Source(), err)
				}
			}
			perSource[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return classpath.ResultSet{}, err
	}

	var merged classpath.ResultSet
	for _, candidates := range perSource {
		merged.Append(a.classify(candidates, word))
	}
	merged.Dedupe()

	debug.LogResolve("%q: %d exact, %d partial", word, len(merged.Exact), len(merged.Partial))
	return merged, nil
}

func (a *Aggregator) classify(candidates []classpath.Candidate, word string) classpath.ResultSet {
	var rs classpath.ResultSet
	for _, c := range candidates {
		path := c.Path
		if c.Source != classpath.SourceDocumentation {
			path = classpath.Normalize(path, a.roots, a.exts)
		}
		rs.Add(classpath.NewRecord(path, word))
	}
	return rs
}
