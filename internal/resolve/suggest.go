package resolve

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/danlite/as3pkg/internal/debug"
	"github.com/danlite/as3pkg/internal/scanner"
)

// Suggester proposes known class names close to a word that matched nothing
type Suggester struct {
	sources   []scanner.NameLister
	threshold float64
	max       int
}

func NewSuggester(threshold float64, max int, sources ...scanner.NameLister) *Suggester {
	return &Suggester{sources: sources, threshold: threshold, max: max}
}

type scoredName struct {
	name  string
	score float64
}

// Suggest returns up to max names whose Jaro-Winkler similarity to word is at
// least the threshold, best first. Comparison ignores case.
func (s *Suggester) Suggest(ctx context.Context, word string) []string {
	if s == nil || s.max == 0 || word == "" {
		return nil
	}

	lowerWord := strings.ToLower(word)
	seen := make(map[string]bool)
	var scored []scoredName

	for _, src := range s.sources {
		names, err := src.Names(ctx)
		if err != nil {
			debug.LogResolve("suggestion source failed: %v", err)
		}
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true

			score := similarity(lowerWord, strings.ToLower(name))
			if score >= s.threshold {
				scored = append(scored, scoredName{name: name, score: score})
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].name < scored[j].name
	})
	if len(scored) > s.max {
		scored = scored[:s.max]
	}

	out := make([]string, len(scored))
	for i, sn := range scored {
		out[i] = sn.name
	}
	return out
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}
