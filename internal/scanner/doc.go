package scanner

import (
	"bufio"
	"context"
	"os"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/debug"
	as3errors "github.com/danlite/as3pkg/internal/errors"
)

const (
	docResource = "documentation index"

	// Index lines are short but some generated TOCs put a whole package on one line
	maxDocLineBytes = 1024 * 1024

	ctxCheckInterval = 1024
)

// DocScanner searches the documentation table-of-contents. It never touches
// the filesystem beyond reading the index itself.
type DocScanner struct {
	toc string
}

func NewDocScanner(toc string) *DocScanner {
	return &DocScanner{toc: toc}
}

func (s *DocScanner) Source() classpath.Source {
	return classpath.SourceDocumentation
}

// Scan returns dotted paths of the links matching word, in document order.
// A missing index is reported as *errors.ResourceError.
func (s *DocScanner) Scan(ctx context.Context, word string) ([]classpath.Candidate, error) {
	var candidates []classpath.Candidate
	err := s.eachLine(ctx, func(line string) {
		if p, ok := classpath.MatchDocLine(line, word); ok {
			candidates = append(candidates, classpath.Candidate{Source: classpath.SourceDocumentation, Path: p})
		}
	})

	debug.LogScan("documentation: %d candidates for %q", len(candidates), word)
	return candidates, err
}

// Names returns every class and package member name in the index
func (s *DocScanner) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := s.eachLine(ctx, func(line string) {
		names = append(names, classpath.DocNames(line)...)
	})
	return names, err
}

func (s *DocScanner) eachLine(ctx context.Context, fn func(line string)) error {
	file, err := os.Open(s.toc)
	if err != nil {
		return as3errors.NewResourceError(docResource, s.toc, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDocLineBytes)

	for n := 0; scanner.Scan(); n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return as3errors.NewResourceError(docResource, s.toc, err)
	}
	return nil
}
