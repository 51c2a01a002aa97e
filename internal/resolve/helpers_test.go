package resolve

import (
	"context"
	"sync/atomic"

	"github.com/danlite/as3pkg/internal/classpath"
)

type fakeScanner struct {
	source classpath.Source
	paths  []string
	err    error
	calls  atomic.Int32
}

func (f *fakeScanner) Source() classpath.Source { return f.source }

func (f *fakeScanner) Scan(ctx context.Context, word string) ([]classpath.Candidate, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]classpath.Candidate, 0, len(f.paths))
	for _, p := range f.paths {
		out = append(out, classpath.Candidate{Source: f.source, Path: p})
	}
	return out, f.err
}

type fakeNames []string

func (f fakeNames) Names(context.Context) ([]string, error) { return f, nil }

type fakePresenter struct {
	index int
	ok    bool
	err   error
	got   []string
}

func (p *fakePresenter) Choose(_ context.Context, items []string) (int, bool, error) {
	p.got = items
	return p.index, p.ok, p.err
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(msg string) { n.messages = append(n.messages, msg) }

var (
	testRoots = []string{"src", "lib", "source", "test"}
	testExts  = []string{"as", "mxml"}
)
