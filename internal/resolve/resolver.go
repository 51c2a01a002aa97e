// Package resolve answers "which package is this class in?": it merges the
// scanner sources, ranks exact over partial matches and hands ambiguous
// results to a presenter.
package resolve

import (
	"context"
	"errors"
	"strings"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/config"
	"github.com/danlite/as3pkg/internal/debug"
	as3errors "github.com/danlite/as3pkg/internal/errors"
	"github.com/danlite/as3pkg/internal/scanner"
)

const (
	noInputMessage  = "Please select a class to locate the package path for."
	notFoundMessage = "Class not found"
)

// Presenter lets the user pick one of several candidates. ok is false when
// the user dismissed the list.
type Presenter interface {
	Choose(ctx context.Context, items []string) (index int, ok bool, err error)
}

// Notifier shows a transient message such as "Class not found"
type Notifier interface {
	Notify(msg string)
}

// Kind of a successful resolution
type Kind int

const (
	Definitive Kind = iota
	Disambiguate
)

func (k Kind) String() string {
	if k == Definitive {
		return "definitive"
	}
	return "disambiguate"
}

// Resolution is the result of Resolve. Candidates is the presentation
// order, including classpath.Separator between exact and partial matches.
type Resolution struct {
	Kind       Kind
	Path       string
	Candidates []string
	Results    classpath.ResultSet
}

// Status is the terminal state of FindPackage
type Status int

const (
	Found Status = iota
	NoInput
	NotFound
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoInput:
		return "no_input"
	case NotFound:
		return "not_found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome of FindPackage
type Outcome struct {
	Status      Status
	Path        string
	Candidates  []string
	Suggestions []string
	Message     string
}

// Resolver is the find-package entry point
type Resolver struct {
	aggregator *Aggregator
	suggester  *Suggester
	presenter  Presenter
	notifier   Notifier
}

// Option configures a Resolver
type Option func(*Resolver)

// WithPresenter sets the disambiguation presenter. Without one, ambiguous
// results end as Cancelled.
func WithPresenter(p Presenter) Option {
	return func(r *Resolver) { r.presenter = p }
}

// WithNotifier sets the notifier for "no input" and "not found" messages
func WithNotifier(n Notifier) Option {
	return func(r *Resolver) { r.notifier = n }
}

// WithAggregator replaces the sources built from the configuration
func WithAggregator(a *Aggregator) Option {
	return func(r *Resolver) { r.aggregator = a }
}

// WithSuggester replaces the suggestion source; nil disables suggestions
func WithSuggester(s *Suggester) Option {
	return func(r *Resolver) { r.suggester = s }
}

// New builds a resolver over the project, documentation and library
// sources described by cfg.
func New(cfg *config.Config, opts ...Option) *Resolver {
	scanners := scanner.FromConfig(cfg)
	r := &Resolver{
		aggregator: NewAggregator(cfg.Source.Roots, cfg.Source.Extensions, scanners...),
	}

	if cfg.Suggest.Enabled {
		var listers []scanner.NameLister
		for _, s := range scanners {
			if nl, ok := s.(scanner.NameLister); ok {
				listers = append(listers, nl)
			}
		}
		r.suggester = NewSuggester(cfg.Suggest.Threshold, cfg.Suggest.Max, listers...)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds the candidates for word. An empty word is an
// *errors.InputError and touches no source; no candidates is an
// *errors.NotFoundError carrying suggestions.
func (r *Resolver) Resolve(ctx context.Context, word string) (Resolution, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return Resolution{}, as3errors.NewInputError(word, noInputMessage)
	}

	results, err := r.aggregator.Aggregate(ctx, word)
	if err != nil {
		return Resolution{}, err
	}

	switch results.Len() {
	case 0:
		return Resolution{Results: results}, as3errors.NewNotFoundError(word, r.suggester.Suggest(ctx, word))
	case 1:
		path := results.Ordered()[0]
		return Resolution{Kind: Definitive, Path: path, Candidates: []string{path}, Results: results}, nil
	}

	return Resolution{Kind: Disambiguate, Candidates: results.Ordered(), Results: results}, nil
}

// FindPackage resolves word to a single package path, asking the presenter
// when there is more than one candidate. "No input", "not found" and
// "cancelled" are reported through the Outcome; the error is reserved for
// failures such as a cancelled context or a broken presenter.
func (r *Resolver) FindPackage(ctx context.Context, word string) (Outcome, error) {
	res, err := r.Resolve(ctx, word)
	if err != nil {
		var notFound *as3errors.NotFoundError
		switch {
		case as3errors.IsInputError(err):
			r.notify(noInputMessage)
			return Outcome{Status: NoInput, Message: noInputMessage}, nil
		case errors.As(err, &notFound):
			msg := notFoundMessage
			if len(notFound.Suggestions) > 0 {
				msg += ". Did you mean " + strings.Join(notFound.Suggestions, ", ") + "?"
			}
			r.notify(msg)
			return Outcome{Status: NotFound, Suggestions: notFound.Suggestions, Message: msg}, nil
		default:
			return Outcome{}, err
		}
	}

	if res.Kind == Definitive {
		return Outcome{Status: Found, Path: res.Path, Candidates: res.Candidates}, nil
	}

	cancelled := Outcome{Status: Cancelled, Candidates: res.Candidates}
	if r.presenter == nil {
		return cancelled, nil
	}

	idx, ok, err := r.presenter.Choose(ctx, res.Candidates)
	if errors.Is(err, as3errors.ErrCancelled) {
		return cancelled, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if !ok || idx < 0 || idx >= len(res.Candidates) || res.Candidates[idx] == classpath.Separator {
		debug.LogResolve("selection dismissed for %q", word)
		return cancelled, nil
	}

	return Outcome{Status: Found, Path: res.Candidates[idx], Candidates: res.Candidates}, nil
}

func (r *Resolver) notify(msg string) {
	if r.notifier != nil {
		r.notifier.Notify(msg)
	}
}
