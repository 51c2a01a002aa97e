package classpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultSet_AddAndOrdered(t *testing.T) {
	var rs ResultSet
	rs.Add(NewRecord("flash.events.Event", "Event"))
	rs.Add(NewRecord("flash.events.EventDispatcher", "Event"))
	rs.Add(NewRecord("mx.events.Event", "Event"))

	assert.Equal(t, []string{"flash.events.Event", "mx.events.Event"}, rs.Exact)
	assert.Equal(t, []string{"flash.events.EventDispatcher"}, rs.Partial)
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []string{
		"flash.events.Event",
		"mx.events.Event",
		Separator,
		"flash.events.EventDispatcher",
	}, rs.Ordered())
}

func TestResultSet_OrderedSingleKind(t *testing.T) {
	onlyExact := ResultSet{Exact: []string{"a.B"}}
	assert.Equal(t, []string{"a.B"}, onlyExact.Ordered())

	onlyPartial := ResultSet{Partial: []string{"a.BC", "a.BD"}}
	assert.Equal(t, []string{"a.BC", "a.BD"}, onlyPartial.Ordered())

	assert.Empty(t, ResultSet{}.Ordered())
}

func TestResultSet_DedupeWithinLists(t *testing.T) {
	project := ResultSet{Exact: []string{"com.A"}, Partial: []string{"com.AB"}}
	docs := ResultSet{Exact: []string{"com.A", "org.A"}, Partial: []string{"com.A"}}
	libs := ResultSet{Exact: []string{"org.A"}, Partial: []string{"com.AB"}}

	var merged ResultSet
	merged.Append(project)
	merged.Append(docs)
	merged.Append(libs)
	merged.Dedupe()

	assert.Equal(t, []string{"com.A", "org.A"}, merged.Exact)
	assert.Equal(t, []string{"com.AB", "com.A"}, merged.Partial, "cross-list duplicates are kept")
}

func TestResultSet_DedupeDoesNotAliasInput(t *testing.T) {
	input := []string{"a", "a", "b"}
	rs := ResultSet{Exact: input}
	rs.Dedupe()

	assert.Equal(t, []string{"a", "b"}, rs.Exact)
	assert.Equal(t, []string{"a", "a", "b"}, input)
}

func TestSourceAndKindStrings(t *testing.T) {
	assert.Equal(t, "project", SourceProject.String())
	assert.Equal(t, "documentation", SourceDocumentation.String())
	assert.Equal(t, "library", SourceLibrary.String())
	assert.Equal(t, "unknown", Source(42).String())
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "partial", Partial.String())
}
