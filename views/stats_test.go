package views_test

import (
	"testing"

	"github.com/on-the-ground/computed_views/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_Stats(t *testing.T) {
	rt := views.NewRuntime(views.WithDefaultSink(func(string) {}))
	view := rt.CreateBuilder()("stats")

	identity := func(s int) int { return s }
	double := func(n int) int { return n * 2 }

	hot := view("hot", identity, double)
	cold := view("cold", identity, double)
	view("idle", identity, double)
	quiet := rt.CreateBuilder(views.WithViewRecomputations(false))("quiet")
	quiet("untracked", identity, double).Select(1)

	for i := range 3 {
		hot.Select(i)
	}
	cold.Select(1)

	stats := rt.Stats()
	require.Len(t, stats, 3, "only instrumented views are tracked")

	assert.Equal(t, "[stats] - **** hot ****", stats[0].Name)
	assert.Equal(t, 3, stats[0].Recomputations)
	assert.Equal(t, "[stats] - **** cold ****", stats[1].Name)
	assert.Equal(t, 1, stats[1].Recomputations)
	assert.Equal(t, "[stats] - **** idle ****", stats[2].Name)
	assert.Equal(t, 0, stats[2].Recomputations)

	span := stats[0].LastRecomputation
	assert.False(t, span.Start().IsZero())
	assert.False(t, span.End().Before(span.Start()))
}

func TestRuntime_StatsOnePerDeclaration(t *testing.T) {
	rt := views.NewRuntime(views.WithDefaultSink(func(string) {}))
	view := rt.CreateBuilder()("decl")

	a := view("a", func(s int) int { return s }, func(n int) int { return n })
	b := view("b", func(s int) int { return s }, func(n int) int { return n })
	for i := range 10 {
		a.Select(i)
		b.Select(i / 5)
	}

	stats := rt.Stats()
	require.Len(t, stats, 2, "selecting does not register entries")
	assert.Equal(t, "[decl] - **** a ****", stats[0].Name)
	assert.Equal(t, 10, stats[0].Recomputations)
	assert.Equal(t, "[decl] - **** b ****", stats[1].Name)
	assert.Equal(t, 2, stats[1].Recomputations)
}
