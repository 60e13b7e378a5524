package views_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/on-the-ground/computed_views/views"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRuntime_ID(t *testing.T) {
	a := views.NewRuntime()
	b := views.NewRuntime()

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDefault(t *testing.T) {
	first := views.ResetDefault()

	assert.Same(t, first, views.Default())
	assert.Same(t, views.Default(), views.Default())

	second := views.ResetDefault()
	assert.NotSame(t, first, second)
	assert.Same(t, second, views.Default())
}

func TestRuntime_DebugLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rt := views.NewRuntime(views.WithLogger(zap.New(core)), views.WithDefaultSink(func(string) {}))

	rt.New("traced", func(s int) int { return s }, func(n int) int { return n })

	assert.Equal(t, 1, logs.FilterMessageSnippet("created views runtime").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("created view: name: **** traced ****").Len())
}
