package ecs_test

import (
	"errors"
	"testing"

	"github.com/plus3/oxide/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common test component types
type Position struct {
	X, Y int
}

type Velocity struct {
	X, Y int
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type Inventory struct {
	Items []string
}

type testContext struct {
	Log []string
}

type testWorld = ecs.World[testContext]

func newTestWorld() *testWorld {
	w := ecs.NewWorld[testContext]()
	ecs.Register[Position](w)
	ecs.Register[Velocity](w)
	ecs.Register[Name](w)
	ecs.Register[Health](w)
	ecs.Register[PlayerController](w)
	ecs.Register[Score](w)
	ecs.Register[Tag](w)
	ecs.Register[Inventory](w)
	return w
}

// assertPanicsWith runs fn and checks that it panics with an error matching
// target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "expected panic with an error, got %T: %v", r, r)
		assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	}()
	fn()
}
