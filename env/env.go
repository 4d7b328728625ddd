// Package env is the environment collaborator for the geometry kernel: it
// owns the process-wide default precision context and hands out the stable
// identifiers that compound shapes carry. The kernel itself never
// generates identifiers.
package env

import (
	"sync/atomic"

	"github.com/edaniels/golog"

	"github.com/exactcad/geomkernel/geometry"
	"github.com/exactcad/geomkernel/prec"
)

// Environment supplies defaults and identity to kernel callers. It is safe
// for concurrent use.
type Environment struct {
	logger   golog.Logger
	defaults prec.Context
	nextID   atomic.Int64
}

// New builds an environment with the given logger and default precision
// context.
func New(logger golog.Logger, defaults prec.Context) *Environment {
	return &Environment{logger: logger, defaults: defaults}
}

// Logger returns the environment's logger.
func (e *Environment) Logger() golog.Logger {
	return e.logger
}

// DefaultContext returns the default precision context for queries whose
// callers did not pick one.
func (e *Environment) DefaultContext() prec.Context {
	return e.defaults
}

// NextID returns a fresh identifier. Identifiers increase monotonically
// and are never reused within an environment.
func (e *Environment) NextID() int64 {
	return e.nextID.Add(1)
}

// Shape pairs a geometry with a stable identity.
type Shape struct {
	ID   int64
	Geom geometry.Geometry
}

// Register assigns the next identifier to a geometry.
func (e *Environment) Register(g geometry.Geometry) Shape {
	s := Shape{ID: e.NextID(), Geom: g}
	e.logger.Debugw("registered shape", "id", s.ID, "kind", g.Kind().String())
	return s
}
