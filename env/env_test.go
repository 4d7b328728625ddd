package env

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/exactcad/geomkernel/geometry"
	"github.com/exactcad/geomkernel/prec"
)

func TestNextIDMonotonic(t *testing.T) {
	e := New(golog.NewTestLogger(t), prec.New(-6, prec.HalfEven))
	a := e.NextID()
	b := e.NextID()
	test.That(t, b, test.ShouldBeGreaterThan, a)
}

func TestRegister(t *testing.T) {
	e := New(golog.NewTestLogger(t), prec.New(-6, prec.HalfEven))
	p := geometry.NewPointFromInts(1, 2, 3)
	s1 := e.Register(p)
	s2 := e.Register(p)
	test.That(t, s1.ID, test.ShouldNotEqual, s2.ID)
	test.That(t, s1.Geom, test.ShouldEqual, p)
	test.That(t, e.DefaultContext().OOM, test.ShouldEqual, -6)
}
