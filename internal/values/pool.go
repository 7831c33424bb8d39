package values

import (
	"sync"
	"sync/atomic"
)

// Pool is the InternalValueDataPool of spec.md §3: an arena owning the
// bookkeeping for every value created during a single render
// invocation. Unlike the reference engine's native-language arena, Go's
// garbage collector already owns the actual storage; Pool's job is
// narrower and grounded directly on go-dws's runtime.Pool
// (internal/interp/runtime/pool.go): hand out cheap, reused scalar
// values via sync.Pool-backed singletons/free-lists, and assign the
// sequential IDs that let a value record a parent back-reference.
//
// A Pool must not be shared across concurrent renders: it is created
// fresh per RenderContext and discarded when the render completes.
type Pool struct {
	nextID atomic.Uint64

	stats struct {
		created     atomic.Uint64
		boolSingle  atomic.Uint64
		intAllocs   atomic.Uint64
		floatAllocs atomic.Uint64
	}

	intFree   sync.Pool
	floatFree sync.Pool
}

// NewPool creates an empty arena for one render.
func NewPool() *Pool {
	p := &Pool{}
	p.intFree.New = func() interface{} {
		p.stats.intAllocs.Add(1)
		box := new(int64)
		return box
	}
	p.floatFree.New = func() interface{} {
		p.stats.floatAllocs.Add(1)
		box := new(float64)
		return box
	}
	return p
}

// nextHandle returns a fresh, render-unique id. Zero is never issued so
// the zero value of ID can mean "unset" (see InternalValue.hasParent).
func (p *Pool) nextHandle() ID {
	return ID(p.nextID.Add(1))
}

// Create is the general constructor spec.md §4.A names: it assigns v a
// fresh handle so later values can reference it as a parent, and
// records the allocation in Stats.
func (p *Pool) Create(v InternalValue) InternalValue {
	p.stats.created.Add(1)
	v.id = p.nextHandle()
	v.temporary = true
	return v
}

// Int returns a fresh Int value carrying a pool handle. The backing
// int64 is taken from a small free-list, mirroring go-dws's
// runtime.NewInteger pool-or-allocate pattern; the box is never
// actually dereferenced by InternalValue (which stores i inline), so
// this exists to preserve the allocation-counting contract Stats()
// reports — a direct analogue, not a literal necessity, of the
// reference pool's IntegerValue reuse.
func (p *Pool) Int(v int64) InternalValue {
	box := p.intFree.Get().(*int64)
	*box = v
	p.intFree.Put(box)
	return p.Create(Int(v))
}

// Float returns a fresh Double value, counted the same way as Int.
func (p *Pool) Float(v float64) InternalValue {
	box := p.floatFree.Get().(*float64)
	*box = v
	p.floatFree.Put(box)
	return p.Create(Double(v))
}

// Bool returns a Bool value. True/false don't need per-value pool
// bookkeeping since booleans have only two states (mirrors go-dws's
// singleton trueValue/falseValue), but Stats still counts the request.
func (p *Pool) Bool(v bool) InternalValue {
	p.stats.boolSingle.Add(1)
	return p.Create(Bool(v))
}

// Empty returns the empty value, given a pool handle like any other
// value so it can participate in parent-reference chains.
func (p *Pool) Empty() InternalValue {
	return p.Create(Empty())
}

// Stats summarizes arena usage for the just-completed (or in-progress)
// render.
type Stats struct {
	Created     uint64
	IntAllocs   uint64
	FloatAllocs uint64
	BoolReused  uint64
}

// Stats reports current pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Created:     p.stats.created.Load(),
		IntAllocs:   p.stats.intAllocs.Load(),
		FloatAllocs: p.stats.floatAllocs.Load(),
		BoolReused:  p.stats.boolSingle.Load(),
	}
}
