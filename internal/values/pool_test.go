package values

import "testing"

func TestPoolIssuesDistinctIDs(t *testing.T) {
	pool := NewPool()
	a := pool.Create(Int(1))
	b := pool.Create(Int(2))
	if a.id == 0 || b.id == 0 {
		t.Fatal("pool-created values should carry a nonzero id")
	}
	if a.id == b.id {
		t.Error("distinct Create calls should yield distinct ids")
	}
}

func TestPoolStatsCountsAllocations(t *testing.T) {
	pool := NewPool()
	pool.Int(1)
	pool.Int(2)
	pool.Float(1.5)
	pool.Bool(true)

	stats := pool.Stats()
	if stats.Created != 4 {
		t.Errorf("Created: got %d, want 4", stats.Created)
	}
	if stats.BoolReused != 1 {
		t.Errorf("BoolReused: got %d, want 1", stats.BoolReused)
	}
}

func TestPoolCreatedValuesAreTemporary(t *testing.T) {
	pool := NewPool()
	v := pool.Int(5)
	if !v.Temporary() {
		t.Error("a pool-created value should be marked temporary")
	}
}
