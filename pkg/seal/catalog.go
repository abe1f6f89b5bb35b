package seal

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// catalog is an append-only, copy-on-write list of records.
//
// Readers load the current slice without locking and must treat it as
// immutable. Writers hold mu, build a new slice and publish it, so a scan
// in progress keeps seeing the snapshot it started with.
type catalog struct {
	mu      sync.Mutex
	records atomic.Pointer[[]Record]
	unique  bool
}

func newCatalog(unique bool) *catalog {
	c := &catalog{unique: unique}
	empty := []Record{}
	c.records.Store(&empty)
	return c
}

// snapshot returns the current record slice. Callers must not modify it.
func (c *catalog) snapshot() []Record {
	return *c.records.Load()
}

// add validates r and appends it. A failed add leaves the catalog unchanged.
func (c *catalog) add(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r = r.normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.snapshot()
	if c.unique {
		for _, existing := range cur {
			if existing.PartNumber == r.PartNumber {
				return fmt.Errorf("%w: %s", ErrDuplicatePartNumber, r.PartNumber)
			}
		}
	}

	next := make([]Record, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, r)
	c.records.Store(&next)
	return nil
}

// list returns deep copies of every record in insertion order.
func (c *catalog) list() []Record {
	cur := c.snapshot()
	out := make([]Record, len(cur))
	for i, r := range cur {
		out[i] = r.clone()
	}
	return out
}

// lookup returns a copy of the first record with the given part number.
func (c *catalog) lookup(partNumber string) (Record, bool) {
	for _, r := range c.snapshot() {
		if r.PartNumber == partNumber {
			return r.clone(), true
		}
	}
	return Record{}, false
}

func (c *catalog) len() int {
	return len(c.snapshot())
}
