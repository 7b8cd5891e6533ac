package spatialhash

// Table is an open-chaining multimap from Key to a small set of uint32
// values (for example the vertex indices meshsimplify's welding table
// stores).
type Table struct {
	buckets map[Key][]uint32
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{buckets: make(map[Key][]uint32)}
}

// Insert appends value to key's bucket.
func (t *Table) Insert(key Key, value uint32) {
	t.buckets[key] = append(t.buckets[key], value)
}

// Remove deletes the first occurrence of value from key's bucket, if
// present. It is a no-op if value is not found.
func (t *Table) Remove(key Key, value uint32) {
	vs, ok := t.buckets[key]
	if !ok {
		return
	}
	for i, v := range vs {
		if v == value {
			vs = append(vs[:i], vs[i+1:]...)
			break
		}
	}
	if len(vs) == 0 {
		delete(t.buckets, key)
	} else {
		t.buckets[key] = vs
	}
}

// Iter returns the values stored under key. The returned slice is owned by
// the Table and must not be mutated by the caller.
func (t *Table) Iter(key Key) []uint32 {
	return t.buckets[key]
}

// ClearKey removes every value stored under key.
func (t *Table) ClearKey(key Key) {
	delete(t.buckets, key)
}

// Len reports the number of distinct keys currently populated.
func (t *Table) Len() int {
	return len(t.buckets)
}
