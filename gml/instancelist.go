package gml

// InstanceList is the arena holding every live instance, keyed by a stable
// Handle. Instances are never physically removed from the
// backing slice when destroyed — only flagged — so that an iterator
// holding a cursor into the slice is safe to keep advancing after a
// destruction mid-iteration.
type InstanceList struct {
	order    []Handle
	byHandle map[Handle]*Instance
	byID     map[int32]Handle
	next     Handle
}

// NewInstanceList constructs an empty arena.
func NewInstanceList() *InstanceList {
	return &InstanceList{
		byHandle: make(map[Handle]*Instance),
		byID:     make(map[int32]Handle),
	}
}

// Insert registers a new instance in insertion order and returns its handle.
func (l *InstanceList) Insert(inst *Instance) Handle {
	h := l.next
	l.next++
	l.byHandle[h] = inst
	l.byID[inst.ID] = h
	l.order = append(l.order, h)
	return h
}

// Get returns the instance for a handle, or nil if the handle was never
// issued by this list. A destroyed instance is still returned (with
// Destroyed set), so state can be read back after destruction.
func (l *InstanceList) Get(h Handle) *Instance {
	return l.byHandle[h]
}

// GetByInstID looks up a handle by the instance's runtime id.
func (l *InstanceList) GetByInstID(id int32) (Handle, bool) {
	h, ok := l.byID[id]
	if !ok {
		return 0, false
	}
	if l.byHandle[h].Destroyed {
		return 0, false
	}
	return h, true
}

// Destroy logically removes an instance: later iteration and id lookups
// (GetByInstID) treat it as gone, while Get(h) still returns it flagged
// Destroyed. Its slot in `order` is retained so in-flight iterators
// don't skip or revisit neighboring instances.
func (l *InstanceList) Destroy(h Handle) {
	inst, ok := l.byHandle[h]
	if !ok || inst.Destroyed {
		return
	}
	inst.Destroyed = true
	delete(l.byID, inst.ID)
}

// CountAll returns the number of live (non-destroyed) instances
//.
func (l *InstanceList) CountAll() int {
	n := 0
	for _, h := range l.order {
		if !l.byHandle[h].Destroyed {
			n++
		}
	}
	return n
}

// InstanceAt returns the id of the n-th live instance in insertion order
//.
func (l *InstanceList) InstanceAt(n int) (int32, bool) {
	i := 0
	for _, h := range l.order {
		inst := l.byHandle[h]
		if inst.Destroyed {
			continue
		}
		if i == n {
			return inst.ID, true
		}
		i++
	}
	return 0, false
}

// InsertionIterator walks the arena in stable insertion order, skipping
// destroyed instances, including ones destroyed after the iterator was
// created.
type InsertionIterator struct {
	list *InstanceList
	pos  int
}

// IterByInsertion begins an insertion-order walk over every live instance
// (used for `with (all)` and Target::All field/variable writes).
func (l *InstanceList) IterByInsertion() *InsertionIterator {
	return &InsertionIterator{list: l}
}

// Next advances the iterator, returning the next live handle or false when
// exhausted.
func (it *InsertionIterator) Next() (Handle, bool) {
	for it.pos < len(it.list.order) {
		h := it.list.order[it.pos]
		it.pos++
		if !it.list.byHandle[h].Destroyed {
			return h, true
		}
	}
	return 0, false
}

// First returns the first live instance without consuming an iterator
// (used by Field/Variable reads against Target::All).
func (l *InstanceList) First() (Handle, bool) {
	return l.IterByInsertion().Next()
}

// IdentityIterator walks only instances whose object index is a member of
// a given class-descendant set, in the same deletion-safe insertion order.
type IdentityIterator struct {
	list    *InstanceList
	pos     int
	members map[int32]bool
}

// IterByIdentity begins a walk over every live instance belonging to one of
// the given object-class ids (typically an object and its descendants;
// the caller supplies the already-flattened set, Objects(class)).
func (l *InstanceList) IterByIdentity(members map[int32]bool) *IdentityIterator {
	return &IdentityIterator{list: l, members: members}
}

func (it *IdentityIterator) Next() (Handle, bool) {
	for it.pos < len(it.list.order) {
		h := it.list.order[it.pos]
		it.pos++
		inst := it.list.byHandle[h]
		if inst.Destroyed {
			continue
		}
		if it.members[inst.ObjectIndex] {
			return h, true
		}
	}
	return 0, false
}

// FirstByIdentity returns the first live instance matching members, without
// a persistent iterator (used by Field/Variable reads against
// Target::Objects).
func (l *InstanceList) FirstByIdentity(members map[int32]bool) (Handle, bool) {
	return l.IterByIdentity(members).Next()
}
