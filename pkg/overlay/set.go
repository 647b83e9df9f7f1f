package overlay

import "fmt"

// Set holds overlays keyed by identity together with an explicit z-order.
// What exists lives in the map; how it stacks lives in order.
type Set struct {
	byID  map[ID]Overlay
	order []ID
}

// NewSet creates a set containing overlays in the given order.
func NewSet(overlays ...Overlay) *Set {
	s := &Set{byID: make(map[ID]Overlay, len(overlays))}
	for _, o := range overlays {
		s.Add(o)
	}
	return s
}

// Len returns the number of overlays.
func (s *Set) Len() int {
	return len(s.order)
}

// Add places o on top of the stack. Adding an existing ID replaces its
// contents without changing its position.
func (s *Set) Add(o Overlay) {
	if _, ok := s.byID[o.ID]; !ok {
		s.order = append(s.order, o.ID)
	}
	s.byID[o.ID] = o.Clone()
}

// Get returns a copy of the overlay with the given ID.
func (s *Set) Get(id ID) (Overlay, bool) {
	o, ok := s.byID[id]
	if !ok {
		return Overlay{}, false
	}
	return o.Clone(), true
}

// Update mutates the overlay with the given ID in place.
func (s *Set) Update(id ID, fn func(*Overlay)) error {
	o, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("overlay %s not found", id)
	}
	fn(&o)
	o.ID = id
	s.byID[id] = o
	return nil
}

// Remove deletes the overlay with the given ID. It reports whether it existed.
func (s *Set) Remove(id ID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// BringToFront moves the overlay to the top of the z-order.
func (s *Set) BringToFront(id ID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, id)
	return true
}

// Order returns a copy of the z-order, bottom first.
func (s *Set) Order() []ID {
	out := make([]ID, len(s.order))
	copy(out, s.order)
	return out
}

// Snapshot returns value copies of every overlay in z-order. Later changes
// to the set never show up in a snapshot.
func (s *Set) Snapshot() []Overlay {
	return Resolve(s.order, s.byID)
}

// Resolve builds the draw list from an order and an identity map. IDs
// missing from the map are skipped.
func Resolve(order []ID, byID map[ID]Overlay) []Overlay {
	out := make([]Overlay, 0, len(order))
	for _, id := range order {
		o, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}
