package domain

import "slices"

// Rooms is the ordered set of registered venue names.
// A room has no identity beyond its presence in the set.
type Rooms struct {
	names []string
	index map[string]struct{}
}

func NewRooms(names ...string) *Rooms {
	r := &Rooms{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		r.Add(name)
	}
	return r
}

// Add returns false when the name is already registered.
func (r *Rooms) Add(name string) bool {
	if r.Contains(name) {
		return false
	}
	r.names = append(r.names, name)
	r.index[name] = struct{}{}
	return true
}

// Remove returns false when the name is not registered.
func (r *Rooms) Remove(name string) bool {
	if !r.Contains(name) {
		return false
	}
	delete(r.index, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	return true
}

func (r *Rooms) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Names returns the rooms in registration order.
func (r *Rooms) Names() []string {
	return slices.Clone(r.names)
}

func (r *Rooms) Len() int {
	return len(r.names)
}
