package protocol

import (
	"sort"

	"github.com/danmuck/structmsg/internal/enums"
)

// Registry maps message type identifiers to codec factories.
//
// Population is single threaded. Once handed to readers a registry must not
// be mutated; concurrent Lookup calls are then safe without locking.
type Registry struct {
	items map[enums.EMsg]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[enums.EMsg]Factory)}
}

// Register installs f for id. A later registration for the same id replaces
// the earlier one. A nil factory is ignored, so Lookup and New always agree.
func (r *Registry) Register(id enums.EMsg, f Factory) {
	if f == nil {
		return
	}
	r.items[id] = f
}

// Lookup returns the factory registered for id. A miss is a normal outcome.
func (r *Registry) Lookup(id enums.EMsg) (Factory, bool) {
	f, ok := r.items[id]
	return f, ok
}

// New returns a fresh message for id.
func (r *Registry) New(id enums.EMsg) (Message, bool) {
	f, ok := r.items[id]
	if !ok {
		return nil, false
	}
	return f(), true
}

// IDs returns the registered identifiers in ascending order.
func (r *Registry) IDs() []enums.EMsg {
	ids := make([]enums.EMsg, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.items)
}
