package wm

import (
	"github.com/blazeneuro/blazewm/internal/platform"
)

// Client is one managed top-level window.
type Client struct {
	ID       platform.WindowID
	Geometry platform.Rect
	Type     platform.WindowType
	Mapped   bool
}

// Publisher receives the full client list after every registry mutation.
type Publisher func(windows []platform.WindowID) error

// Registry is the ordered set of managed clients. Its order is both the focus
// cycle order and the published _NET_CLIENT_LIST.
type Registry struct {
	order   []*Client
	index   map[platform.WindowID]*Client
	publish Publisher
}

// NewRegistry creates an empty registry publishing through publish, which may
// be nil.
func NewRegistry(publish Publisher) *Registry {
	return &Registry{
		index:   make(map[platform.WindowID]*Client),
		publish: publish,
	}
}

// Register appends c unless a client with the same ID is present. It reports
// whether the registry changed.
func (r *Registry) Register(c *Client) (bool, error) {
	if _, ok := r.index[c.ID]; ok {
		return false, nil
	}
	r.order = append(r.order, c)
	r.index[c.ID] = c
	return true, r.sync()
}

// Unregister removes id, keeping the order of the remaining clients. Unknown
// IDs are ignored and nothing is published.
func (r *Registry) Unregister(id platform.WindowID) (bool, error) {
	if _, ok := r.index[id]; !ok {
		return false, nil
	}
	for i, c := range r.order {
		if c.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	delete(r.index, id)
	return true, r.sync()
}

// RotateFrontToBack moves the first client to the end.
func (r *Registry) RotateFrontToBack() error {
	if len(r.order) < 2 {
		return nil
	}
	first := r.order[0]
	copy(r.order, r.order[1:])
	r.order[len(r.order)-1] = first
	return r.sync()
}

// MoveToBack moves id to the end of the order. It is a no-op for unknown IDs
// and for the client already at the end.
func (r *Registry) MoveToBack(id platform.WindowID) error {
	if _, ok := r.index[id]; !ok {
		return nil
	}
	last := len(r.order) - 1
	if r.order[last].ID == id {
		return nil
	}
	for i, c := range r.order {
		if c.ID == id {
			copy(r.order[i:], r.order[i+1:])
			r.order[last] = c
			break
		}
	}
	return r.sync()
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id platform.WindowID) bool {
	_, ok := r.index[id]
	return ok
}

// Get returns the client for id, or nil.
func (r *Registry) Get(id platform.WindowID) *Client {
	return r.index[id]
}

// First returns the front client, or nil when empty.
func (r *Registry) First() *Client {
	if len(r.order) == 0 {
		return nil
	}
	return r.order[0]
}

// Last returns the back client, or nil when empty.
func (r *Registry) Last() *Client {
	if len(r.order) == 0 {
		return nil
	}
	return r.order[len(r.order)-1]
}

func (r *Registry) Len() int      { return len(r.order) }
func (r *Registry) IsEmpty() bool { return len(r.order) == 0 }

// IDs returns a copy of the registered window IDs in order.
func (r *Registry) IDs() []platform.WindowID {
	ids := make([]platform.WindowID, len(r.order))
	for i, c := range r.order {
		ids[i] = c.ID
	}
	return ids
}

func (r *Registry) sync() error {
	if r.publish == nil {
		return nil
	}
	return r.publish(r.IDs())
}
