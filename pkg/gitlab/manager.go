package gitlab

import "context"

// Manager binds a resource type's operations to a parent context. It is a
// stateless view: parent-derived parameters are read from the parent's
// current attributes at call time, never cached, so mutating the parent is
// reflected in subsequent child calls.
type Manager struct {
	conn   Connection
	desc   *Descriptor
	parent *Object
	links  []AttrLink
}

// NewManager returns a top-level manager with no parent context.
func NewManager(conn Connection, desc *Descriptor) *Manager {
	return &Manager{conn: conn, desc: desc}
}

// Descriptor returns the resource type this manager operates on.
func (m *Manager) Descriptor() *Descriptor { return m.desc }

// Connection returns the transport this manager issues requests through.
func (m *Manager) Connection() Connection { return m.conn }

// parentArgs merges caller params over the parent-derived ones; explicit
// caller values win.
func (m *Manager) parentArgs(params Params) Params {
	args := Params{}
	if m.parent != nil {
		for _, l := range m.links {
			args[l.Child] = m.parent.Attr(l.Parent)
		}
	}
	for k, v := range params {
		args[k] = v
	}
	return args
}

// Get fetches one object.
func (m *Manager) Get(ctx context.Context, id any, params Params) (*Object, error) {
	return m.desc.GetObject(ctx, m.conn, id, m.parentArgs(params))
}

// List fetches the listing.
func (m *Manager) List(ctx context.Context, params Params) ([]*Object, error) {
	return m.desc.ListObjects(ctx, m.conn, m.parentArgs(params))
}

// Create creates a new object from data.
func (m *Manager) Create(ctx context.Context, data map[string]any, params Params) (*Object, error) {
	return m.desc.CreateObject(ctx, m.conn, data, m.parentArgs(params))
}

// Delete removes an object by identifier without fetching it first. This is
// deliberately looser than Object.Delete, which requires a server-hydrated
// instance.
func (m *Manager) Delete(ctx context.Context, id any, params Params) error {
	if !m.desc.CanDelete() {
		return ErrNotImplemented
	}
	return m.conn.Delete(ctx, m.desc, id, m.parentArgs(params))
}

// ResourceManager layers typed results over the generic manager; the resource
// catalog instantiates it once per resource type.
type ResourceManager[T any] struct {
	*Manager
	wrap func(*Object) *T
}

func typedManager[T any](m *Manager, wrap func(*Object) *T) ResourceManager[T] {
	return ResourceManager[T]{Manager: m, wrap: wrap}
}

// Get fetches one object as its typed wrapper.
func (m *ResourceManager[T]) Get(ctx context.Context, id any, params Params) (*T, error) {
	o, err := m.Manager.Get(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return m.wrap(o), nil
}

// List fetches the listing as typed wrappers.
func (m *ResourceManager[T]) List(ctx context.Context, params Params) ([]*T, error) {
	objs, err := m.Manager.List(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(objs))
	for _, o := range objs {
		out = append(out, m.wrap(o))
	}
	return out, nil
}

// Create creates a new object and returns its typed wrapper.
func (m *ResourceManager[T]) Create(ctx context.Context, data map[string]any, params Params) (*T, error) {
	o, err := m.Manager.Create(ctx, data, params)
	if err != nil {
		return nil, err
	}
	return m.wrap(o), nil
}
