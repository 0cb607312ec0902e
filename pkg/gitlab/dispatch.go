package gitlab

import "context"

// GetObject fetches one object of this type. With GetFromList the full
// listing is scanned for a string-equal identifier; a miss is ErrNotFound
// even though the listing itself succeeded. A disallowed get fails before any
// network call.
func (d *Descriptor) GetObject(ctx context.Context, conn Connection, id any, params Params) (*Object, error) {
	switch d.GetMode {
	case GetDisabled:
		return nil, ErrNotImplemented
	case GetFromList:
		objs, err := d.ListObjects(ctx, conn, params)
		if err != nil {
			return nil, err
		}
		want := AttrString(id)
		for _, o := range objs {
			if AttrString(o.ID()) == want {
				return o, nil
			}
		}
		return nil, ErrNotFound
	}
	data, err := conn.Get(ctx, d, id, params)
	if err != nil {
		return nil, err
	}
	return newObject(conn, d, data, true, stripGeneric(params)), nil
}

// ListObjects fetches the listing for this type. The connection handles URL
// construction and pagination passthrough.
func (d *Descriptor) ListObjects(ctx context.Context, conn Connection, params Params) ([]*Object, error) {
	if !d.CanList() || d.Path == "" {
		return nil, ErrNotImplemented
	}
	items, err := conn.List(ctx, d, params)
	if err != nil {
		return nil, err
	}
	extra := stripGeneric(params)
	objs := make([]*Object, 0, len(items))
	for _, item := range items {
		objs = append(objs, newObject(conn, d, item, true, extra))
	}
	return objs, nil
}

// CreateObject builds a local object from data plus params and saves it,
// leaving it server-hydrated.
func (d *Descriptor) CreateObject(ctx context.Context, conn Connection, data map[string]any, params Params) (*Object, error) {
	if !d.CanCreate() {
		return nil, ErrNotImplemented
	}
	o := newObject(conn, d, data, false, params)
	if err := o.Save(ctx, nil); err != nil {
		return nil, err
	}
	return o, nil
}

// stripGeneric drops the paging/impersonation keys before params are attached
// to constructed objects as attributes.
func stripGeneric(params Params) Params {
	if len(params) == 0 {
		return nil
	}
	out := make(Params, len(params))
	for k, v := range params {
		switch k {
		case "page", "per_page", "sudo":
		default:
			out[k] = v
		}
	}
	return out
}

// objectsFromResponse builds server-hydrated objects from a raw listing
// response, for the convenience endpoints that sit outside the generic
// listing contract (search, owned/starred projects, closed issues).
func objectsFromResponse(conn Connection, d *Descriptor, resp *Response, extra Params) ([]*Object, error) {
	items, err := resp.JSONList()
	if err != nil {
		return nil, err
	}
	objs := make([]*Object, 0, len(items))
	for _, item := range items {
		objs = append(objs, newObject(conn, d, item, true, extra))
	}
	return objs, nil
}
