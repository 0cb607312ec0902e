package gitlab

import (
	"context"
	"fmt"
)

// fakeConn implements Connection with per-call function fields, so each test
// wires only the verbs it expects. An unexpected verb fails the request.
type fakeConn struct {
	getFn    func(ctx context.Context, desc *Descriptor, id any, params Params) (map[string]any, error)
	listFn   func(ctx context.Context, desc *Descriptor, params Params) ([]map[string]any, error)
	createFn func(ctx context.Context, obj *Object, params Params) (map[string]any, error)
	updateFn func(ctx context.Context, obj *Object, params Params) (map[string]any, error)
	deleteFn func(ctx context.Context, desc *Descriptor, id any, params Params) error

	rawGetFn    func(ctx context.Context, path string, params Params) (*Response, error)
	rawPostFn   func(ctx context.Context, path string, body any, params Params) (*Response, error)
	rawPutFn    func(ctx context.Context, path string, body any, params Params) (*Response, error)
	rawDeleteFn func(ctx context.Context, path string, params Params) (*Response, error)
}

var _ Connection = (*fakeConn)(nil)

func (c *fakeConn) Get(ctx context.Context, desc *Descriptor, id any, params Params) (map[string]any, error) {
	if c.getFn == nil {
		return nil, fmt.Errorf("unexpected Get on %s", desc.Name)
	}
	return c.getFn(ctx, desc, id, params)
}

func (c *fakeConn) List(ctx context.Context, desc *Descriptor, params Params) ([]map[string]any, error) {
	if c.listFn == nil {
		return nil, fmt.Errorf("unexpected List on %s", desc.Name)
	}
	return c.listFn(ctx, desc, params)
}

func (c *fakeConn) Create(ctx context.Context, obj *Object, params Params) (map[string]any, error) {
	if c.createFn == nil {
		return nil, fmt.Errorf("unexpected Create on %s", obj.Descriptor().Name)
	}
	return c.createFn(ctx, obj, params)
}

func (c *fakeConn) Update(ctx context.Context, obj *Object, params Params) (map[string]any, error) {
	if c.updateFn == nil {
		return nil, fmt.Errorf("unexpected Update on %s", obj.Descriptor().Name)
	}
	return c.updateFn(ctx, obj, params)
}

func (c *fakeConn) Delete(ctx context.Context, desc *Descriptor, id any, params Params) error {
	if c.deleteFn == nil {
		return fmt.Errorf("unexpected Delete on %s", desc.Name)
	}
	return c.deleteFn(ctx, desc, id, params)
}

func (c *fakeConn) RawGet(ctx context.Context, path string, params Params) (*Response, error) {
	if c.rawGetFn == nil {
		return nil, fmt.Errorf("unexpected RawGet %s", path)
	}
	return c.rawGetFn(ctx, path, params)
}

func (c *fakeConn) RawPost(ctx context.Context, path string, body any, params Params) (*Response, error) {
	if c.rawPostFn == nil {
		return nil, fmt.Errorf("unexpected RawPost %s", path)
	}
	return c.rawPostFn(ctx, path, body, params)
}

func (c *fakeConn) RawPut(ctx context.Context, path string, body any, params Params) (*Response, error) {
	if c.rawPutFn == nil {
		return nil, fmt.Errorf("unexpected RawPut %s", path)
	}
	return c.rawPutFn(ctx, path, body, params)
}

func (c *fakeConn) RawDelete(ctx context.Context, path string, params Params) (*Response, error) {
	if c.rawDeleteFn == nil {
		return nil, fmt.Errorf("unexpected RawDelete %s", path)
	}
	return c.rawDeleteFn(ctx, path, params)
}

func jsonResponse(status int, body string) *Response {
	return &Response{StatusCode: status, Body: []byte(body)}
}
