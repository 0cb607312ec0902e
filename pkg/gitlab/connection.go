package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Params carries additional request parameters: URL attributes for child
// resources, query filters, and the generic paging/impersonation keys
// (page, per_page, sudo).
type Params map[string]any

// merged returns a copy of base with override applied on top.
func (p Params) merged(override Params) Params {
	out := make(Params, len(p)+len(override))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Connection is the transport collaborator every object and manager holds a
// reference to. Implementations own URL construction, authentication,
// retries and pagination; the object layer owns permission checks, payload
// assembly and hydration.
//
// Each method reports a failed request as an *APIError of the matching kind.
// The Raw* verbs return the response regardless of status so callers can map
// status codes to their own error kinds.
type Connection interface {
	Get(ctx context.Context, desc *Descriptor, id any, params Params) (map[string]any, error)
	List(ctx context.Context, desc *Descriptor, params Params) ([]map[string]any, error)
	Create(ctx context.Context, obj *Object, params Params) (map[string]any, error)
	Update(ctx context.Context, obj *Object, params Params) (map[string]any, error)
	Delete(ctx context.Context, desc *Descriptor, id any, params Params) error

	RawGet(ctx context.Context, path string, params Params) (*Response, error)
	RawPost(ctx context.Context, path string, body any, params Params) (*Response, error)
	RawPut(ctx context.Context, path string, body any, params Params) (*Response, error)
	RawDelete(ctx context.Context, path string, params Params) (*Response, error)
}

// Response is the raw result of one of the Connection's Raw* verbs.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// JSONMap decodes the body as a single JSON object.
func (r *Response) JSONMap() (map[string]any, error) {
	var m map[string]any
	if err := r.JSON(&m); err != nil {
		return nil, fmt.Errorf("gitlab: decoding response body: %w", err)
	}
	return m, nil
}

// JSONList decodes the body as a JSON array of objects.
func (r *Response) JSONList() ([]map[string]any, error) {
	var l []map[string]any
	if err := r.JSON(&l); err != nil {
		return nil, fmt.Errorf("gitlab: decoding response body: %w", err)
	}
	return l, nil
}

// ErrorMessage extracts the server's error message from the body,
// best-effort. GitLab reports errors as {"message": ...}.
func (r *Response) ErrorMessage() string {
	var m struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &m); err == nil && m.Message != nil {
		return fmt.Sprintf("%v", m.Message)
	}
	if len(r.Body) > 200 {
		return string(r.Body[:200])
	}
	return string(r.Body)
}

// AttrString renders an attribute value the way it appears in a URL or query
// string. JSON numbers arrive as float64, so integral values must not pick up
// an exponent or decimal point.
func AttrString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
