package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Object is the local representation of one remote resource: a mutable bag of
// attributes plus a reference to the connection that produced it. The origin
// flag records whether the attributes came from the server or from a caller
// that has not saved the object yet.
type Object struct {
	conn     Connection
	desc     *Descriptor
	attrs    map[string]any
	fromAPI  bool
	managers map[string]*Manager
}

// newObject builds an object from a server payload (fromAPI true) or from
// user-supplied construction data. extra params become attributes too, which
// is how parent-derived URL attributes (project_id and friends) end up on
// child objects.
func newObject(conn Connection, desc *Descriptor, data map[string]any, fromAPI bool, extra Params) *Object {
	o := &Object{
		conn:    conn,
		desc:    desc,
		attrs:   make(map[string]any, len(data)+len(extra)+1),
		fromAPI: fromAPI,
	}
	o.updateFromMap(data)
	for k, v := range extra {
		o.attrs[k] = v
	}
	// Some resources (labels, files) never carry the identifier in API
	// payloads; the identifier attribute still has to exist.
	if _, ok := o.attrs[desc.IDAttr]; !ok {
		o.attrs[desc.IDAttr] = nil
	}
	o.managers = make(map[string]*Manager, len(desc.Managers))
	for _, spec := range desc.Managers {
		o.managers[spec.Name] = &Manager{conn: conn, desc: spec.Desc, parent: o, links: spec.Links}
	}
	return o
}

// updateFromMap copies every top-level field of data onto the object. Fields
// declared in the descriptor's Nested map are rehydrated as objects of the
// declared type, recursively; everything else passes through unchanged.
func (o *Object) updateFromMap(data map[string]any) {
	for k, v := range data {
		nested := o.desc.Nested[k]
		if nested == nil {
			o.attrs[k] = v
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			o.attrs[k] = newObject(o.conn, nested, t, o.fromAPI, nil)
		case []any:
			objs := make([]*Object, 0, len(t))
			for _, item := range t {
				if m, ok := item.(map[string]any); ok {
					objs = append(objs, newObject(o.conn, nested, m, o.fromAPI, nil))
				}
			}
			o.attrs[k] = objs
		default:
			o.attrs[k] = v
		}
	}
}

// Descriptor returns the resource type metadata of this object.
func (o *Object) Descriptor() *Descriptor { return o.desc }

// Connection returns the transport this object issues requests through.
func (o *Object) Connection() Connection { return o.conn }

// FromAPI reports whether the object's attributes reflect server state.
func (o *Object) FromAPI() bool { return o.fromAPI }

// ID returns the identifier attribute value (nil when the API never returned
// one).
func (o *Object) ID() any { return o.attrs[o.desc.IDAttr] }

// Attr returns an attribute value, nil if unset.
func (o *Object) Attr(name string) any { return o.attrs[name] }

// StringAttr returns an attribute rendered as a string.
func (o *Object) StringAttr(name string) string { return AttrString(o.attrs[name]) }

// HasAttr reports whether an attribute is present, even with a nil value.
func (o *Object) HasAttr(name string) bool {
	_, ok := o.attrs[name]
	return ok
}

// SetAttr sets an attribute value.
func (o *Object) SetAttr(name string, value any) { o.attrs[name] = value }

// UnsetAttr removes an attribute.
func (o *Object) UnsetAttr(name string) { delete(o.attrs, name) }

// ObjectAttr returns a nested attribute that was hydrated as an object, nil
// otherwise.
func (o *Object) ObjectAttr(name string) *Object {
	nested, _ := o.attrs[name].(*Object)
	return nested
}

// ObjectListAttr returns a nested attribute that was hydrated as a list of
// objects, nil otherwise.
func (o *Object) ObjectListAttr(name string) []*Object {
	nested, _ := o.attrs[name].([]*Object)
	return nested
}

// Manager returns the child manager declared under the given name, nil if the
// type declares none. Managers are built once, when the object is
// constructed.
func (o *Object) Manager(name string) *Manager { return o.managers[name] }

// Save creates the object on the server if it is local, updates it if it is
// server-hydrated. Either way the attributes are overwritten from the
// response.
func (o *Object) Save(ctx context.Context, params Params) error {
	if o.fromAPI {
		return o.doUpdate(ctx, params)
	}
	return o.doCreate(ctx, params)
}

func (o *Object) doCreate(ctx context.Context, params Params) error {
	if !o.desc.CanCreate() {
		return ErrNotImplemented
	}
	data, err := o.conn.Create(ctx, o, params)
	if err != nil {
		return err
	}
	o.updateFromMap(data)
	o.fromAPI = true
	return nil
}

func (o *Object) doUpdate(ctx context.Context, params Params) error {
	if !o.desc.CanUpdate() {
		return ErrNotImplemented
	}
	data, err := o.conn.Update(ctx, o, params)
	if err != nil {
		return err
	}
	o.updateFromMap(data)
	return nil
}

// Delete removes the object from the server. The object must be
// server-hydrated; after a successful delete the caller should discard it.
func (o *Object) Delete(ctx context.Context, params Params) error {
	if !o.desc.CanDelete() {
		return ErrNotImplemented
	}
	if !o.fromAPI {
		return ErrNotSaved
	}
	return o.conn.Delete(ctx, o.desc, o.ID(), o.URLArgs(params))
}

// URLArgs assembles the attributes a transport needs to build this object's
// URL: the declared URL and delete attributes, read from the current bag,
// with explicit params taking precedence.
func (o *Object) URLArgs(params Params) Params {
	args := Params{}
	for _, name := range o.desc.RequiredURLAttrs {
		if v, ok := o.attrs[name]; ok {
			args[name] = v
		}
	}
	for _, name := range o.desc.RequiredDeleteAttrs {
		if v, ok := o.attrs[name]; ok {
			args[name] = v
		}
	}
	for k, v := range params {
		args[k] = v
	}
	return args
}

// Payload assembles the outbound body for a create or update call. Only the
// attributes declared for the operation are serialized, plus the generic
// paging/impersonation keys; list values are flattened to comma-joined
// strings. The descriptor's PayloadHook applies last.
func (o *Object) Payload(update bool, extra Params) map[string]any {
	var names []string
	if update && (len(o.desc.RequiredUpdateAttrs) > 0 || len(o.desc.OptionalUpdateAttrs) > 0) {
		names = append(names, o.desc.RequiredUpdateAttrs...)
		names = append(names, o.desc.OptionalUpdateAttrs...)
	} else {
		names = append(names, o.desc.RequiredCreateAttrs...)
		names = append(names, o.desc.OptionalCreateAttrs...)
	}
	names = append(names, "sudo", "page", "per_page")

	payload := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := o.attrs[name]; ok {
			payload[name] = flattenList(v)
		}
	}
	for k, v := range extra {
		payload[k] = v
	}
	if o.desc.PayloadHook != nil {
		o.desc.PayloadHook(o, payload, update)
	}
	return payload
}

// flattenList turns list values into the comma-joined form the API expects
// for most list-valued parameters.
func flattenList(v any) any {
	switch t := v.(type) {
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, AttrString(item))
		}
		return strings.Join(parts, ",")
	default:
		return v
	}
}

// Equal reports whether two objects of the same type hold equal attribute
// bags, ignoring the descriptor's excluded attributes. Nested objects compare
// recursively.
func (o *Object) Equal(other *Object) bool {
	if other == nil || o.desc != other.desc {
		return false
	}
	return attrsEqual(o.comparableAttrs(), other.comparableAttrs())
}

func (o *Object) comparableAttrs() map[string]any {
	out := make(map[string]any, len(o.attrs))
	for k, v := range o.attrs {
		out[k] = v
	}
	for _, name := range o.desc.EqualityExclude {
		delete(out, name)
	}
	return out
}

func attrsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch at := a.(type) {
	case *Object:
		bt, ok := b.(*Object)
		return ok && at.Equal(bt)
	case []*Object:
		bt, ok := b.([]*Object)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !at[i].Equal(bt[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// AsMap returns a plain-mapping copy of the attribute bag with nested objects
// converted recursively.
func (o *Object) AsMap() map[string]any {
	out := make(map[string]any, len(o.attrs))
	for k, v := range o.attrs {
		switch t := v.(type) {
		case *Object:
			out[k] = t.AsMap()
		case []*Object:
			items := make([]map[string]any, 0, len(t))
			for _, item := range t {
				items = append(items, item.AsMap())
			}
			out[k] = items
		default:
			out[k] = v
		}
	}
	return out
}

// MarshalJSON dumps the attribute bag as a JSON object.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.AsMap())
}

// Decode copies the attribute bag onto a caller-supplied struct, matched by
// field name or mapstructure tag. Unknown attributes are ignored.
func (o *Object) Decode(v any) error {
	return mapstructure.Decode(o.AsMap(), v)
}

func (o *Object) String() string {
	return fmt.Sprintf("%s => %v", o.desc.Name, o.attrs)
}
