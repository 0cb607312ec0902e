package gitlab

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

// GetMode controls how single objects of a type are fetched.
type GetMode int

const (
	// GetByID fetches from a dedicated single-object endpoint. The default.
	GetByID GetMode = iota

	// GetDisabled means the API has no way to fetch a single object.
	GetDisabled

	// GetFromList is for resources without a single-object endpoint: the full
	// listing is fetched and scanned for the requested identifier.
	GetFromList
)

// AttrLink ties a URL attribute of a child resource to an attribute on the
// parent object, e.g. {Child: "project_id", Parent: "id"}.
type AttrLink struct {
	Child  string
	Parent string
}

// ManagerSpec declares a child manager constructed on every object of a type.
type ManagerSpec struct {
	Name  string
	Desc  *Descriptor
	Links []AttrLink
}

// PayloadHook adjusts an assembled outbound payload for resource types whose
// wire encoding deviates from the generic rules.
type PayloadHook func(o *Object, payload map[string]any, update bool)

// Descriptor is the static metadata for one resource type. The zero value of
// every permission field means "allowed", matching the API default; types opt
// out of individual operations.
type Descriptor struct {
	// Name identifies the type in errors and logs.
	Name string

	// Path is the URL template, with {attr} placeholders resolved from call
	// parameters or parent-derived attributes.
	Path string

	// PathPlural overrides Path for listings on types whose singular and
	// plural endpoints differ (merge requests).
	PathPlural string

	GetMode       GetMode
	DisableList   bool
	DisableCreate bool
	DisableUpdate bool
	DisableDelete bool

	// Some endpoints take the identifier in the body or query instead of the
	// URL (labels, application settings).
	NoIDInUpdateURL bool
	NoIDInDeleteURL bool

	RequiredURLAttrs    []string
	RequiredListAttrs   []string
	OptionalListAttrs   []string
	RequiredGetAttrs    []string
	OptionalGetAttrs    []string
	RequiredDeleteAttrs []string
	RequiredCreateAttrs []string
	OptionalCreateAttrs []string
	RequiredUpdateAttrs []string
	OptionalUpdateAttrs []string

	// IDAttr is the identifier attribute. Defaults to "id"; some types key on
	// a natural identifier instead (branch name, trigger token).
	IDAttr string

	// Nested maps response fields to the descriptor their values are
	// rehydrated with. Wired at package init so the project/group reference
	// cycle stays out of variable initialization.
	Nested map[string]*Descriptor

	// Managers declares the child managers each object of this type carries.
	Managers []ManagerSpec

	// EqualityExclude lists attributes ignored when comparing two objects
	// (the user type excludes password).
	EqualityExclude []string

	PayloadHook PayloadHook
}

// CanGet reports whether single objects can be fetched at all.
func (d *Descriptor) CanGet() bool { return d.GetMode != GetDisabled }

func (d *Descriptor) CanList() bool   { return !d.DisableList }
func (d *Descriptor) CanCreate() bool { return !d.DisableCreate }
func (d *Descriptor) CanUpdate() bool { return !d.DisableUpdate }
func (d *Descriptor) CanDelete() bool { return !d.DisableDelete }

// ListPath returns the endpoint used for listings.
func (d *Descriptor) ListPath() string {
	if d.PathPlural != "" {
		return d.PathPlural
	}
	return d.Path
}

// ResolvePath substitutes the {attr} placeholders of the single-object path.
func (d *Descriptor) ResolvePath(args Params) (string, error) {
	return ResolvePath(d.Path, args)
}

// ResolveListPath substitutes the {attr} placeholders of the listing path.
func (d *Descriptor) ResolveListPath(args Params) (string, error) {
	return ResolvePath(d.ListPath(), args)
}

var placeholderRE = regexp.MustCompile(`\{([a-z_]+)\}`)

// ResolvePath substitutes {attr} placeholders in a URL template from args.
// Every unresolved placeholder is reported by name so the caller knows which
// attribute the request was missing.
func ResolvePath(path string, args Params) (string, error) {
	var missing *multierror.Error
	out := placeholderRE.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := args[name]; ok && v != nil {
			return AttrString(v)
		}
		missing = multierror.Append(missing, fmt.Errorf("missing URL attribute %q", name))
		return m
	})
	if err := missing.ErrorOrNil(); err != nil {
		return "", &APIError{Kind: KindURL, Message: err.Error(), Err: err}
	}
	return out, nil
}

// PathAttrs returns the placeholder names of a URL template. Transports use
// this to keep URL attributes out of query strings.
func PathAttrs(path string) []string {
	matches := placeholderRE.FindAllStringSubmatch(path, -1)
	attrs := make([]string, 0, len(matches))
	for _, m := range matches {
		attrs = append(attrs, m[1])
	}
	return attrs
}

// register validates a descriptor and applies defaults. Descriptors are
// package-level literals, so a failure here is a programming error.
func register(d *Descriptor) *Descriptor {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Path, validation.Required),
	); err != nil {
		panic(fmt.Sprintf("gitlab: invalid descriptor %q: %v", d.Name, err))
	}
	if d.IDAttr == "" {
		d.IDAttr = "id"
	}
	return d
}
