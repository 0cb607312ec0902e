package gitlab

// LicenseDescriptor describes the read-only /licenses templates, keyed by a
// natural identifier instead of a numeric id.
var LicenseDescriptor = register(&Descriptor{
	Name:              "License",
	Path:              "/licenses",
	DisableCreate:     true,
	DisableUpdate:     true,
	DisableDelete:     true,
	IDAttr:            "key",
	OptionalListAttrs: []string{"popular"},
	OptionalGetAttrs:  []string{"project", "fullname"},
})

// License is an open-source license template.
type License struct{ *Object }

func newLicense(o *Object) *License {
	if o == nil {
		return nil
	}
	return &License{Object: o}
}

// LicenseManager manages license templates.
type LicenseManager struct{ ResourceManager[License] }

func newLicenseManager(m *Manager) *LicenseManager {
	return &LicenseManager{typedManager(m, newLicense)}
}
