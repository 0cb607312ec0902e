package gitlab

// ProjectKeyDescriptor describes a project's deploy keys.
var ProjectKeyDescriptor = register(&Descriptor{
	Name:                "ProjectKey",
	Path:                "/projects/{project_id}/keys",
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"title", "key"},
})

// ProjectKey is a deploy key attached to a project.
type ProjectKey struct{ *Object }

func newProjectKey(o *Object) *ProjectKey {
	if o == nil {
		return nil
	}
	return &ProjectKey{Object: o}
}

// ProjectKeyManager manages a project's deploy keys.
type ProjectKeyManager struct{ ResourceManager[ProjectKey] }

func newProjectKeyManager(m *Manager) *ProjectKeyManager {
	return &ProjectKeyManager{typedManager(m, newProjectKey)}
}
