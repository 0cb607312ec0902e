package gitlab

// ProjectVariableDescriptor describes a project's build variables, keyed by
// variable name.
var ProjectVariableDescriptor = register(&Descriptor{
	Name:                "ProjectVariable",
	Path:                "/projects/{project_id}/variables",
	IDAttr:              "key",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"key", "value"},
})

// ProjectVariable is a build variable in a project.
type ProjectVariable struct{ *Object }

func newProjectVariable(o *Object) *ProjectVariable {
	if o == nil {
		return nil
	}
	return &ProjectVariable{Object: o}
}

// ProjectVariableManager manages a project's build variables.
type ProjectVariableManager struct{ ResourceManager[ProjectVariable] }

func newProjectVariableManager(m *Manager) *ProjectVariableManager {
	return &ProjectVariableManager{typedManager(m, newProjectVariable)}
}
