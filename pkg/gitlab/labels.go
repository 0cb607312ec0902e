package gitlab

// ProjectLabelDescriptor describes a project's labels. Labels are keyed by
// name, located through the listing, and addressed in update/delete requests
// by body attributes instead of the URL.
var ProjectLabelDescriptor = register(&Descriptor{
	Name:                "ProjectLabel",
	Path:                "/projects/{project_id}/labels",
	GetMode:             GetFromList,
	IDAttr:              "name",
	NoIDInUpdateURL:     true,
	NoIDInDeleteURL:     true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"name", "color"},
	OptionalCreateAttrs: []string{"new_name"},
	RequiredDeleteAttrs: []string{"name"},
})

// ProjectLabel is an issue/merge-request label in a project.
type ProjectLabel struct{ *Object }

func newProjectLabel(o *Object) *ProjectLabel {
	if o == nil {
		return nil
	}
	return &ProjectLabel{Object: o}
}

// ProjectLabelManager manages a project's labels.
type ProjectLabelManager struct{ ResourceManager[ProjectLabel] }

func newProjectLabelManager(m *Manager) *ProjectLabelManager {
	return &ProjectLabelManager{typedManager(m, newProjectLabel)}
}
