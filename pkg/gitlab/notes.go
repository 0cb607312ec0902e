package gitlab

// ProjectNoteDescriptor describes a project's wall notes, which can be read
// and created but never changed.
var ProjectNoteDescriptor = register(&Descriptor{
	Name:                "ProjectNote",
	Path:                "/projects/{project_id}/notes",
	DisableUpdate:       true,
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"body"},
})

// ProjectNote is a note on a project's wall.
type ProjectNote struct{ *Object }

func newProjectNote(o *Object) *ProjectNote {
	if o == nil {
		return nil
	}
	return &ProjectNote{Object: o}
}

// ProjectNoteManager manages a project's wall notes.
type ProjectNoteManager struct{ ResourceManager[ProjectNote] }

func newProjectNoteManager(m *Manager) *ProjectNoteManager {
	return &ProjectNoteManager{typedManager(m, newProjectNote)}
}
