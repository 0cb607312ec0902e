package gitlab

import (
	"context"
	"fmt"
)

// ProjectSnippetDescriptor describes a project's code snippets.
var ProjectSnippetDescriptor = register(&Descriptor{
	Name:                "ProjectSnippet",
	Path:                "/projects/{project_id}/snippets",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"title", "file_name", "code"},
	OptionalCreateAttrs: []string{"lifetime"},
	Managers: []ManagerSpec{
		{Name: "notes", Desc: ProjectSnippetNoteDescriptor, Links: []AttrLink{
			{Child: "project_id", Parent: "project_id"},
			{Child: "snippet_id", Parent: "id"},
		}},
	},
})

// ProjectSnippetNoteDescriptor describes the notes on a snippet.
var ProjectSnippetNoteDescriptor = register(&Descriptor{
	Name:                "ProjectSnippetNote",
	Path:                "/projects/{project_id}/snippets/{snippet_id}/notes",
	DisableUpdate:       true,
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id", "snippet_id"},
	RequiredCreateAttrs: []string{"body"},
})

// ProjectSnippet is a code snippet in a project.
type ProjectSnippet struct{ *Object }

func newProjectSnippet(o *Object) *ProjectSnippet {
	if o == nil {
		return nil
	}
	return &ProjectSnippet{Object: o}
}

// Notes manages the snippet's notes.
func (s *ProjectSnippet) Notes() *ProjectSnippetNoteManager {
	return newProjectSnippetNoteManager(s.Manager("notes"))
}

// Content returns the snippet's raw content.
func (s *ProjectSnippet) Content(ctx context.Context, params Params) ([]byte, error) {
	path := fmt.Sprintf("/projects/%s/snippets/%s/raw",
		s.StringAttr("project_id"), AttrString(s.ID()))
	resp, err := s.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ProjectSnippetNote is a note on a snippet.
type ProjectSnippetNote struct{ *Object }

func newProjectSnippetNote(o *Object) *ProjectSnippetNote {
	if o == nil {
		return nil
	}
	return &ProjectSnippetNote{Object: o}
}

// ProjectSnippetManager manages a project's snippets.
type ProjectSnippetManager struct{ ResourceManager[ProjectSnippet] }

func newProjectSnippetManager(m *Manager) *ProjectSnippetManager {
	return &ProjectSnippetManager{typedManager(m, newProjectSnippet)}
}

// ProjectSnippetNoteManager manages the notes on a snippet.
type ProjectSnippetNoteManager struct{ ResourceManager[ProjectSnippetNote] }

func newProjectSnippetNoteManager(m *Manager) *ProjectSnippetNoteManager {
	return &ProjectSnippetNoteManager{typedManager(m, newProjectSnippetNote)}
}
