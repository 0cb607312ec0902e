package gitlab

import (
	"context"
	"fmt"
	"strings"
)

// IssueDescriptor describes the global /issues listing. The API exposes no
// single-issue endpoint here and no mutations; issues are managed through
// their project.
var IssueDescriptor = register(&Descriptor{
	Name:          "Issue",
	Path:          "/issues",
	GetMode:       GetFromList,
	DisableCreate: true,
	DisableUpdate: true,
	DisableDelete: true,
})

// ProjectIssueDescriptor describes a project's issues.
var ProjectIssueDescriptor = register(&Descriptor{
	Name:                "ProjectIssue",
	Path:                "/projects/{project_id}/issues",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"title"},
	OptionalCreateAttrs: []string{"description", "assignee_id", "milestone_id", "labels", "state_event"},
	Managers: []ManagerSpec{
		{Name: "notes", Desc: ProjectIssueNoteDescriptor, Links: []AttrLink{
			{Child: "project_id", Parent: "project_id"},
			{Child: "issue_id", Parent: "id"},
		}},
	},
	PayloadHook: func(o *Object, payload map[string]any, update bool) {
		// The API returns labels as a JSON list but takes them as a comma
		// separated string.
		switch labels := o.Attr("labels").(type) {
		case []string:
			payload["labels"] = strings.Join(labels, ", ")
		case []any:
			parts := make([]string, 0, len(labels))
			for _, l := range labels {
				parts = append(parts, AttrString(l))
			}
			payload["labels"] = strings.Join(parts, ", ")
		}
	},
})

// ProjectIssueNoteDescriptor describes the notes on a project issue.
var ProjectIssueNoteDescriptor = register(&Descriptor{
	Name:                "ProjectIssueNote",
	Path:                "/projects/{project_id}/issues/{issue_id}/notes",
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id", "issue_id"},
	RequiredCreateAttrs: []string{"body"},
})

// Issue is an issue from the global listing.
type Issue struct{ *Object }

func newIssue(o *Object) *Issue {
	if o == nil {
		return nil
	}
	return &Issue{Object: o}
}

// ProjectIssue is an issue within a project.
type ProjectIssue struct{ *Object }

func newProjectIssue(o *Object) *ProjectIssue {
	if o == nil {
		return nil
	}
	return &ProjectIssue{Object: o}
}

// Notes manages the issue's notes.
func (i *ProjectIssue) Notes() *ProjectIssueNoteManager {
	return newProjectIssueNoteManager(i.Manager("notes"))
}

func (i *ProjectIssue) subscriptionPath() string {
	return fmt.Sprintf("/projects/%s/issues/%s/subscription",
		i.StringAttr("project_id"), AttrString(i.ID()))
}

// Subscribe subscribes the authenticated user to the issue and refreshes the
// local attributes from the response.
func (i *ProjectIssue) Subscribe(ctx context.Context, params Params) error {
	resp, err := i.Connection().RawPost(ctx, i.subscriptionPath(), nil, params)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp, KindSubscribe); err != nil {
		return err
	}
	data, err := resp.JSONMap()
	if err != nil {
		return err
	}
	i.updateFromMap(data)
	return nil
}

// Unsubscribe removes the authenticated user's subscription and refreshes the
// local attributes from the response.
func (i *ProjectIssue) Unsubscribe(ctx context.Context, params Params) error {
	resp, err := i.Connection().RawDelete(ctx, i.subscriptionPath(), params)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp, KindUnsubscribe); err != nil {
		return err
	}
	data, err := resp.JSONMap()
	if err != nil {
		return err
	}
	i.updateFromMap(data)
	return nil
}

// ProjectIssueNote is a note on a project issue.
type ProjectIssueNote struct{ *Object }

func newProjectIssueNote(o *Object) *ProjectIssueNote {
	if o == nil {
		return nil
	}
	return &ProjectIssueNote{Object: o}
}

// IssueManager manages the global issue listing.
type IssueManager struct{ ResourceManager[Issue] }

func newIssueManager(m *Manager) *IssueManager {
	return &IssueManager{typedManager(m, newIssue)}
}

// ProjectIssueManager manages a project's issues.
type ProjectIssueManager struct{ ResourceManager[ProjectIssue] }

func newProjectIssueManager(m *Manager) *ProjectIssueManager {
	return &ProjectIssueManager{typedManager(m, newProjectIssue)}
}

// ProjectIssueNoteManager manages the notes on a project issue.
type ProjectIssueNoteManager struct{ ResourceManager[ProjectIssueNote] }

func newProjectIssueNoteManager(m *Manager) *ProjectIssueNoteManager {
	return &ProjectIssueNoteManager{typedManager(m, newProjectIssueNote)}
}
