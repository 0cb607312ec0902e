package gitlab

import (
	"context"
	"fmt"
)

// ProjectMilestoneDescriptor describes a project's milestones. Milestones are
// closed through state_event, never deleted.
var ProjectMilestoneDescriptor = register(&Descriptor{
	Name:                "ProjectMilestone",
	Path:                "/projects/{project_id}/milestones",
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"title"},
	OptionalCreateAttrs: []string{"description", "due_date", "state_event"},
	OptionalUpdateAttrs: []string{"title", "description", "due_date", "state_event"},
})

// ProjectMilestone is a milestone in a project.
type ProjectMilestone struct{ *Object }

func newProjectMilestone(o *Object) *ProjectMilestone {
	if o == nil {
		return nil
	}
	return &ProjectMilestone{Object: o}
}

// Issues lists the issues assigned to this milestone.
func (m *ProjectMilestone) Issues(ctx context.Context, params Params) ([]*ProjectIssue, error) {
	path := fmt.Sprintf("/projects/%s/milestones/%s/issues",
		m.StringAttr("project_id"), AttrString(m.ID()))
	resp, err := m.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(m.Connection(), ProjectIssueDescriptor, resp,
		Params{"project_id": m.Attr("project_id")})
	if err != nil {
		return nil, err
	}
	issues := make([]*ProjectIssue, 0, len(objs))
	for _, o := range objs {
		issues = append(issues, newProjectIssue(o))
	}
	return issues, nil
}

// ProjectMilestoneManager manages a project's milestones.
type ProjectMilestoneManager struct{ ResourceManager[ProjectMilestone] }

func newProjectMilestoneManager(m *Manager) *ProjectMilestoneManager {
	return &ProjectMilestoneManager{typedManager(m, newProjectMilestone)}
}
