package gitlab

// ProjectMemberDescriptor describes a project's memberships.
var ProjectMemberDescriptor = register(&Descriptor{
	Name:                "ProjectMember",
	Path:                "/projects/{project_id}/members",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"access_level", "user_id"},
})

// ProjectMember is a user's membership in a project.
type ProjectMember struct{ *Object }

func newProjectMember(o *Object) *ProjectMember {
	if o == nil {
		return nil
	}
	return &ProjectMember{Object: o}
}

// ProjectMemberManager manages a project's memberships.
type ProjectMemberManager struct{ ResourceManager[ProjectMember] }

func newProjectMemberManager(m *Manager) *ProjectMemberManager {
	return &ProjectMemberManager{typedManager(m, newProjectMember)}
}
