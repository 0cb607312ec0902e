package gitlab

import (
	"context"
	"fmt"
)

// Access levels for group and project memberships.
const (
	GuestAccess     = 10
	ReporterAccess  = 20
	DeveloperAccess = 30
	MasterAccess    = 40
	OwnerAccess     = 50
)

// Visibility levels for groups, projects and snippets.
const (
	VisibilityPrivate  = 0
	VisibilityInternal = 10
	VisibilityPublic   = 20
)

// GroupDescriptor describes the /groups resource. The nested projects field
// is wired in init (see nested.go).
var GroupDescriptor = register(&Descriptor{
	Name:                "Group",
	Path:                "/groups",
	DisableUpdate:       true,
	RequiredCreateAttrs: []string{"name", "path"},
	OptionalCreateAttrs: []string{"description", "visibility_level"},
	Managers: []ManagerSpec{
		{Name: "members", Desc: GroupMemberDescriptor, Links: []AttrLink{{Child: "group_id", Parent: "id"}}},
	},
})

// GroupMemberDescriptor describes a group's memberships.
var GroupMemberDescriptor = register(&Descriptor{
	Name:                "GroupMember",
	Path:                "/groups/{group_id}/members",
	GetMode:             GetFromList,
	RequiredURLAttrs:    []string{"group_id"},
	RequiredCreateAttrs: []string{"access_level", "user_id"},
	RequiredUpdateAttrs: []string{"access_level"},
})

// Group is a GitLab group.
type Group struct{ *Object }

func newGroup(o *Object) *Group {
	if o == nil {
		return nil
	}
	return &Group{Object: o}
}

// Members manages the group's memberships.
func (g *Group) Members() *GroupMemberManager {
	return newGroupMemberManager(g.Manager("members"))
}

// TransferProject moves an existing project into this group.
func (g *Group) TransferProject(ctx context.Context, projectID any, params Params) error {
	path := fmt.Sprintf("/groups/%s/projects/%s", AttrString(g.ID()), AttrString(projectID))
	resp, err := g.Connection().RawPost(ctx, path, nil, params)
	if err != nil {
		return err
	}
	return CheckResponse(resp, KindTransfer, 201)
}

// GroupMember is a user's membership in a group.
type GroupMember struct{ *Object }

func newGroupMember(o *Object) *GroupMember {
	if o == nil {
		return nil
	}
	return &GroupMember{Object: o}
}

// Save persists the membership. The membership endpoint addresses existing
// members by user id, which the listing reports as the member's id.
func (m *GroupMember) Save(ctx context.Context, params Params) error {
	if m.FromAPI() {
		m.SetAttr("user_id", m.ID())
	}
	return m.Object.Save(ctx, params)
}

// GroupManager manages groups.
type GroupManager struct{ ResourceManager[Group] }

func newGroupManager(m *Manager) *GroupManager {
	return &GroupManager{typedManager(m, newGroup)}
}

// Search returns the groups whose name matches the query string.
func (m *GroupManager) Search(ctx context.Context, query string, params Params) ([]*Group, error) {
	resp, err := m.Connection().RawGet(ctx, GroupDescriptor.Path, Params{"search": query}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(m.Connection(), GroupDescriptor, resp, nil)
	if err != nil {
		return nil, err
	}
	groups := make([]*Group, 0, len(objs))
	for _, o := range objs {
		groups = append(groups, newGroup(o))
	}
	return groups, nil
}

// GroupMemberManager manages a group's memberships.
type GroupMemberManager struct{ ResourceManager[GroupMember] }

func newGroupMemberManager(m *Manager) *GroupMemberManager {
	return &GroupMemberManager{typedManager(m, newGroupMember)}
}
