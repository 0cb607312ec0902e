package gitlab

// TeamDescriptor describes the /user_teams resource.
var TeamDescriptor = register(&Descriptor{
	Name:                "Team",
	Path:                "/user_teams",
	DisableUpdate:       true,
	RequiredCreateAttrs: []string{"name", "path"},
	Managers: []ManagerSpec{
		{Name: "members", Desc: TeamMemberDescriptor, Links: []AttrLink{{Child: "team_id", Parent: "id"}}},
		{Name: "projects", Desc: TeamProjectDescriptor, Links: []AttrLink{{Child: "team_id", Parent: "id"}}},
	},
})

// TeamMemberDescriptor describes a team's memberships.
var TeamMemberDescriptor = register(&Descriptor{
	Name:                "TeamMember",
	Path:                "/user_teams/{team_id}/members",
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"team_id"},
	RequiredCreateAttrs: []string{"access_level"},
})

// TeamProjectDescriptor describes the projects assigned to a team.
var TeamProjectDescriptor = register(&Descriptor{
	Name:                "TeamProject",
	Path:                "/user_teams/{team_id}/projects",
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"team_id"},
	RequiredCreateAttrs: []string{"greatest_access_level"},
})

// Team is a user team.
type Team struct{ *Object }

func newTeam(o *Object) *Team {
	if o == nil {
		return nil
	}
	return &Team{Object: o}
}

// Members manages the team's memberships.
func (t *Team) Members() *TeamMemberManager {
	return newTeamMemberManager(t.Manager("members"))
}

// Projects manages the projects assigned to the team.
func (t *Team) Projects() *TeamProjectManager {
	return newTeamProjectManager(t.Manager("projects"))
}

// TeamMember is a user's membership in a team.
type TeamMember struct{ *Object }

func newTeamMember(o *Object) *TeamMember {
	if o == nil {
		return nil
	}
	return &TeamMember{Object: o}
}

// TeamProject is a project assigned to a team.
type TeamProject struct{ *Object }

func newTeamProject(o *Object) *TeamProject {
	if o == nil {
		return nil
	}
	return &TeamProject{Object: o}
}

// TeamManager manages user teams.
type TeamManager struct{ ResourceManager[Team] }

func newTeamManager(m *Manager) *TeamManager {
	return &TeamManager{typedManager(m, newTeam)}
}

// TeamMemberManager manages a team's memberships.
type TeamMemberManager struct{ ResourceManager[TeamMember] }

func newTeamMemberManager(m *Manager) *TeamMemberManager {
	return &TeamMemberManager{typedManager(m, newTeamMember)}
}

// TeamProjectManager manages a team's projects.
type TeamProjectManager struct{ ResourceManager[TeamProject] }

func newTeamProjectManager(m *Manager) *TeamProjectManager {
	return &TeamProjectManager{typedManager(m, newTeamProject)}
}
