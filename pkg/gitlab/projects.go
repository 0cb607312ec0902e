package gitlab

import (
	"context"
	"fmt"
	"net/url"
)

// ProjectDescriptor describes the /projects resource. The nested owner and
// namespace fields are wired in init (see nested.go).
var ProjectDescriptor = register(&Descriptor{
	Name:                "Project",
	Path:                "/projects",
	RequiredCreateAttrs: []string{"name"},
	OptionalCreateAttrs: []string{
		"default_branch", "issues_enabled", "wall_enabled",
		"merge_requests_enabled", "wiki_enabled", "snippets_enabled",
		"public", "visibility_level", "namespace_id", "description", "path",
		"import_url", "builds_enabled", "public_builds",
	},
	OptionalUpdateAttrs: []string{
		"name", "default_branch", "issues_enabled", "wall_enabled",
		"merge_requests_enabled", "wiki_enabled", "snippets_enabled",
		"public", "visibility_level", "namespace_id", "description", "path",
		"import_url", "builds_enabled", "public_builds",
	},
	Managers: []ManagerSpec{
		{Name: "branches", Desc: ProjectBranchDescriptor, Links: projectLink},
		{Name: "builds", Desc: ProjectBuildDescriptor, Links: projectLink},
		{Name: "commits", Desc: ProjectCommitDescriptor, Links: projectLink},
		{Name: "commitstatuses", Desc: ProjectCommitStatusDescriptor, Links: projectLink},
		{Name: "events", Desc: ProjectEventDescriptor, Links: projectLink},
		{Name: "files", Desc: ProjectFileDescriptor, Links: projectLink},
		{Name: "forks", Desc: ProjectForkDescriptor, Links: projectLink},
		{Name: "hooks", Desc: ProjectHookDescriptor, Links: projectLink},
		{Name: "keys", Desc: ProjectKeyDescriptor, Links: projectLink},
		{Name: "issues", Desc: ProjectIssueDescriptor, Links: projectLink},
		{Name: "labels", Desc: ProjectLabelDescriptor, Links: projectLink},
		{Name: "members", Desc: ProjectMemberDescriptor, Links: projectLink},
		{Name: "mergerequests", Desc: ProjectMergeRequestDescriptor, Links: projectLink},
		{Name: "milestones", Desc: ProjectMilestoneDescriptor, Links: projectLink},
		{Name: "notes", Desc: ProjectNoteDescriptor, Links: projectLink},
		{Name: "snippets", Desc: ProjectSnippetDescriptor, Links: projectLink},
		{Name: "tags", Desc: ProjectTagDescriptor, Links: projectLink},
		{Name: "triggers", Desc: ProjectTriggerDescriptor, Links: projectLink},
		{Name: "variables", Desc: ProjectVariableDescriptor, Links: projectLink},
	},
})

// projectLink injects the parent project's id into child requests.
var projectLink = []AttrLink{{Child: "project_id", Parent: "id"}}

// ProjectForkDescriptor describes forking a project; the endpoint only
// supports creation.
var ProjectForkDescriptor = register(&Descriptor{
	Name:             "ProjectFork",
	Path:             "/projects/fork/{project_id}",
	GetMode:          GetDisabled,
	DisableList:      true,
	DisableUpdate:    true,
	DisableDelete:    true,
	RequiredURLAttrs: []string{"project_id"},
})

// UserProjectDescriptor describes creating a project on behalf of a user.
var UserProjectDescriptor = register(&Descriptor{
	Name:                "UserProject",
	Path:                "/projects/user/{user_id}",
	GetMode:             GetDisabled,
	DisableList:         true,
	DisableUpdate:       true,
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"user_id"},
	RequiredCreateAttrs: []string{"name"},
	OptionalCreateAttrs: []string{
		"default_branch", "issues_enabled", "wall_enabled",
		"merge_requests_enabled", "wiki_enabled", "snippets_enabled",
		"public", "visibility_level", "description", "builds_enabled",
		"public_builds", "import_url",
	},
})

// Project is a GitLab project.
type Project struct{ *Object }

func newProject(o *Object) *Project {
	if o == nil {
		return nil
	}
	return &Project{Object: o}
}

// Owner returns the project's owner when the payload embedded one.
func (p *Project) Owner() *User { return newUser(p.ObjectAttr("owner")) }

// Namespace returns the project's namespace when the payload embedded one.
func (p *Project) Namespace() *Group { return newGroup(p.ObjectAttr("namespace")) }

func (p *Project) Branches() *ProjectBranchManager {
	return newProjectBranchManager(p.Manager("branches"))
}

func (p *Project) Builds() *ProjectBuildManager {
	return newProjectBuildManager(p.Manager("builds"))
}

func (p *Project) Commits() *ProjectCommitManager {
	return newProjectCommitManager(p.Manager("commits"))
}

func (p *Project) CommitStatuses() *ProjectCommitStatusManager {
	return newProjectCommitStatusManager(p.Manager("commitstatuses"))
}

func (p *Project) Events() *ProjectEventManager {
	return newProjectEventManager(p.Manager("events"))
}

func (p *Project) Files() *ProjectFileManager {
	return newProjectFileManager(p.Manager("files"))
}

func (p *Project) Forks() *ProjectForkManager {
	return newProjectForkManager(p.Manager("forks"))
}

func (p *Project) Hooks() *ProjectHookManager {
	return newProjectHookManager(p.Manager("hooks"))
}

func (p *Project) Keys() *ProjectKeyManager {
	return newProjectKeyManager(p.Manager("keys"))
}

func (p *Project) Issues() *ProjectIssueManager {
	return newProjectIssueManager(p.Manager("issues"))
}

func (p *Project) Labels() *ProjectLabelManager {
	return newProjectLabelManager(p.Manager("labels"))
}

func (p *Project) Members() *ProjectMemberManager {
	return newProjectMemberManager(p.Manager("members"))
}

func (p *Project) MergeRequests() *ProjectMergeRequestManager {
	return newProjectMergeRequestManager(p.Manager("mergerequests"))
}

func (p *Project) Milestones() *ProjectMilestoneManager {
	return newProjectMilestoneManager(p.Manager("milestones"))
}

func (p *Project) Notes() *ProjectNoteManager {
	return newProjectNoteManager(p.Manager("notes"))
}

func (p *Project) Snippets() *ProjectSnippetManager {
	return newProjectSnippetManager(p.Manager("snippets"))
}

func (p *Project) Tags() *ProjectTagManager {
	return newProjectTagManager(p.Manager("tags"))
}

func (p *Project) Triggers() *ProjectTriggerManager {
	return newProjectTriggerManager(p.Manager("triggers"))
}

func (p *Project) Variables() *ProjectVariableManager {
	return newProjectVariableManager(p.Manager("variables"))
}

// RepositoryTree lists the files and directories of the repository. path and
// ref may be empty for the repository root on the default branch.
func (p *Project) RepositoryTree(ctx context.Context, path, ref string, params Params) ([]map[string]any, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/tree", AttrString(p.ID()))
	extra := Params{}
	if path != "" {
		extra["path"] = path
	}
	if ref != "" {
		extra["ref_name"] = ref
	}
	resp, err := p.Connection().RawGet(ctx, reqPath, extra.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.JSONList()
}

// RepositoryBlob returns the content of a file at the given commit.
func (p *Project) RepositoryBlob(ctx context.Context, sha, filepath string, params Params) ([]byte, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/blobs/%s", AttrString(p.ID()), sha)
	resp, err := p.Connection().RawGet(ctx, reqPath, Params{"filepath": filepath}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// RepositoryRawBlob returns the raw content of a blob by its SHA.
func (p *Project) RepositoryRawBlob(ctx context.Context, sha string, params Params) ([]byte, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/raw_blobs/%s", AttrString(p.ID()), sha)
	resp, err := p.Connection().RawGet(ctx, reqPath, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// RepositoryCompare returns the diff between two branches or commits.
func (p *Project) RepositoryCompare(ctx context.Context, from, to string, params Params) (map[string]any, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/compare", AttrString(p.ID()))
	resp, err := p.Connection().RawGet(ctx, reqPath, Params{"from": from, "to": to}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.JSONMap()
}

// RepositoryContributors lists the contributors to the repository.
func (p *Project) RepositoryContributors(ctx context.Context, params Params) ([]map[string]any, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/contributors", AttrString(p.ID()))
	resp, err := p.Connection().RawGet(ctx, reqPath, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	return resp.JSONList()
}

// RepositoryArchive returns a tarball of the repository. sha may be empty for
// the default branch head.
func (p *Project) RepositoryArchive(ctx context.Context, sha string, params Params) ([]byte, error) {
	reqPath := fmt.Sprintf("/projects/%s/repository/archive", AttrString(p.ID()))
	extra := Params{}
	if sha != "" {
		extra["sha"] = sha
	}
	resp, err := p.Connection().RawGet(ctx, reqPath, extra.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// CreateForkRelation marks this project as a fork of another existing
// project.
func (p *Project) CreateForkRelation(ctx context.Context, forkedFromID any, params Params) error {
	reqPath := fmt.Sprintf("/projects/%s/fork/%s", AttrString(p.ID()), AttrString(forkedFromID))
	resp, err := p.Connection().RawPost(ctx, reqPath, nil, params)
	if err != nil {
		return err
	}
	return CheckResponse(resp, KindFork, 201)
}

// DeleteForkRelation removes the fork relation of this project.
func (p *Project) DeleteForkRelation(ctx context.Context, params Params) error {
	reqPath := fmt.Sprintf("/projects/%s/fork", AttrString(p.ID()))
	resp, err := p.Connection().RawDelete(ctx, reqPath, params)
	if err != nil {
		return err
	}
	return CheckResponse(resp, KindFork)
}

// Star stars the project. The server answers 304 when it is already starred,
// in which case the receiver is returned unchanged; otherwise a new project
// built from the response body is returned.
func (p *Project) Star(ctx context.Context, params Params) (*Project, error) {
	reqPath := fmt.Sprintf("/projects/%s/star", AttrString(p.ID()))
	resp, err := p.Connection().RawPost(ctx, reqPath, nil, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindStar, 201, 304); err != nil {
		return nil, err
	}
	if resp.StatusCode != 201 {
		return p, nil
	}
	return p.fromResponse(resp)
}

// Unstar removes the star from the project. A 304 means it was not starred
// and the receiver is returned unchanged.
func (p *Project) Unstar(ctx context.Context, params Params) (*Project, error) {
	reqPath := fmt.Sprintf("/projects/%s/star", AttrString(p.ID()))
	resp, err := p.Connection().RawDelete(ctx, reqPath, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindStar, 200, 304); err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return p, nil
	}
	return p.fromResponse(resp)
}

func (p *Project) fromResponse(resp *Response) (*Project, error) {
	data, err := resp.JSONMap()
	if err != nil {
		return nil, err
	}
	return newProject(newObject(p.Connection(), ProjectDescriptor, data, true, nil)), nil
}

// ProjectFork is the result of forking a project.
type ProjectFork struct{ *Object }

func newProjectFork(o *Object) *ProjectFork {
	if o == nil {
		return nil
	}
	return &ProjectFork{Object: o}
}

// UserProject is a project created on behalf of a user.
type UserProject struct{ *Object }

func newUserProject(o *Object) *UserProject {
	if o == nil {
		return nil
	}
	return &UserProject{Object: o}
}

// ProjectManager manages projects.
type ProjectManager struct{ ResourceManager[Project] }

func newProjectManager(m *Manager) *ProjectManager {
	return &ProjectManager{typedManager(m, newProject)}
}

// Search returns the projects whose name matches the query string. The
// search covers project names only; use the search parameter of List for a
// broader match.
func (m *ProjectManager) Search(ctx context.Context, query string, params Params) ([]*Project, error) {
	return m.listPath(ctx, "/projects/search/"+url.PathEscape(query), params)
}

// All lists every project on the server, which requires admin rights.
func (m *ProjectManager) All(ctx context.Context, params Params) ([]*Project, error) {
	return m.listPath(ctx, "/projects/all", params)
}

// Owned lists the projects owned by the authenticated user.
func (m *ProjectManager) Owned(ctx context.Context, params Params) ([]*Project, error) {
	return m.listPath(ctx, "/projects/owned", params)
}

// Starred lists the projects starred by the authenticated user.
func (m *ProjectManager) Starred(ctx context.Context, params Params) ([]*Project, error) {
	return m.listPath(ctx, "/projects/starred", params)
}

func (m *ProjectManager) listPath(ctx context.Context, path string, params Params) ([]*Project, error) {
	resp, err := m.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(m.Connection(), ProjectDescriptor, resp, nil)
	if err != nil {
		return nil, err
	}
	projects := make([]*Project, 0, len(objs))
	for _, o := range objs {
		projects = append(projects, newProject(o))
	}
	return projects, nil
}

// ProjectForkManager manages forking a project.
type ProjectForkManager struct{ ResourceManager[ProjectFork] }

func newProjectForkManager(m *Manager) *ProjectForkManager {
	return &ProjectForkManager{typedManager(m, newProjectFork)}
}

// UserProjectManager manages projects created on behalf of users.
type UserProjectManager struct{ ResourceManager[UserProject] }

func newUserProjectManager(m *Manager) *UserProjectManager {
	return &UserProjectManager{typedManager(m, newUserProject)}
}
