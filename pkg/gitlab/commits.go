package gitlab

import (
	"context"
	"fmt"
)

// ProjectCommitDescriptor describes a project's repository commits,
// read-only.
var ProjectCommitDescriptor = register(&Descriptor{
	Name:             "ProjectCommit",
	Path:             "/projects/{project_id}/repository/commits",
	DisableCreate:    true,
	DisableUpdate:    true,
	DisableDelete:    true,
	RequiredURLAttrs: []string{"project_id"},
})

// ProjectCommitStatusDescriptor describes the CI statuses attached to a
// commit.
var ProjectCommitStatusDescriptor = register(&Descriptor{
	Name:                "ProjectCommitStatus",
	Path:                "/projects/{project_id}/statuses/{commit_id}",
	DisableUpdate:       true,
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id", "commit_id"},
	RequiredCreateAttrs: []string{"state"},
	OptionalCreateAttrs: []string{"description", "name", "ref", "target_url"},
})

// ProjectCommit is one commit in a project's repository.
type ProjectCommit struct{ *Object }

func newProjectCommit(o *Object) *ProjectCommit {
	if o == nil {
		return nil
	}
	return &ProjectCommit{Object: o}
}

// Diff returns the commit's diff entries.
func (c *ProjectCommit) Diff(ctx context.Context, params Params) ([]map[string]any, error) {
	path := fmt.Sprintf("/projects/%s/repository/commits/%s/diff",
		c.StringAttr("project_id"), AttrString(c.ID()))
	resp, err := c.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.JSONList()
}

// Blob returns the content of a file at this commit.
func (c *ProjectCommit) Blob(ctx context.Context, filepath string, params Params) ([]byte, error) {
	path := fmt.Sprintf("/projects/%s/repository/blobs/%s",
		c.StringAttr("project_id"), AttrString(c.ID()))
	resp, err := c.Connection().RawGet(ctx, path, Params{"filepath": filepath}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindGet); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Builds lists the CI builds triggered by this commit.
func (c *ProjectCommit) Builds(ctx context.Context, params Params) ([]*ProjectBuild, error) {
	path := fmt.Sprintf("/projects/%s/repository/commits/%s/builds",
		c.StringAttr("project_id"), AttrString(c.ID()))
	resp, err := c.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(c.Connection(), ProjectBuildDescriptor, resp,
		Params{"project_id": c.Attr("project_id")})
	if err != nil {
		return nil, err
	}
	builds := make([]*ProjectBuild, 0, len(objs))
	for _, o := range objs {
		builds = append(builds, newProjectBuild(o))
	}
	return builds, nil
}

// ProjectCommitStatus is a CI status on a commit.
type ProjectCommitStatus struct{ *Object }

func newProjectCommitStatus(o *Object) *ProjectCommitStatus {
	if o == nil {
		return nil
	}
	return &ProjectCommitStatus{Object: o}
}

// ProjectCommitManager manages a project's commits.
type ProjectCommitManager struct{ ResourceManager[ProjectCommit] }

func newProjectCommitManager(m *Manager) *ProjectCommitManager {
	return &ProjectCommitManager{typedManager(m, newProjectCommit)}
}

// ProjectCommitStatusManager manages the statuses on a project's commits.
type ProjectCommitStatusManager struct{ ResourceManager[ProjectCommitStatus] }

func newProjectCommitStatusManager(m *Manager) *ProjectCommitStatusManager {
	return &ProjectCommitStatusManager{typedManager(m, newProjectCommitStatus)}
}
