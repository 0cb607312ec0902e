package gitlab

import (
	"context"
	"fmt"
)

// ProjectBuildDescriptor describes a project's CI builds. Builds are created
// by the CI system, never through this API.
var ProjectBuildDescriptor = register(&Descriptor{
	Name:             "ProjectBuild",
	Path:             "/projects/{project_id}/builds",
	DisableCreate:    true,
	DisableUpdate:    true,
	DisableDelete:    true,
	RequiredURLAttrs: []string{"project_id"},
})

// ProjectBuild is a CI build.
type ProjectBuild struct{ *Object }

func newProjectBuild(o *Object) *ProjectBuild {
	if o == nil {
		return nil
	}
	return &ProjectBuild{Object: o}
}

// Cancel cancels the build.
func (b *ProjectBuild) Cancel(ctx context.Context, params Params) error {
	path := fmt.Sprintf("/projects/%s/builds/%s/cancel",
		b.StringAttr("project_id"), AttrString(b.ID()))
	resp, err := b.Connection().RawPost(ctx, path, nil, params)
	if err != nil {
		return err
	}
	return CheckResponse(resp, KindCancel, 201)
}

// Retry retries the build.
func (b *ProjectBuild) Retry(ctx context.Context, params Params) error {
	path := fmt.Sprintf("/projects/%s/builds/%s/retry",
		b.StringAttr("project_id"), AttrString(b.ID()))
	resp, err := b.Connection().RawPost(ctx, path, nil, params)
	if err != nil {
		return err
	}
	return CheckResponse(resp, KindRetry, 201)
}

// ProjectBuildManager manages a project's builds.
type ProjectBuildManager struct{ ResourceManager[ProjectBuild] }

func newProjectBuildManager(m *Manager) *ProjectBuildManager {
	return &ProjectBuildManager{typedManager(m, newProjectBuild)}
}
