package gitlab

import (
	"context"
	"fmt"
)

// ProjectBranchDescriptor describes a project's repository branches, keyed by
// branch name.
var ProjectBranchDescriptor = register(&Descriptor{
	Name:                "ProjectBranch",
	Path:                "/projects/{project_id}/repository/branches",
	IDAttr:              "name",
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"branch_name", "ref"},
})

// ProjectBranch is a repository branch.
type ProjectBranch struct{ *Object }

func newProjectBranch(o *Object) *ProjectBranch {
	if o == nil {
		return nil
	}
	return &ProjectBranch{Object: o}
}

// Protect marks the branch as protected.
func (b *ProjectBranch) Protect(ctx context.Context, params Params) error {
	return b.setProtection(ctx, true, params)
}

// Unprotect removes the branch's protection.
func (b *ProjectBranch) Unprotect(ctx context.Context, params Params) error {
	return b.setProtection(ctx, false, params)
}

func (b *ProjectBranch) setProtection(ctx context.Context, protect bool, params Params) error {
	action := "protect"
	if !protect {
		action = "unprotect"
	}
	path := fmt.Sprintf("/projects/%s/repository/branches/%s/%s",
		b.StringAttr("project_id"), AttrString(b.ID()), action)
	resp, err := b.Connection().RawPut(ctx, path, nil, params)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp, KindProtect); err != nil {
		return err
	}
	if protect {
		b.SetAttr("protected", true)
	} else {
		b.UnsetAttr("protected")
	}
	return nil
}

// ProjectBranchManager manages a project's branches.
type ProjectBranchManager struct{ ResourceManager[ProjectBranch] }

func newProjectBranchManager(m *Manager) *ProjectBranchManager {
	return &ProjectBranchManager{typedManager(m, newProjectBranch)}
}
