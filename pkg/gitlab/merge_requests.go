package gitlab

import (
	"context"
	"fmt"
)

// ProjectMergeRequestDescriptor describes a project's merge requests, one of
// the types whose singular and plural endpoints differ.
var ProjectMergeRequestDescriptor = register(&Descriptor{
	Name:                "ProjectMergeRequest",
	Path:                "/projects/{project_id}/merge_request",
	PathPlural:          "/projects/{project_id}/merge_requests",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"source_branch", "target_branch", "title"},
	OptionalCreateAttrs: []string{"assignee_id", "description", "target_project_id", "labels", "milestone_id"},
	Managers: []ManagerSpec{
		{Name: "notes", Desc: ProjectMergeRequestNoteDescriptor, Links: []AttrLink{
			{Child: "project_id", Parent: "project_id"},
			{Child: "merge_request_id", Parent: "id"},
		}},
	},
	PayloadHook: func(o *Object, payload map[string]any, update bool) {
		// The server rejects source_branch on updates.
		if update {
			delete(payload, "source_branch")
		}
	},
})

// ProjectMergeRequestNoteDescriptor describes the notes on a merge request.
var ProjectMergeRequestNoteDescriptor = register(&Descriptor{
	Name:                "ProjectMergeRequestNote",
	Path:                "/projects/{project_id}/merge_requests/{merge_request_id}/notes",
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id", "merge_request_id"},
	RequiredCreateAttrs: []string{"body"},
})

// MergeOptions are the optional parameters of ProjectMergeRequest.Merge.
type MergeOptions struct {
	MergeCommitMessage       string
	ShouldRemoveSourceBranch bool
	MergedWhenBuildSucceeds  bool
}

// ProjectMergeRequest is a merge request in a project.
type ProjectMergeRequest struct{ *Object }

func newProjectMergeRequest(o *Object) *ProjectMergeRequest {
	if o == nil {
		return nil
	}
	return &ProjectMergeRequest{Object: o}
}

// Notes manages the merge request's notes.
func (mr *ProjectMergeRequest) Notes() *ProjectMergeRequestNoteManager {
	return newProjectMergeRequestNoteManager(mr.Manager("notes"))
}

// Merge accepts the merge request and returns the updated merge request. A
// 401 maps to a forbidden error, a 405 means the merge request is already
// closed or merged.
func (mr *ProjectMergeRequest) Merge(ctx context.Context, opts MergeOptions, params Params) (*ProjectMergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%s/merge",
		mr.StringAttr("project_id"), AttrString(mr.ID()))
	data := map[string]any{}
	if opts.MergeCommitMessage != "" {
		data["merge_commit_message"] = opts.MergeCommitMessage
	}
	if opts.ShouldRemoveSourceBranch {
		data["should_remove_source_branch"] = true
	}
	if opts.MergedWhenBuildSucceeds {
		data["merged_when_build_succeeds"] = true
	}
	resp, err := mr.Connection().RawPut(ctx, path, data, params)
	if err != nil {
		return nil, err
	}
	kinds := map[int]ErrorKind{401: KindForbidden, 405: KindClosed}
	if err := checkResponseKinds(resp, kinds, KindMerge); err != nil {
		return nil, err
	}
	return mr.fromResponse(resp)
}

// CancelMergeWhenBuildSucceeds cancels a pending merge-on-build-success and
// returns the updated merge request. A 406 means no such merge is pending.
func (mr *ProjectMergeRequest) CancelMergeWhenBuildSucceeds(ctx context.Context, params Params) (*ProjectMergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%s/cancel_merge_when_build_succeeds",
		mr.StringAttr("project_id"), AttrString(mr.ID()))
	resp, err := mr.Connection().RawPut(ctx, path, nil, params)
	if err != nil {
		return nil, err
	}
	kinds := map[int]ErrorKind{401: KindForbidden, 405: KindClosed, 406: KindBuildSucceeds}
	if err := checkResponseKinds(resp, kinds, KindBuildSucceeds); err != nil {
		return nil, err
	}
	return mr.fromResponse(resp)
}

// ClosesIssues lists the issues this merge request would close.
func (mr *ProjectMergeRequest) ClosesIssues(ctx context.Context, params Params) ([]*ProjectIssue, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%s/closes_issues",
		mr.StringAttr("project_id"), AttrString(mr.ID()))
	resp, err := mr.Connection().RawGet(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(mr.Connection(), ProjectIssueDescriptor, resp,
		Params{"project_id": mr.Attr("project_id")})
	if err != nil {
		return nil, err
	}
	issues := make([]*ProjectIssue, 0, len(objs))
	for _, o := range objs {
		issues = append(issues, newProjectIssue(o))
	}
	return issues, nil
}

func (mr *ProjectMergeRequest) fromResponse(resp *Response) (*ProjectMergeRequest, error) {
	data, err := resp.JSONMap()
	if err != nil {
		return nil, err
	}
	o := newObject(mr.Connection(), ProjectMergeRequestDescriptor, data, true,
		Params{"project_id": mr.Attr("project_id")})
	return newProjectMergeRequest(o), nil
}

// ProjectMergeRequestNote is a note on a merge request.
type ProjectMergeRequestNote struct{ *Object }

func newProjectMergeRequestNote(o *Object) *ProjectMergeRequestNote {
	if o == nil {
		return nil
	}
	return &ProjectMergeRequestNote{Object: o}
}

// ProjectMergeRequestManager manages a project's merge requests.
type ProjectMergeRequestManager struct{ ResourceManager[ProjectMergeRequest] }

func newProjectMergeRequestManager(m *Manager) *ProjectMergeRequestManager {
	return &ProjectMergeRequestManager{typedManager(m, newProjectMergeRequest)}
}

// ProjectMergeRequestNoteManager manages the notes on a merge request.
type ProjectMergeRequestNoteManager struct{ ResourceManager[ProjectMergeRequestNote] }

func newProjectMergeRequestNoteManager(m *Manager) *ProjectMergeRequestNoteManager {
	return &ProjectMergeRequestNoteManager{typedManager(m, newProjectMergeRequestNote)}
}
