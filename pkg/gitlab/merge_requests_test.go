package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMergeRequest(conn Connection) *ProjectMergeRequest {
	return newProjectMergeRequest(newObject(conn, ProjectMergeRequestDescriptor, map[string]any{
		"id":         float64(12),
		"project_id": float64(3),
		"state":      "opened",
	}, true, nil))
}

func TestMergeRequestMerge(t *testing.T) {
	conn := &fakeConn{
		rawPutFn: func(_ context.Context, path string, body any, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/merge_requests/12/merge", path)
			data, ok := body.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "merged by bot", data["merge_commit_message"])
			assert.Equal(t, true, data["should_remove_source_branch"])
			return jsonResponse(200, `{"id":12,"state":"merged"}`), nil
		},
	}
	mr := newTestMergeRequest(conn)

	merged, err := mr.Merge(context.Background(), MergeOptions{
		MergeCommitMessage:       "merged by bot",
		ShouldRemoveSourceBranch: true,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "merged", merged.StringAttr("state"))
	assert.Equal(t, float64(3), merged.Attr("project_id"))
}

func TestMergeRequestMergeForbidden(t *testing.T) {
	conn := &fakeConn{
		rawPutFn: func(_ context.Context, _ string, _ any, _ Params) (*Response, error) {
			return jsonResponse(401, `{"message":"401 Unauthorized"}`), nil
		},
	}

	_, err := newTestMergeRequest(conn).Merge(context.Background(), MergeOptions{}, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestMergeRequestMergeClosed(t *testing.T) {
	conn := &fakeConn{
		rawPutFn: func(_ context.Context, _ string, _ any, _ Params) (*Response, error) {
			return jsonResponse(405, `{"message":"405 Method Not Allowed"}`), nil
		},
	}

	_, err := newTestMergeRequest(conn).Merge(context.Background(), MergeOptions{}, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindClosed))
}

func TestCancelMergeWhenBuildSucceedsNotPending(t *testing.T) {
	conn := &fakeConn{
		rawPutFn: func(_ context.Context, path string, _ any, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/merge_requests/12/cancel_merge_when_build_succeeds", path)
			return jsonResponse(406, `{"message":"Not Acceptable"}`), nil
		},
	}

	_, err := newTestMergeRequest(conn).CancelMergeWhenBuildSucceeds(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBuildSucceeds))
}

func TestMergeRequestUpdatePayloadDropsSourceBranch(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectMergeRequestDescriptor, map[string]any{
		"id":            float64(12),
		"project_id":    float64(3),
		"source_branch": "feature",
		"target_branch": "master",
		"title":         "new title",
	}, true, nil)

	payload := o.Payload(true, nil)
	assert.NotContains(t, payload, "source_branch")
	assert.Equal(t, "new title", payload["title"])

	create := o.Payload(false, nil)
	assert.Equal(t, "feature", create["source_branch"])
}

func TestMergeRequestClosesIssues(t *testing.T) {
	conn := &fakeConn{
		rawGetFn: func(_ context.Context, path string, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/merge_requests/12/closes_issues", path)
			return jsonResponse(200, `[{"id":1,"title":"bug"},{"id":2,"title":"crash"}]`), nil
		},
	}

	issues, err := newTestMergeRequest(conn).ClosesIssues(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, float64(3), issues[0].Attr("project_id"))
	assert.Equal(t, "crash", issues[1].StringAttr("title"))
}

func TestMergeRequestListUsesPluralPath(t *testing.T) {
	assert.Equal(t, "/projects/{project_id}/merge_requests", ProjectMergeRequestDescriptor.ListPath())

	path, err := ProjectMergeRequestDescriptor.ResolveListPath(Params{"project_id": 3})
	require.NoError(t, err)
	assert.Equal(t, "/projects/3/merge_requests", path)
}
