package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMilestone(conn Connection) *ProjectMilestone {
	return newProjectMilestone(newObject(conn, ProjectMilestoneDescriptor, map[string]any{
		"id": float64(4), "project_id": float64(3), "title": "v2",
	}, true, nil))
}

func TestMilestoneIssues(t *testing.T) {
	conn := &fakeConn{
		rawGetFn: func(_ context.Context, path string, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/milestones/4/issues", path)
			return jsonResponse(200, `[{"id":1,"title":"bug"},{"id":2,"title":"crash"}]`), nil
		},
	}

	issues, err := newTestMilestone(conn).Issues(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "bug", issues[0].StringAttr("title"))
	assert.Equal(t, float64(3), issues[1].Attr("project_id"))
}

func TestMilestoneIssuesFailure(t *testing.T) {
	conn := &fakeConn{
		rawGetFn: func(_ context.Context, _ string, _ Params) (*Response, error) {
			return jsonResponse(404, `{"message":"404 Not Found"}`), nil
		},
	}

	_, err := newTestMilestone(conn).Issues(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindList))
}
