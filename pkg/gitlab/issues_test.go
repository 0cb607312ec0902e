package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueSubscribe(t *testing.T) {
	conn := &fakeConn{
		rawPostFn: func(_ context.Context, path string, _ any, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/issues/7/subscription", path)
			return jsonResponse(200, `{"id":7,"subscribed":true}`), nil
		},
	}
	issue := newProjectIssue(newObject(conn, ProjectIssueDescriptor, map[string]any{
		"id": float64(7), "project_id": float64(3),
	}, true, nil))

	require.NoError(t, issue.Subscribe(context.Background(), nil))
	assert.Equal(t, true, issue.Attr("subscribed"))
}

func TestIssueUnsubscribe(t *testing.T) {
	conn := &fakeConn{
		rawDeleteFn: func(_ context.Context, path string, _ Params) (*Response, error) {
			assert.Equal(t, "/projects/3/issues/7/subscription", path)
			return jsonResponse(200, `{"id":7,"subscribed":false}`), nil
		},
	}
	issue := newProjectIssue(newObject(conn, ProjectIssueDescriptor, map[string]any{
		"id": float64(7), "project_id": float64(3), "subscribed": true,
	}, true, nil))

	require.NoError(t, issue.Unsubscribe(context.Background(), nil))
	assert.Equal(t, false, issue.Attr("subscribed"))
}

func TestGlobalIssuesReadOnly(t *testing.T) {
	conn := &fakeConn{}
	o := newObject(conn, IssueDescriptor, map[string]any{"id": float64(1)}, false, nil)

	assert.ErrorIs(t, o.Save(context.Background(), nil), ErrNotImplemented)
}

func TestIssueAuthorHydration(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectIssueDescriptor, map[string]any{
		"id":        float64(7),
		"author":    map[string]any{"id": float64(1), "username": "alice"},
		"assignee":  map[string]any{"id": float64(2), "username": "bob"},
		"milestone": map[string]any{"id": float64(4), "title": "v2"},
	}, true, nil)

	require.NotNil(t, o.ObjectAttr("author"))
	assert.Equal(t, UserDescriptor, o.ObjectAttr("author").Descriptor())
	assert.Equal(t, ProjectMilestoneDescriptor, o.ObjectAttr("milestone").Descriptor())
}
