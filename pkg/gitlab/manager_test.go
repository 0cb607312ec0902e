package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerParentArgsReadAtCallTime(t *testing.T) {
	var seen Params
	conn := &fakeConn{
		listFn: func(_ context.Context, _ *Descriptor, params Params) ([]map[string]any, error) {
			seen = params
			return nil, nil
		},
	}
	project := newProject(newObject(conn, ProjectDescriptor, map[string]any{"id": float64(3)}, true, nil))

	_, err := project.Issues().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, float64(3), seen["project_id"])

	// A later mutation of the parent must be visible to the same manager.
	project.SetAttr("id", float64(4))
	_, err = project.Issues().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, float64(4), seen["project_id"])
}

func TestManagerCallerParamsWin(t *testing.T) {
	var seen Params
	conn := &fakeConn{
		listFn: func(_ context.Context, _ *Descriptor, params Params) ([]map[string]any, error) {
			seen = params
			return nil, nil
		},
	}
	project := newProject(newObject(conn, ProjectDescriptor, map[string]any{"id": float64(3)}, true, nil))

	_, err := project.Issues().List(context.Background(), Params{"project_id": 99})
	require.NoError(t, err)
	assert.Equal(t, 99, seen["project_id"])
}

func TestManagerDeleteByID(t *testing.T) {
	var deletedID any
	conn := &fakeConn{
		deleteFn: func(_ context.Context, desc *Descriptor, id any, params Params) error {
			deletedID = id
			assert.Equal(t, float64(3), params["project_id"])
			return nil
		},
	}
	project := newProject(newObject(conn, ProjectDescriptor, map[string]any{"id": float64(3)}, true, nil))

	require.NoError(t, project.Hooks().Delete(context.Background(), 12, nil))
	assert.Equal(t, 12, deletedID)
}

func TestManagerDeleteDisabled(t *testing.T) {
	conn := &fakeConn{}
	issue := newProjectIssue(newObject(conn, ProjectIssueDescriptor,
		map[string]any{"id": float64(7), "project_id": float64(3)}, true, nil))

	err := issue.Notes().Delete(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestTypedManagerWraps(t *testing.T) {
	conn := &fakeConn{
		getFn: func(_ context.Context, _ *Descriptor, id any, _ Params) (map[string]any, error) {
			return map[string]any{"id": float64(1), "username": "alice"}, nil
		},
	}
	users := newUserManager(NewManager(conn, UserDescriptor))

	u, err := users.Get(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.StringAttr("username"))
}
