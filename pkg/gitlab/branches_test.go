package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchProtect(t *testing.T) {
	var putPath string
	conn := &fakeConn{
		rawPutFn: func(_ context.Context, path string, _ any, _ Params) (*Response, error) {
			putPath = path
			return jsonResponse(200, `{"name":"master","protected":true}`), nil
		},
	}
	b := newProjectBranch(newObject(conn, ProjectBranchDescriptor, map[string]any{
		"name": "master", "project_id": float64(3),
	}, true, nil))

	require.NoError(t, b.Protect(context.Background(), nil))
	assert.Equal(t, "/projects/3/repository/branches/master/protect", putPath)
	assert.Equal(t, true, b.Attr("protected"))

	require.NoError(t, b.Unprotect(context.Background(), nil))
	assert.Equal(t, "/projects/3/repository/branches/master/unprotect", putPath)
	assert.False(t, b.HasAttr("protected"))
}

func TestBranchKeyedByName(t *testing.T) {
	b := newObject(&fakeConn{}, ProjectBranchDescriptor, map[string]any{
		"name": "feature/x", "project_id": float64(3),
	}, true, nil)

	assert.Equal(t, "feature/x", b.ID())
}
