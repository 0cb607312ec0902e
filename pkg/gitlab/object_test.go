package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadDropsUndeclaredAttrs(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectBranchDescriptor, map[string]any{
		"branch_name": "feature",
		"ref":         "master",
		"protected":   true, // not a create attribute
	}, false, nil)

	payload := o.Payload(false, nil)
	assert.Equal(t, map[string]any{"branch_name": "feature", "ref": "master"}, payload)
}

func TestPayloadFlattensLists(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectIssueDescriptor, map[string]any{
		"title":  "crash on start",
		"labels": []any{"bug", "critical"},
	}, false, nil)

	payload := o.Payload(false, nil)
	assert.Equal(t, "bug, critical", payload["labels"])
}

func TestPayloadUpdateAttrsWin(t *testing.T) {
	o := newObject(&fakeConn{}, GroupMemberDescriptor, map[string]any{
		"user_id":      float64(5),
		"access_level": float64(30),
	}, true, nil)

	// user_id is a create attribute only; updates send just the access level.
	create := o.Payload(false, nil)
	assert.Equal(t, float64(5), create["user_id"])
	update := o.Payload(true, nil)
	assert.NotContains(t, update, "user_id")
	assert.Equal(t, float64(30), update["access_level"])
}

func TestPayloadCarriesGenericKeys(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectDescriptor, map[string]any{
		"name": "demo",
		"sudo": "other-user",
	}, false, nil)

	payload := o.Payload(false, nil)
	assert.Equal(t, "other-user", payload["sudo"])
}

func TestEqualIgnoresExcludedAttrs(t *testing.T) {
	conn := &fakeConn{}
	a := newObject(conn, UserDescriptor, map[string]any{
		"id": float64(1), "username": "alice", "password": "secret",
	}, true, nil)
	b := newObject(conn, UserDescriptor, map[string]any{
		"id": float64(1), "username": "alice", "password": "different",
	}, true, nil)

	assert.True(t, a.Equal(b))

	b.SetAttr("username", "bob")
	assert.False(t, a.Equal(b))
}

func TestEqualComparesNestedObjects(t *testing.T) {
	conn := &fakeConn{}
	a := newObject(conn, ProjectDescriptor, map[string]any{
		"id":    float64(1),
		"owner": map[string]any{"id": float64(2), "username": "alice"},
	}, true, nil)
	b := newObject(conn, ProjectDescriptor, map[string]any{
		"id":    float64(1),
		"owner": map[string]any{"id": float64(2), "username": "alice"},
	}, true, nil)

	assert.True(t, a.Equal(b))

	b.ObjectAttr("owner").SetAttr("username", "mallory")
	assert.False(t, a.Equal(b))
}

func TestNilIDDefault(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectLabelDescriptor, map[string]any{"color": "#ff0000"}, true, nil)

	assert.True(t, o.HasAttr("name"))
	assert.Nil(t, o.ID())
}

func TestSaveRoutesOnOrigin(t *testing.T) {
	var created, updated bool
	conn := &fakeConn{
		createFn: func(_ context.Context, _ *Object, _ Params) (map[string]any, error) {
			created = true
			return map[string]any{"id": float64(1)}, nil
		},
		updateFn: func(_ context.Context, _ *Object, _ Params) (map[string]any, error) {
			updated = true
			return map[string]any{"id": float64(1)}, nil
		},
	}

	o := newObject(conn, ProjectDescriptor, map[string]any{"name": "demo"}, false, nil)
	require.NoError(t, o.Save(context.Background(), nil))
	assert.True(t, created)
	assert.False(t, updated)

	// The first save hydrated the object; the second must update.
	require.NoError(t, o.Save(context.Background(), nil))
	assert.True(t, updated)
}

func TestDeleteLocalObject(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectDescriptor, map[string]any{"name": "demo"}, false, nil)

	err := o.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotSaved)
}

func TestDeleteDisabledBeatsNotSaved(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectMilestoneDescriptor, map[string]any{"title": "v2"}, false, nil)

	err := o.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestNestedHydration(t *testing.T) {
	o := newObject(&fakeConn{}, GroupDescriptor, map[string]any{
		"id":   float64(10),
		"name": "devs",
		"projects": []any{
			map[string]any{"id": float64(1), "name": "one"},
			map[string]any{"id": float64(2), "name": "two"},
		},
	}, true, nil)

	projects := o.ObjectListAttr("projects")
	require.Len(t, projects, 2)
	assert.Equal(t, ProjectDescriptor, projects[0].Descriptor())
	assert.Equal(t, "two", projects[1].Attr("name"))
	assert.True(t, projects[0].FromAPI())
}

func TestURLArgsCallerWins(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectIssueDescriptor, map[string]any{
		"id": float64(7), "project_id": float64(3),
	}, true, nil)

	args := o.URLArgs(Params{"project_id": 99})
	assert.Equal(t, 99, args["project_id"])
}

func TestDecode(t *testing.T) {
	o := newObject(&fakeConn{}, UserDescriptor, map[string]any{
		"id": float64(1), "username": "alice", "state": "active",
	}, true, nil)

	var u struct {
		ID       int
		Username string
		State    string
	}
	require.NoError(t, o.Decode(&u))
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "active", u.State)
}

func TestMarshalJSON(t *testing.T) {
	o := newObject(&fakeConn{}, ProjectDescriptor, map[string]any{
		"id":    float64(1),
		"owner": map[string]any{"id": float64(2), "username": "alice"},
	}, true, nil)

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"owner":{"id":2,"username":"alice"}}`, string(data))
}
