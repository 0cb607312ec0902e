package gitlab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManagers(t *testing.T) {
	c := NewClient(&fakeConn{})

	assert.NotNil(t, c.Users)
	assert.NotNil(t, c.Projects)
	assert.NotNil(t, c.UserProjects)
	assert.NotNil(t, c.Groups)
	assert.NotNil(t, c.Hooks)
	assert.NotNil(t, c.Issues)
	assert.NotNil(t, c.Licenses)
	assert.NotNil(t, c.Teams)
	assert.NotNil(t, c.Settings)
}

func TestClientCurrentUser(t *testing.T) {
	conn := &fakeConn{
		getFn: func(_ context.Context, desc *Descriptor, id any, _ Params) (map[string]any, error) {
			assert.Equal(t, CurrentUserDescriptor, desc)
			assert.Nil(t, id)
			return map[string]any{"id": float64(1), "username": "me"}, nil
		},
	}
	c := NewClient(conn)

	me, err := c.CurrentUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "me", me.StringAttr("username"))
	assert.NotNil(t, me.Keys())
}

func TestClientSettingsSingleton(t *testing.T) {
	conn := &fakeConn{
		getFn: func(_ context.Context, desc *Descriptor, id any, _ Params) (map[string]any, error) {
			return map[string]any{"id": float64(1), "signup_enabled": true}, nil
		},
	}
	c := NewClient(conn)

	settings, err := c.Settings.Get(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, true, settings.Attr("signup_enabled"))
}
