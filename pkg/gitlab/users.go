package gitlab

import (
	"context"
	"fmt"
	"strings"
)

// UserDescriptor describes the /users resource.
var UserDescriptor = register(&Descriptor{
	Name:                "User",
	Path:                "/users",
	RequiredCreateAttrs: []string{"email", "username", "name", "password"},
	OptionalCreateAttrs: []string{
		"skype", "linkedin", "twitter", "projects_limit", "extern_uid",
		"provider", "bio", "admin", "can_create_group", "website_url",
		"confirm", "external",
	},
	RequiredUpdateAttrs: []string{"email", "username", "name"},
	OptionalUpdateAttrs: []string{
		"password", "skype", "linkedin", "twitter", "projects_limit",
		"extern_uid", "provider", "bio", "admin", "can_create_group",
		"website_url", "confirm", "external",
	},
	Managers: []ManagerSpec{
		{Name: "keys", Desc: UserKeyDescriptor, Links: []AttrLink{{Child: "user_id", Parent: "id"}}},
	},
	// Passwords are write-only; the server never echoes them back, so they
	// must not participate in equality.
	EqualityExclude: []string{"password"},
	PayloadHook: func(o *Object, payload map[string]any, update bool) {
		// The confirm parameter is accepted as a lowercase string only.
		if v, ok := payload["confirm"]; ok {
			payload["confirm"] = strings.ToLower(AttrString(v))
		}
	},
})

// UserKeyDescriptor describes a user's SSH keys. The API has no single-key
// endpoint under /users, so gets scan the listing.
var UserKeyDescriptor = register(&Descriptor{
	Name:                "UserKey",
	Path:                "/users/{user_id}/keys",
	GetMode:             GetFromList,
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"user_id"},
	RequiredCreateAttrs: []string{"title", "key"},
})

// CurrentUserDescriptor describes the /user singleton for the authenticated
// user.
var CurrentUserDescriptor = register(&Descriptor{
	Name:          "CurrentUser",
	Path:          "/user",
	DisableList:   true,
	DisableCreate: true,
	DisableUpdate: true,
	DisableDelete: true,
	Managers: []ManagerSpec{
		{Name: "keys", Desc: CurrentUserKeyDescriptor},
	},
})

// CurrentUserKeyDescriptor describes the authenticated user's SSH keys.
var CurrentUserKeyDescriptor = register(&Descriptor{
	Name:                "CurrentUserKey",
	Path:                "/user/keys",
	DisableUpdate:       true,
	RequiredCreateAttrs: []string{"title", "key"},
})

// User is a GitLab user account.
type User struct{ *Object }

func newUser(o *Object) *User {
	if o == nil {
		return nil
	}
	return &User{Object: o}
}

// Keys manages the user's SSH keys.
func (u *User) Keys() *UserKeyManager {
	return newUserKeyManager(u.Manager("keys"))
}

// Block blocks the user and records the new state locally.
func (u *User) Block(ctx context.Context, params Params) error {
	path := fmt.Sprintf("/users/%s/block", AttrString(u.ID()))
	resp, err := u.Connection().RawPut(ctx, path, nil, params)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp, KindBlock); err != nil {
		return err
	}
	u.SetAttr("state", "blocked")
	return nil
}

// Unblock unblocks the user and records the new state locally.
func (u *User) Unblock(ctx context.Context, params Params) error {
	path := fmt.Sprintf("/users/%s/unblock", AttrString(u.ID()))
	resp, err := u.Connection().RawPut(ctx, path, nil, params)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp, KindUnblock); err != nil {
		return err
	}
	u.SetAttr("state", "active")
	return nil
}

// UserKey is an SSH key attached to a user.
type UserKey struct{ *Object }

func newUserKey(o *Object) *UserKey {
	if o == nil {
		return nil
	}
	return &UserKey{Object: o}
}

// CurrentUser is the authenticated user.
type CurrentUser struct{ *Object }

func newCurrentUser(o *Object) *CurrentUser {
	if o == nil {
		return nil
	}
	return &CurrentUser{Object: o}
}

// Keys manages the authenticated user's SSH keys.
func (u *CurrentUser) Keys() *CurrentUserKeyManager {
	return newCurrentUserKeyManager(u.Manager("keys"))
}

// CurrentUserKey is an SSH key of the authenticated user.
type CurrentUserKey struct{ *Object }

func newCurrentUserKey(o *Object) *CurrentUserKey {
	if o == nil {
		return nil
	}
	return &CurrentUserKey{Object: o}
}

// UserManager manages user accounts.
type UserManager struct{ ResourceManager[User] }

func newUserManager(m *Manager) *UserManager {
	return &UserManager{typedManager(m, newUser)}
}

// Search returns the users matching the query string.
func (m *UserManager) Search(ctx context.Context, query string, params Params) ([]*User, error) {
	resp, err := m.Connection().RawGet(ctx, UserDescriptor.Path, Params{"search": query}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(m.Connection(), UserDescriptor, resp, nil)
	if err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(objs))
	for _, o := range objs {
		users = append(users, newUser(o))
	}
	return users, nil
}

// GetByUsername fetches a user by username, which the API only exposes as a
// listing filter.
func (m *UserManager) GetByUsername(ctx context.Context, username string, params Params) (*User, error) {
	resp, err := m.Connection().RawGet(ctx, UserDescriptor.Path, Params{"username": username}.merged(params))
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp, KindList); err != nil {
		return nil, err
	}
	objs, err := objectsFromResponse(m.Connection(), UserDescriptor, resp, nil)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, &APIError{Kind: KindGet, Message: "no such user: " + username, Err: ErrNotFound}
	}
	return newUser(objs[0]), nil
}

// UserKeyManager manages a user's SSH keys.
type UserKeyManager struct{ ResourceManager[UserKey] }

func newUserKeyManager(m *Manager) *UserKeyManager {
	return &UserKeyManager{typedManager(m, newUserKey)}
}

// CurrentUserKeyManager manages the authenticated user's SSH keys.
type CurrentUserKeyManager struct{ ResourceManager[CurrentUserKey] }

func newCurrentUserKeyManager(m *Manager) *CurrentUserKeyManager {
	return &CurrentUserKeyManager{typedManager(m, newCurrentUserKey)}
}
