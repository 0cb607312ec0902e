package gitlab

import "context"

// Client bundles the top-level resource managers over a single connection.
type Client struct {
	conn Connection

	Users        *UserManager
	Projects     *ProjectManager
	UserProjects *UserProjectManager
	Groups       *GroupManager
	Hooks        *HookManager
	Issues       *IssueManager
	Licenses     *LicenseManager
	Teams        *TeamManager
	Settings     *ApplicationSettingsManager
}

// NewClient builds a client on top of an established connection.
func NewClient(conn Connection) *Client {
	return &Client{
		conn:         conn,
		Users:        newUserManager(NewManager(conn, UserDescriptor)),
		Projects:     newProjectManager(NewManager(conn, ProjectDescriptor)),
		UserProjects: newUserProjectManager(NewManager(conn, UserProjectDescriptor)),
		Groups:       newGroupManager(NewManager(conn, GroupDescriptor)),
		Hooks:        newHookManager(NewManager(conn, HookDescriptor)),
		Issues:       newIssueManager(NewManager(conn, IssueDescriptor)),
		Licenses:     newLicenseManager(NewManager(conn, LicenseDescriptor)),
		Teams:        newTeamManager(NewManager(conn, TeamDescriptor)),
		Settings:     newApplicationSettingsManager(NewManager(conn, ApplicationSettingsDescriptor)),
	}
}

// Connection returns the transport the client issues requests through.
func (c *Client) Connection() Connection { return c.conn }

// CurrentUser fetches the authenticated user.
func (c *Client) CurrentUser(ctx context.Context, params Params) (*CurrentUser, error) {
	o, err := CurrentUserDescriptor.GetObject(ctx, c.conn, nil, params)
	if err != nil {
		return nil, err
	}
	return newCurrentUser(o), nil
}
