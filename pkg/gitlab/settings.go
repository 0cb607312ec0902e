package gitlab

// ApplicationSettingsDescriptor describes the /application/settings
// singleton. It is fetched and updated, never listed, created or deleted,
// and its update URL carries no identifier.
var ApplicationSettingsDescriptor = register(&Descriptor{
	Name:            "ApplicationSettings",
	Path:            "/application/settings",
	DisableList:     true,
	DisableCreate:   true,
	DisableDelete:   true,
	NoIDInUpdateURL: true,
	OptionalUpdateAttrs: []string{
		"after_sign_out_path", "default_branch_protection",
		"default_project_visibility", "default_projects_limit",
		"default_snippet_visibility", "gravatar_enabled", "home_page_url",
		"restricted_signup_domains", "restricted_visibility_levels",
		"session_expire_delay", "sign_in_text", "signin_enabled",
		"signup_enabled", "twitter_sharing_enabled",
		"user_oauth_applications",
	},
})

// ApplicationSettings is the instance-wide settings singleton.
type ApplicationSettings struct{ *Object }

func newApplicationSettings(o *Object) *ApplicationSettings {
	if o == nil {
		return nil
	}
	return &ApplicationSettings{Object: o}
}

// ApplicationSettingsManager manages the settings singleton.
type ApplicationSettingsManager struct{ ResourceManager[ApplicationSettings] }

func newApplicationSettingsManager(m *Manager) *ApplicationSettingsManager {
	return &ApplicationSettingsManager{typedManager(m, newApplicationSettings)}
}
