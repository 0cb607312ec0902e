package gitlab

// HookDescriptor describes system-wide hooks.
var HookDescriptor = register(&Descriptor{
	Name:                "Hook",
	Path:                "/hooks",
	DisableUpdate:       true,
	RequiredCreateAttrs: []string{"url"},
})

// Hook is a system hook.
type Hook struct{ *Object }

func newHook(o *Object) *Hook {
	if o == nil {
		return nil
	}
	return &Hook{Object: o}
}

// HookManager manages system hooks.
type HookManager struct{ ResourceManager[Hook] }

func newHookManager(m *Manager) *HookManager {
	return &HookManager{typedManager(m, newHook)}
}

// ProjectHookDescriptor describes the web hooks of a project.
var ProjectHookDescriptor = register(&Descriptor{
	Name:                "ProjectHook",
	Path:                "/projects/{project_id}/hooks",
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"url"},
	OptionalCreateAttrs: []string{
		"push_events", "issues_events", "merge_requests_events",
		"tag_push_events", "build_events", "enable_ssl_verification",
	},
	RequiredUpdateAttrs: []string{"url"},
	OptionalUpdateAttrs: []string{
		"push_events", "issues_events", "merge_requests_events",
		"tag_push_events", "build_events", "enable_ssl_verification",
	},
})

// ProjectHook is a web hook on a project.
type ProjectHook struct{ *Object }

func newProjectHook(o *Object) *ProjectHook {
	if o == nil {
		return nil
	}
	return &ProjectHook{Object: o}
}

// ProjectHookManager manages the web hooks of a project.
type ProjectHookManager struct{ ResourceManager[ProjectHook] }

func newProjectHookManager(m *Manager) *ProjectHookManager {
	return &ProjectHookManager{typedManager(m, newProjectHook)}
}
