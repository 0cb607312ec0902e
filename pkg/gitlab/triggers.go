package gitlab

// ProjectTriggerDescriptor describes a project's build triggers, keyed by
// their token.
var ProjectTriggerDescriptor = register(&Descriptor{
	Name:             "ProjectTrigger",
	Path:             "/projects/{project_id}/triggers",
	DisableUpdate:    true,
	IDAttr:           "token",
	RequiredURLAttrs: []string{"project_id"},
})

// ProjectTrigger is a build trigger.
type ProjectTrigger struct{ *Object }

func newProjectTrigger(o *Object) *ProjectTrigger {
	if o == nil {
		return nil
	}
	return &ProjectTrigger{Object: o}
}

// ProjectTriggerManager manages a project's build triggers.
type ProjectTriggerManager struct{ ResourceManager[ProjectTrigger] }

func newProjectTriggerManager(m *Manager) *ProjectTriggerManager {
	return &ProjectTriggerManager{typedManager(m, newProjectTrigger)}
}
