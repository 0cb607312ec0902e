package gitlab

// ProjectEventDescriptor describes a project's activity events, a read-only
// listing without a single-event endpoint.
var ProjectEventDescriptor = register(&Descriptor{
	Name:             "ProjectEvent",
	Path:             "/projects/{project_id}/events",
	GetMode:          GetFromList,
	DisableCreate:    true,
	DisableUpdate:    true,
	DisableDelete:    true,
	RequiredURLAttrs: []string{"project_id"},
})

// ProjectEvent is an activity event in a project.
type ProjectEvent struct{ *Object }

func newProjectEvent(o *Object) *ProjectEvent {
	if o == nil {
		return nil
	}
	return &ProjectEvent{Object: o}
}

// ProjectEventManager manages a project's events.
type ProjectEventManager struct{ ResourceManager[ProjectEvent] }

func newProjectEventManager(m *Manager) *ProjectEventManager {
	return &ProjectEventManager{typedManager(m, newProjectEvent)}
}
