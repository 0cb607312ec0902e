package gitlab

import (
	"context"
	"fmt"
)

// ProjectTagDescriptor describes a project's repository tags, keyed by tag
// name and located through the listing. The nested release and commit fields
// are wired in init (see nested.go).
var ProjectTagDescriptor = register(&Descriptor{
	Name:                "ProjectTag",
	Path:                "/projects/{project_id}/repository/tags",
	GetMode:             GetFromList,
	IDAttr:              "name",
	DisableUpdate:       true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredCreateAttrs: []string{"tag_name", "ref"},
	OptionalCreateAttrs: []string{"message"},
})

// ProjectTagReleaseDescriptor describes the release notes attached to a tag.
var ProjectTagReleaseDescriptor = register(&Descriptor{
	Name:                "ProjectTagRelease",
	Path:                "/projects/{project_id}/repository/tags/{tag_name}/release",
	DisableList:         true,
	DisableDelete:       true,
	RequiredURLAttrs:    []string{"project_id", "tag_name"},
	RequiredCreateAttrs: []string{"description"},
})

// ProjectTag is a repository tag.
type ProjectTag struct{ *Object }

func newProjectTag(o *Object) *ProjectTag {
	if o == nil {
		return nil
	}
	return &ProjectTag{Object: o}
}

// Release returns the release notes attached to the tag, nil if there are
// none.
func (t *ProjectTag) Release() *ProjectTagRelease {
	return newProjectTagRelease(t.ObjectAttr("release"))
}

// SetReleaseDescription sets the release notes on the tag, creating the
// release if it does not exist yet and updating it otherwise.
func (t *ProjectTag) SetReleaseDescription(ctx context.Context, description string, params Params) error {
	path := fmt.Sprintf("/projects/%s/repository/tags/%s/release",
		t.StringAttr("project_id"), AttrString(t.ID()))
	body := map[string]any{"description": description}

	var resp *Response
	var err error
	if t.Attr("release") == nil {
		resp, err = t.Connection().RawPost(ctx, path, body, params)
		if err != nil {
			return err
		}
		if err := CheckResponse(resp, KindRelease, 201); err != nil {
			return err
		}
	} else {
		resp, err = t.Connection().RawPut(ctx, path, body, params)
		if err != nil {
			return err
		}
		if err := CheckResponse(resp, KindRelease, 200); err != nil {
			return err
		}
	}

	data, err := resp.JSONMap()
	if err != nil {
		return err
	}
	t.SetAttr("release", newObject(t.Connection(), ProjectTagReleaseDescriptor, data, true, nil))
	return nil
}

// ProjectTagRelease is the release notes attached to a tag.
type ProjectTagRelease struct{ *Object }

func newProjectTagRelease(o *Object) *ProjectTagRelease {
	if o == nil {
		return nil
	}
	return &ProjectTagRelease{Object: o}
}

// ProjectTagManager manages a project's tags.
type ProjectTagManager struct{ ResourceManager[ProjectTag] }

func newProjectTagManager(m *Manager) *ProjectTagManager {
	return &ProjectTagManager{typedManager(m, newProjectTag)}
}

// ProjectTagReleaseManager manages the releases attached to tags.
type ProjectTagReleaseManager struct{ ResourceManager[ProjectTagRelease] }

func newProjectTagReleaseManager(m *Manager) *ProjectTagReleaseManager {
	return &ProjectTagReleaseManager{typedManager(m, newProjectTagRelease)}
}
