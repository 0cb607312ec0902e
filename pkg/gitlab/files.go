package gitlab

import "encoding/base64"

// ProjectFileDescriptor describes files in a project's repository. Files are
// addressed by file_path and ref rather than an identifier, so every URL
// carries no id and the get/delete attribute lists do the addressing.
var ProjectFileDescriptor = register(&Descriptor{
	Name:                "ProjectFile",
	Path:                "/projects/{project_id}/repository/files",
	DisableList:         true,
	NoIDInUpdateURL:     true,
	NoIDInDeleteURL:     true,
	RequiredURLAttrs:    []string{"project_id"},
	RequiredGetAttrs:    []string{"file_path", "ref"},
	RequiredCreateAttrs: []string{"file_path", "branch_name", "content", "commit_message"},
	OptionalCreateAttrs: []string{"encoding"},
	RequiredDeleteAttrs: []string{"branch_name", "commit_message", "file_path"},
})

// ProjectFile is a file in a project's repository.
type ProjectFile struct{ *Object }

func newProjectFile(o *Object) *ProjectFile {
	if o == nil {
		return nil
	}
	return &ProjectFile{Object: o}
}

// DecodeContent returns the file content, which the API delivers base64
// encoded.
func (f *ProjectFile) DecodeContent() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.StringAttr("content"))
}

// ProjectFileManager manages a project's repository files.
type ProjectFileManager struct{ ResourceManager[ProjectFile] }

func newProjectFileManager(m *Manager) *ProjectFileManager {
	return &ProjectFileManager{typedManager(m, newProjectFile)}
}
