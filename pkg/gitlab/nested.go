package gitlab

// Nested attribute types are wired at init time because Project and Group
// descriptors embed each other, which a package-level literal cannot express.
func init() {
	ProjectDescriptor.Nested = map[string]*Descriptor{
		"owner":     UserDescriptor,
		"namespace": GroupDescriptor,
	}
	UserProjectDescriptor.Nested = map[string]*Descriptor{
		"owner":     UserDescriptor,
		"namespace": GroupDescriptor,
	}
	TeamProjectDescriptor.Nested = map[string]*Descriptor{
		"owner":     UserDescriptor,
		"namespace": GroupDescriptor,
	}
	GroupDescriptor.Nested = map[string]*Descriptor{
		"projects": ProjectDescriptor,
	}

	IssueDescriptor.Nested = map[string]*Descriptor{
		"author":    UserDescriptor,
		"assignee":  UserDescriptor,
		"milestone": ProjectMilestoneDescriptor,
	}
	ProjectIssueDescriptor.Nested = map[string]*Descriptor{
		"author":    UserDescriptor,
		"assignee":  UserDescriptor,
		"milestone": ProjectMilestoneDescriptor,
	}
	ProjectMergeRequestDescriptor.Nested = map[string]*Descriptor{
		"author":   UserDescriptor,
		"assignee": UserDescriptor,
	}

	ProjectBranchDescriptor.Nested = map[string]*Descriptor{
		"author":    UserDescriptor,
		"committer": UserDescriptor,
	}
	ProjectBuildDescriptor.Nested = map[string]*Descriptor{
		"user":   UserDescriptor,
		"commit": ProjectCommitDescriptor,
	}
	ProjectTagDescriptor.Nested = map[string]*Descriptor{
		"release": ProjectTagReleaseDescriptor,
		"commit":  ProjectCommitDescriptor,
	}

	ProjectNoteDescriptor.Nested = map[string]*Descriptor{
		"author": UserDescriptor,
	}
	ProjectIssueNoteDescriptor.Nested = map[string]*Descriptor{
		"author": UserDescriptor,
	}
	ProjectMergeRequestNoteDescriptor.Nested = map[string]*Descriptor{
		"author": UserDescriptor,
	}
	ProjectSnippetNoteDescriptor.Nested = map[string]*Descriptor{
		"author": UserDescriptor,
	}
	ProjectSnippetDescriptor.Nested = map[string]*Descriptor{
		"author": UserDescriptor,
	}
}
