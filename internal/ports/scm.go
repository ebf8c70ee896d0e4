package ports

// Signature identifies the author of commits and tags.
type Signature struct {
	Name  string
	Email string
}

// Scm records a release in the git repository that contains a file.
type Scm interface {
	// CommitFile stages and commits a single file, returning the commit hash.
	CommitFile(filePath string, message string, author Signature) (string, error)
	// CreateTag creates an annotated tag on HEAD of the repository containing path.
	CreateTag(path string, name string, message string, tagger Signature) error
	// Push pushes the current branch, and the tag when not empty, to remote.
	// An empty token leaves authentication to the transport defaults.
	Push(path string, remote string, tag string, token string) error
}
