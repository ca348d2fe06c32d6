// Package github connects epsync to a remote GitHub repository.
//
// The Session and Repository interfaces are the ports the rest of epsync
// depends on; Client adapts them onto the GitHub REST API. Tests substitute
// fakes instead of making real remote calls.
package github

import "context"

// FileStatus classifies what a remote existence check found at a path.
type FileStatus int

const (
	// StatusNotFound means the remote reported no content at the path
	StatusNotFound FileStatus = iota

	// StatusFile means a regular file exists at the path
	StatusFile

	// StatusNotFile means content exists at the path but is not a regular
	// file (directory, submodule, symlink)
	StatusNotFile
)

// String returns the human-readable name of the status.
func (s FileStatus) String() string {
	switch s {
	case StatusNotFound:
		return "not-found"
	case StatusFile:
		return "file"
	case StatusNotFile:
		return "not-file"
	default:
		return "unknown"
	}
}

// Session is an authenticated connection to the hosting service.
type Session interface {
	// GetRepository looks up an existing repository by owner and name.
	GetRepository(ctx context.Context, owner, name string) (Repository, error)

	// CreateRepository creates a new repository under the authenticated
	// identity and returns a handle to it.
	CreateRepository(ctx context.Context, name string) (Repository, error)
}

// Repository is a handle to one remote repository. The handle is a
// capability owned by the remote service; it requires no explicit release.
type Repository interface {
	// FullName returns the "owner/name" identifier of the repository.
	FullName() string

	// StatFile reports whether content exists at path and whether it is a
	// regular file. A not-found response is (StatusNotFound, nil); a non-nil
	// error means the check itself failed and the caller decides policy.
	StatFile(ctx context.Context, path string) (FileStatus, error)

	// CreateFile uploads content as a new file at path with the given
	// commit message.
	CreateFile(ctx context.Context, path, content, message string) error
}
