package github

import (
	"context"
	"fmt"
)

// Logger is the logging surface the resolver needs.
type Logger interface {
	LogInfo(message string)
	LogError(message string)
}

// Resolve returns a handle to owner/name, creating the repository when the
// lookup fails. Any lookup failure, not-found or otherwise, triggers the
// create attempt.
//
// Creation happens under the authenticated identity, which is not necessarily
// owner; this mirrors the long-standing behavior and is deliberately left
// unchanged (see DESIGN.md).
//
// When creation also fails, Resolve returns nil with no error: the caller
// treats a nil handle as "nothing to sync" and the run ends normally.
func Resolve(ctx context.Context, session Session, owner, name string, log Logger) Repository {
	repo, err := session.GetRepository(ctx, owner, name)
	if err == nil {
		return repo
	}

	log.LogInfo(fmt.Sprintf("Repository %s/%s not found, creating now", owner, name))

	repo, err = session.CreateRepository(ctx, name)
	if err != nil {
		log.LogError(fmt.Sprintf("Repository creation failed: %v", err))
		return nil
	}

	return repo
}
