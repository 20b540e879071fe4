// Package ctxutil carries the acting user through a request.
// The CLI stores the operator resolved from --actor, PERMITFLOW_ACTOR or USER;
// batch runs replace it with the configured system actor. Repositories read it
// when they write audit entries. This package has no internal dependencies.
package ctxutil

import "context"

// ActorKey is the context key for the actor ID.
type ActorKey struct{}

// WithActorID returns a context that records actorID as the acting user.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the acting user, or "" when none was recorded.
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(ActorKey{}).(string)
	return actor
}
