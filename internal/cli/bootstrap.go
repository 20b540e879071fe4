// Package cli provides CLI commands for the permitflow application.
package cli

import (
	gocontext "context"
	"os"

	"github.com/example/permitflow/internal/ctxutil"
	"github.com/example/permitflow/internal/wire"
)

// defaultActor is recorded when no operator identity can be found.
const defaultActor = "CLI"

// globalActorID stores the detected actor ID for the current CLI invocation.
// Set once at startup by DetectAndStoreActor().
var globalActorID string

// DetectAndStoreActor resolves the operator identity and stores it globally.
// The --actor flag wins over PERMITFLOW_ACTOR, which wins over USER.
func DetectAndStoreActor(flagValue string) {
	globalActorID = resolveActor(flagValue, os.Getenv("PERMITFLOW_ACTOR"), os.Getenv("USER"))
}

// GetActorID returns the stored actor ID from CLI startup.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}

// ApplyGlobalFlags pushes persistent flag values into the wiring layer.
// Call from PersistentPreRun before any service is built.
func ApplyGlobalFlags(actor string, debug bool) {
	DetectAndStoreActor(actor)
	wire.SetDebug(debug)
}

func resolveActor(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return defaultActor
}
