package sdk

import (
	"fmt"
	"os"

	"github.com/celerix-dev/clientes/internal/engine"
)

// New initializes the store based on the environment.
// It returns the interface, so the caller doesn't care if it's local or remote.
func New() (engine.Store, error) {
	// 1. Check if a remote service is defined in the environment
	remoteAddr := os.Getenv("CLIENTES_API_ADDR")

	if remoteAddr != "" {
		client, err := Connect(remoteAddr)
		if err == nil {
			return client, nil
		}
		fmt.Fprintf(os.Stderr, "[Clientes SDK] %s unreachable (%v), using embedded store\n", remoteAddr, err)
	}

	// 2. Fallback to Embedded Mode
	// This uses the same engine the daemon uses, but inside the caller's process.
	return engine.NewMemStore(), nil
}
