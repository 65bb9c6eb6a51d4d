package worker

import (
	"context"
)

// Worker is the contract every background worker fulfills.
type Worker interface {
	// Start runs the worker until the context is cancelled or Stop is
	// called.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
