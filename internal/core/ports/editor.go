package ports

import "context"

// Editor opens a file in the user's editor and blocks until it exits.
type Editor interface {
	Edit(ctx context.Context, path string) error
}
