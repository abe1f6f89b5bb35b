package seal

import "context"

// Importer supplies catalog records from an external source.
//
// No implementation ships with this package. Records returned by an Importer
// enter the catalog through AddSeal and are validated like any other add.
type Importer interface {
	Import(ctx context.Context) ([]Record, error)
}

// ImporterFunc adapts a plain function to the Importer interface.
type ImporterFunc func(ctx context.Context) ([]Record, error)

// Import calls f(ctx).
func (f ImporterFunc) Import(ctx context.Context) ([]Record, error) {
	return f(ctx)
}
