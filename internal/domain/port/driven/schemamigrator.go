package driven

import "context"

// SchemaMigrator brings the storage schema up to date. Migrate is idempotent.
type SchemaMigrator interface {
	Migrate(ctx context.Context) error
}
