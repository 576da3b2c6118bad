package ports

import (
	"context"

	"github.com/google/uuid"

	"stowage/internal/core/domain/model/plan"
)

// ReturnManifestRepository persists return manifests.
type ReturnManifestRepository interface {
	Add(ctx context.Context, manifest *plan.ReturnManifest) error

	Update(ctx context.Context, manifest *plan.ReturnManifest) error

	Get(ctx context.Context, id uuid.UUID) (*plan.ReturnManifest, error)
}
