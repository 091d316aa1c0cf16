package interfaces

import (
	"context"

	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
)

// CatalogLoader supplies the ordered risk catalog the engine works on
type CatalogLoader interface {
	// LoadCatalog returns the risks in catalog order. Callers own the returned slice.
	LoadCatalog(ctx context.Context) ([]model.Risk, error)
}
