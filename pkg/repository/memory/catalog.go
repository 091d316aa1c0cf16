package memory

import (
	"context"
	"slices"

	"github.com/secmon-lab/sprintrisk/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
)

// Catalog is an in-memory, read-only risk catalog
type Catalog struct {
	risks []model.Risk
}

var _ interfaces.CatalogLoader = &Catalog{}

// NewCatalog returns a catalog seeded with the built-in risks
func NewCatalog() *Catalog {
	return &Catalog{risks: model.DefaultCatalog()}
}

// NewCatalogWith returns a catalog holding a copy of risks
func NewCatalogWith(risks ...model.Risk) *Catalog {
	return &Catalog{risks: slices.Clone(risks)}
}

func (c *Catalog) LoadCatalog(ctx context.Context) ([]model.Risk, error) {
	return slices.Clone(c.risks), nil
}
