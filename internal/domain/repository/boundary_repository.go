package repository

import (
	"context"

	"github.com/infectieradar-dashboard/internal/domain"
)

// BoundaryRepository отдаёт полигоны провинций, общие для всех локалей
type BoundaryRepository interface {
	// Boundaries загружает provinces.geojson
	Boundaries(ctx context.Context) (*domain.BoundaryCollection, error)
}
