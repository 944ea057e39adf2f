package csvfs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
)

// BoundariesFile - общий для всех локалей файл с полигонами провинций
const BoundariesFile = "provinces.geojson"

type boundaryRepository struct {
	path   string
	logger *zap.Logger
}

// NewBoundaryRepository создает репозиторий границ поверх DATA_DIR/provinces.geojson
func NewBoundaryRepository(dataDir string, logger *zap.Logger) repository.BoundaryRepository {
	return &boundaryRepository{
		path:   filepath.Join(dataDir, BoundariesFile),
		logger: logger,
	}
}

func (r *boundaryRepository) Boundaries(ctx context.Context) (*domain.BoundaryCollection, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.ErrDataFileUnreadable.
			WithDetails(map[string]interface{}{"path": r.path}).
			Wrap(err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.ErrDataMalformed.
			WithDetails(map[string]interface{}{"path": r.path}).
			Wrap(err)
	}

	r.logger.Debug("Boundaries loaded",
		zap.String("path", r.path),
		zap.Int("features", len(fc.Features)))
	return domain.NewBoundaryCollection(fc), nil
}
