// Package watch publishes a data-updated event whenever a file under the
// data directory changes, so that page caches can be dropped.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/worker"
)

const DefaultDebounce = 500 * time.Millisecond

// watchedExt - расширения исходных файлов дашборда
var watchedExt = map[string]bool{
	".csv":     true,
	".geojson": true,
}

// DataWatcher следит за DATA_DIR и подкаталогами локалей
type DataWatcher struct {
	*worker.BaseWorker
	dataDir    string
	debounce   time.Duration
	streamRepo repository.StreamRepository
	now        func() time.Time
}

// NewDataWatcher создает новый DataWatcher
func NewDataWatcher(dataDir string, debounce time.Duration, streamRepo repository.StreamRepository, logger *zap.Logger) *DataWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &DataWatcher{
		BaseWorker: worker.NewBaseWorker("data-watcher", "", logger),
		dataDir:    dataDir,
		debounce:   debounce,
		streamRepo: streamRepo,
		now:        time.Now,
	}
}

// Start запускает наблюдение. Серия изменений за debounce схлопывается
// в одно событие на локаль.
func (w *DataWatcher) Start(ctx context.Context) error {
	logger := w.Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dataDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dataDir, err)
	}
	for _, loc := range domain.Locales() {
		w.addLocaleDir(watcher, loc.DataDir)
	}

	logger.Info("Watching data directory",
		zap.String("dir", w.dataDir),
		zap.Strings("watch_list", watcher.WatchList()),
		zap.Duration("debounce", w.debounce))

	pending := make(map[string]*domain.DataUpdatedEvent)
	var flush <-chan time.Time

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				// новый каталог локали появился после старта
				if rel, err := filepath.Rel(w.dataDir, ev.Name); err == nil && !strings.Contains(filepath.ToSlash(rel), "/") {
					w.addLocaleDir(watcher, rel)
				}
			}

			event, ok := w.Classify(ev)
			if !ok {
				continue
			}
			logger.Debug("Data file changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			pending[event.Locale] = event
			flush = time.After(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(err))

		case <-flush:
			w.publish(ctx, pending)
			pending = make(map[string]*domain.DataUpdatedEvent)
			flush = nil
		}
	}
}

func (w *DataWatcher) addLocaleDir(watcher *fsnotify.Watcher, sub string) {
	if _, ok := domain.LocaleByDataDir(sub); !ok {
		return
	}
	dir := filepath.Join(w.dataDir, sub)
	info, err := os.Stat(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.Logger().Warn("Failed to stat locale directory", zap.String("dir", dir), zap.Error(err))
		}
		return
	}
	if !info.IsDir() {
		return
	}
	if err := watcher.Add(dir); err != nil {
		w.Logger().Warn("Failed to watch locale directory", zap.String("dir", dir), zap.Error(err))
	}
}

// Classify maps a filesystem event to the locale whose page it invalidates.
// Files at the root of the data directory (provinces.geojson) touch every
// locale; files in an unknown sub-directory or with other extensions are ignored.
func (w *DataWatcher) Classify(ev fsnotify.Event) (*domain.DataUpdatedEvent, bool) {
	if ev.Op == fsnotify.Chmod {
		return nil, false
	}

	rel, err := filepath.Rel(w.dataDir, ev.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")

	event := &domain.DataUpdatedEvent{
		EventID:   uuid.New(),
		Path:      ev.Name,
		UpdatedAt: w.now().UTC(),
	}

	switch len(parts) {
	case 1:
		// новый или удалённый каталог локали
		if loc, ok := domain.LocaleByDataDir(parts[0]); ok {
			event.Locale = loc.Code
			return event, true
		}
		if !watchedExt[strings.ToLower(filepath.Ext(parts[0]))] {
			return nil, false
		}
		return event, true
	case 2:
		loc, ok := domain.LocaleByDataDir(parts[0])
		if !ok || !watchedExt[strings.ToLower(filepath.Ext(parts[1]))] {
			return nil, false
		}
		event.Locale = loc.Code
		return event, true
	default:
		return nil, false
	}
}

// publish sends pending events: the all-locales event first, then menu order.
func (w *DataWatcher) publish(ctx context.Context, pending map[string]*domain.DataUpdatedEvent) {
	keys := []string{""}
	for _, l := range domain.Locales() {
		keys = append(keys, l.Code)
	}

	for _, key := range keys {
		event, ok := pending[key]
		if !ok {
			continue
		}
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamDataUpdated, event); err != nil {
			w.Logger().Error("Failed to publish data update",
				zap.String("locale", event.Locale),
				zap.Error(err))
			continue
		}
		w.Logger().Info("Data update published",
			zap.String("event_id", event.EventID.String()),
			zap.String("locale", event.Locale),
			zap.String("path", event.Path))
	}
}
