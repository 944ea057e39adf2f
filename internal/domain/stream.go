package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamDataUpdated = "stream:dashboard:data:updated"
)

// DataUpdatedEvent - исходные файлы дашборда изменились, кеш страниц нужно сбросить
type DataUpdatedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Locale    string    `json:"locale,omitempty"` // пусто - все локали (например, изменился provinces.geojson)
	Path      string    `json:"path,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllLocales сообщает, затрагивает ли событие все локали
func (e *DataUpdatedEvent) AllLocales() bool {
	return e.Locale == ""
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
