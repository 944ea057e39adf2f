package worker

import (
	"context"
)

// Worker - фоновая задача процесса cmd/worker (наблюдение за данными, сброс кеша страниц)
type Worker interface {
	// Start блокируется, пока воркер не остановят или ctx не будет отменён
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
