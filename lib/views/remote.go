package views

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// remote данные представления, загружаемые одним запросом на Load
type remote[T any] struct {
	name  string
	fetch func(ctx context.Context) (T, error)

	mu      sync.RWMutex
	loading bool
	loaded  bool
	data    T
}

// Load при ошибке оставляет прежние данные, повторных попыток нет
func (r *remote[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		log.WithError(err).WithField("view", r.name).Error("ошибка загрузки данных")
		return err
	}
	r.data = data
	r.loaded = true
	return nil
}

func (r *remote[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

func (r *remote[T]) get() (data T, loaded bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data, r.loaded
}
