package store

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

// ErrUnknownFormat is returned when a format type has no known id.
var ErrUnknownFormat = models.ErrUnknownFormat

// DefaultFormatIDs are the ids the backend seeds its formats table with.
var DefaultFormatIDs = map[models.FormatType]models.ID{
	models.FormatText:  "1",
	models.FormatAudio: "2",
}

// FormatRegistry maps format types to server ids. It starts from
// DefaultFormatIDs and learns from every story the server returns.
type FormatRegistry struct {
	mu  sync.RWMutex
	ids map[models.FormatType]models.ID
}

func NewFormatRegistry() *FormatRegistry {
	ids := make(map[models.FormatType]models.ID, len(DefaultFormatIDs))
	for k, v := range DefaultFormatIDs {
		ids[k] = v
	}
	return &FormatRegistry{ids: ids}
}

func (r *FormatRegistry) Lookup(t models.FormatType) (models.ID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, t)
	}
	return id, nil
}

// Learn records every format that carries both an id and a type.
func (r *FormatRegistry) Learn(formats []models.Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range formats {
		if f.ID == "" || f.Type == "" {
			continue
		}
		r.ids[f.Type] = f.ID
	}
}

func (r *FormatRegistry) learnStories(stories ...models.Story) {
	for _, s := range stories {
		r.Learn(s.Formats)
	}
}
