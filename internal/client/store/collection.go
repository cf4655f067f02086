package store

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/logging"
)

// Entity is implemented by every record a Collection can hold.
type Entity[T any] interface {
	EntityID() models.ID
	Clone() T
}

// State is a read-only copy of a Collection.
type State[T any] struct {
	Items   []T
	Current *T
	Loading bool
	Error   string
}

type options struct {
	logger   logging.Logger
	recorder Recorder
}

type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.NopLogger{}, recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Collection holds one resource collection plus a selection slot.
type Collection[T Entity[T]] struct {
	name     string
	logger   logging.Logger
	recorder Recorder

	mu      sync.RWMutex
	items   []T
	current *T
	loading bool
	err     string
}

func newCollection[T Entity[T]](name string, opts []Option) *Collection[T] {
	o := buildOptions(opts)
	return &Collection[T]{
		name:     name,
		logger:   o.logger.With("store", name),
		recorder: o.recorder,
		items:    []T{},
	}
}

func (c *Collection[T]) Name() string { return c.name }

// Snapshot returns a deep copy of the current state.
func (c *Collection[T]) Snapshot() State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := State[T]{
		Items:   make([]T, len(c.items)),
		Loading: c.loading,
		Error:   c.err,
	}
	for i, item := range c.items {
		s.Items[i] = item.Clone()
	}
	if c.current != nil {
		cur := (*c.current).Clone()
		s.Current = &cur
	}
	return s
}

func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Collection[T]) Error() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Find returns a copy of the list element with id.
func (c *Collection[T]) Find(id models.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// CurrentID returns the selected entity's id, or "" when nothing is selected.
func (c *Collection[T]) CurrentID() models.ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return ""
	}
	return (*c.current).EntityID()
}

// run executes one action: loading flag, failure message, logging and
// journal recording. Reconciliation happens inside fn after the request
// succeeds.
func (c *Collection[T]) run(ctx context.Context, a action, id models.ID, fn func() error) error {
	if a.loading {
		c.setLoading(true)
		defer c.setLoading(false)
	}

	started := time.Now()
	err := fn()

	if err != nil {
		msg := failureMessage(a, err)
		c.setError(msg)
		c.logger.Warn(ctx, "store action failed", "action", a.op, "id", id, "error", err)
		err = &ActionError{Store: c.name, Action: a.op, Message: msg, Err: err}
	}

	c.recorder.Record(ctx, Event{
		Store:    c.name,
		Action:   a.op,
		EntityID: id,
		Err:      err,
		Elapsed:  time.Since(started),
		At:       started,
	})
	return err
}

func (c *Collection[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Collection[T]) setError(msg string) {
	c.mu.Lock()
	c.err = msg
	c.mu.Unlock()
}

// indexOf is a linear scan; collections are small. Caller holds the lock.
func (c *Collection[T]) indexOf(id models.ID) int {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) setAll(items []T) {
	if items == nil {
		items = []T{}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *Collection[T]) setCurrent(v T) {
	c.mu.Lock()
	c.current = &v
	c.mu.Unlock()
}

func (c *Collection[T]) appendItem(v T) {
	c.mu.Lock()
	c.items = append(c.items, v)
	c.mu.Unlock()
}

// replace swaps the list element and the selection with v, wholesale.
func (c *Collection[T]) replace(v T) {
	id := v.EntityID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.items[i] = v
	}
	if c.current != nil && (*c.current).EntityID() == id {
		cur := v.Clone()
		c.current = &cur
	}
}

// replaceCurrent swaps the selection with v when it holds the same id.
func (c *Collection[T]) replaceCurrent(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && (*c.current).EntityID() == v.EntityID() {
		c.current = &v
	}
}

func (c *Collection[T]) remove(id models.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept

	if c.current != nil && (*c.current).EntityID() == id {
		c.current = nil
	}
}

// patchItem applies fn to the list element with id.
func (c *Collection[T]) patchItem(id models.ID, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	return true
}

// patchCurrent applies fn to the selection when it is the entity with id.
func (c *Collection[T]) patchCurrent(id models.ID, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || (*c.current).EntityID() != id {
		return false
	}
	fn(c.current)
	return true
}

func (c *Collection[T]) currentIs(id models.ID) bool {
	return c.CurrentID() == id && id != ""
}
