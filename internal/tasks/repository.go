package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trizenhq/trizen/internal/kvstore"
	"github.com/trizenhq/trizen/internal/model"
)

// Repository owns the canonical task collection: one ordered sequence,
// serialized as a single JSON blob under the tasks key. Every mutation is a
// load-mutate-save round trip; a process-wide mutex serializes them so two
// screens can never interleave a last-write-wins overwrite.
type Repository struct {
	store  kvstore.Store
	key    string
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex

	subMu sync.Mutex
	subs  []chan struct{}
}

func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		store:  store,
		key:    kvstore.KeyTasks,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the whole collection. It fails soft: an absent key, a storage
// read error, or a malformed blob all yield an empty collection, with the
// error logged rather than surfaced.
func (r *Repository) Load(ctx context.Context) []model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Save serializes the collection and replaces the stored blob entirely. A
// failed write is logged and reported, but callers treat the operation as
// complete; there is no retry and no rollback of in-memory state.
func (r *Repository) Save(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, tasks)
}

// Mutate runs one serialized load-mutate-save round trip. fn returns the next
// collection and whether anything changed; an unchanged collection skips the
// write.
func (r *Repository) Mutate(ctx context.Context, fn func([]model.Task) ([]model.Task, bool)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, changed := fn(r.load(ctx))
	if !changed {
		return nil
	}
	return r.save(ctx, next)
}

// Upsert replaces the task with a matching id, or prepends it when absent.
func (r *Repository) Upsert(ctx context.Context, task model.Task) error {
	return r.Mutate(ctx, func(tasks []model.Task) ([]model.Task, bool) {
		for i := range tasks {
			if tasks[i].ID == task.ID {
				tasks[i] = task
				return tasks, true
			}
		}
		return append([]model.Task{task}, tasks...), true
	})
}

// Remove deletes the task with the given id. An unknown id is a no-op and
// produces no write.
func (r *Repository) Remove(ctx context.Context, id string) error {
	return r.Mutate(ctx, func(tasks []model.Task) ([]model.Task, bool) {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			r.logger.Debug("remove: id not found", "id", id)
			return tasks, false
		}
		return kept, true
	})
}

// SetCompleted sets the completion flag on one task. An unknown id is a
// no-op.
func (r *Repository) SetCompleted(ctx context.Context, id string, completed bool) error {
	return r.Mutate(ctx, func(tasks []model.Task) ([]model.Task, bool) {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i].Completed = completed
				return tasks, true
			}
		}
		r.logger.Debug("set completed: id not found", "id", id)
		return tasks, false
	})
}

// Subscribe registers a listener signalled after every successful save, so
// screens resync on change instead of relying only on focus or polling. The
// channel has a buffer of one; coalesced signals are fine since listeners
// reload the whole collection anyway.
func (r *Repository) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	r.subMu.Lock()
	r.subs = append(r.subs, ch)
	r.subMu.Unlock()
	return ch
}

// NotifyExternal rebroadcasts a change made by another process, as reported
// by a store watcher.
func (r *Repository) NotifyExternal() {
	r.broadcast()
}

func (r *Repository) load(ctx context.Context) []model.Task {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.logger.Warn("load tasks", "error", err)
		return []model.Task{}
	}
	if !ok {
		return []model.Task{}
	}
	tasks, err := model.DecodeTasks(raw, r.now().UTC())
	if err != nil {
		r.logger.Warn("decode tasks", "error", err)
		return []model.Task{}
	}
	return tasks
}

func (r *Repository) save(ctx context.Context, tasks []model.Task) error {
	raw, err := model.EncodeTasks(tasks)
	if err != nil {
		r.logger.Error("encode tasks", "error", err)
		return err
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		r.logger.Error("save tasks", "error", err, "count", len(tasks))
		return err
	}
	r.broadcast()
	return nil
}

func (r *Repository) broadcast() {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
