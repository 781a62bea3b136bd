// Package store owns the task collection. It is the only component that
// mutates tasks; every mutation is followed by a full-collection save to
// the injected Persistence and a change notification.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskboard/internal/model"
)

// DefaultKey identifies the task collection in the persistence backend.
const DefaultKey = "tasks"

const maxIDAttempts = 16

// Persistence is an opaque key/value blob store.
type Persistence interface {
	// Load returns found=false when nothing is stored under key.
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
}

type TaskStore struct {
	mu      sync.Mutex
	tasks   []model.Task
	persist Persistence
	key     string
	newID   func() string
	log     logrus.FieldLogger

	resetOnCorrupt bool

	// emitMu is taken before mu is released so listeners see changes in
	// the order they were applied.
	emitMu  sync.Mutex
	subsMu  sync.Mutex
	subs    map[int]Listener
	nextSub int
}

type Option func(*TaskStore)

func WithKey(key string) Option {
	return func(s *TaskStore) { s.key = key }
}

// WithIDGenerator replaces the random UUID generator. Colliding IDs are
// retried, so the generator does not need to be unique on its own.
func WithIDGenerator(fn func() string) Option {
	return func(s *TaskStore) { s.newID = fn }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *TaskStore) { s.log = l }
}

// WithResetOnCorrupt makes Open start from an empty collection instead of
// failing when the stored blob is corrupt. The blob is overwritten on the
// next mutation.
func WithResetOnCorrupt(enabled bool) Option {
	return func(s *TaskStore) { s.resetOnCorrupt = enabled }
}

// Open hydrates a store from p. A missing value yields an empty collection;
// an undecodable one yields *CorruptStateError.
func Open(ctx context.Context, p Persistence, opts ...Option) (*TaskStore, error) {
	s := &TaskStore{
		tasks:   []model.Task{},
		persist: p,
		key:     DefaultKey,
		newID:   uuid.NewString,
		log:     logrus.StandardLogger(),
		subs:    make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	blob, found, err := p.Load(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if !found {
		s.log.WithField("key", s.key).Debug("no stored tasks, starting empty")
		return s, nil
	}

	tasks, err := Decode(blob)
	if err != nil {
		corrupt := &CorruptStateError{Key: s.key, Err: err}
		if !s.resetOnCorrupt {
			return nil, corrupt
		}
		s.log.WithError(corrupt).Warn("discarding corrupt task state, starting empty")
		return s, nil
	}
	s.tasks = tasks
	s.log.WithField("count", len(tasks)).Debug("tasks loaded")
	return s, nil
}

// Reset overwrites the stored collection under key with an empty one.
func Reset(ctx context.Context, p Persistence, key string) error {
	blob, err := Encode(nil)
	if err != nil {
		return err
	}
	return p.Save(ctx, key, blob)
}

// List returns a snapshot in insertion order.
func (s *TaskStore) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *TaskStore) Get(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Task{}, ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// Create assigns a fresh ID to draft and appends it. If only the save
// fails, the created task is returned together with an ErrPersist error.
func (s *TaskStore) Create(ctx context.Context, draft model.TaskDraft) (model.Task, error) {
	if err := draft.Validate(); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	id, err := s.generateIDLocked()
	if err != nil {
		s.mu.Unlock()
		return model.Task{}, err
	}
	task := draft.WithID(id)
	s.tasks = append(s.tasks, task)
	saveErr := s.saveLocked(ctx)
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	s.log.WithField("task_id", id).Debug("task created")
	s.notify(Change{Kind: TaskCreated, Task: task.Clone()})
	return task.Clone(), saveErr
}

// Update replaces the record sharing task.ID wholesale.
func (s *TaskStore) Update(ctx context.Context, task model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	i := s.indexLocked(task.ID)
	if i < 0 {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	s.tasks[i] = task.Clone()
	saveErr := s.saveLocked(ctx)
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	s.log.WithField("task_id", task.ID).Debug("task updated")
	s.notify(Change{Kind: TaskUpdated, Task: task.Clone()})
	return saveErr
}

// Delete removes the task with id. Unknown IDs are a no-op.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	saveErr := s.saveLocked(ctx)
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	s.log.WithField("task_id", id).Debug("task deleted")
	s.notify(Change{Kind: TaskDeleted, Task: removed})
	return saveErr
}

// Subscribe registers l for change notifications and returns a function
// that removes it. Listeners are called in mutation order and must not
// mutate the store.
func (s *TaskStore) Subscribe(l Listener) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = l
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *TaskStore) notify(c Change) {
	s.subsMu.Lock()
	listeners := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		listeners = append(listeners, l)
	}
	s.subsMu.Unlock()

	for _, l := range listeners {
		l(c)
	}
}

func (s *TaskStore) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) generateIDLocked() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("generate task id: every attempt collided")
}

func (s *TaskStore) saveLocked(ctx context.Context) error {
	blob, err := Encode(s.tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.persist.Save(ctx, s.key, blob); err != nil {
		s.log.WithError(err).WithField("key", s.key).Error("save tasks")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
