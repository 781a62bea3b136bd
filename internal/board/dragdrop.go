package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

var (
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrNotDragging   = errors.New("no drag in progress")
)

// Position addresses a card by column and index within that column.
type Position struct {
	Bucket model.Status `json:"bucket"`
	Index  int          `json:"index"`
}

// DropEvent is a finished gesture. A nil Destination means the card was
// released outside any column.
type DropEvent struct {
	Source      Position  `json:"source"`
	Destination *Position `json:"destination"`
}

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type Outcome string

const (
	OutcomeCancelled Outcome = "cancelled"
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeReordered is a move within one column. Card order is derived,
	// so nothing is stored.
	OutcomeReordered Outcome = "reordered"
	OutcomeMoved     Outcome = "moved"
	// OutcomeStale means the source index no longer points at a task.
	OutcomeStale Outcome = "stale"
)

type Result struct {
	Outcome Outcome     `json:"outcome"`
	Task    *model.Task `json:"task,omitempty"`
}

// TaskBoard is the part of the task store the reassigner needs.
type TaskBoard interface {
	List() []model.Task
	Update(ctx context.Context, task model.Task) error
}

// Reassigner tracks a single drag gesture (Idle -> Dragging -> Idle) and
// applies the resulting status change through TaskBoard.Update.
type Reassigner struct {
	mu     sync.Mutex
	board  TaskBoard
	log    logrus.FieldLogger
	state  State
	source Position
}

func NewReassigner(board TaskBoard, log logrus.FieldLogger) *Reassigner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reassigner{board: board, log: log}
}

func (r *Reassigner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// DragStart captures the source position. Starting a new drag replaces
// any drag already in progress.
func (r *Reassigner) DragStart(src Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dragStartLocked(src)
}

// Drop finishes the current drag and returns to Idle whatever the outcome.
func (r *Reassigner) Drop(ctx context.Context, dest *Position) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Dragging {
		return Result{}, ErrNotDragging
	}
	return r.dropLocked(ctx, dest)
}

// Cancel abandons the current drag without touching any task.
func (r *Reassigner) Cancel() {
	r.mu.Lock()
	r.state = Idle
	r.mu.Unlock()
}

// Move runs a complete gesture described by ev.
func (r *Reassigner) Move(ctx context.Context, ev DropEvent) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.dragStartLocked(ev.Source); err != nil {
		return Result{}, err
	}
	return r.dropLocked(ctx, ev.Destination)
}

func (r *Reassigner) dragStartLocked(src Position) error {
	if !src.Bucket.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBucket, src.Bucket)
	}
	r.source = src
	r.state = Dragging
	return nil
}

func (r *Reassigner) dropLocked(ctx context.Context, dest *Position) (Result, error) {
	src := r.source
	r.state = Idle
	r.source = Position{}

	if dest == nil {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	if !dest.Bucket.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownBucket, dest.Bucket)
	}
	if src == *dest {
		return Result{Outcome: OutcomeUnchanged}, nil
	}

	task, ok := Partition(r.board.List()).At(src)
	if !ok {
		r.log.WithFields(logrus.Fields{"bucket": src.Bucket, "index": src.Index}).
			Debug("drop source no longer resolves to a task")
		return Result{Outcome: OutcomeStale}, nil
	}
	if task.Status == dest.Bucket {
		return Result{Outcome: OutcomeReordered, Task: &task}, nil
	}

	task.Status = dest.Bucket
	err := r.board.Update(ctx, task)
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		r.log.WithField("task_id", task.ID).Debug("dropped task vanished before update")
		return Result{Outcome: OutcomeStale}, nil
	case errors.Is(err, store.ErrPersist):
		return Result{Outcome: OutcomeMoved, Task: &task}, err
	case err != nil:
		return Result{}, err
	}

	r.log.WithFields(logrus.Fields{"task_id": task.ID, "status": task.Status}).Debug("task moved")
	return Result{Outcome: OutcomeMoved, Task: &task}, nil
}
