// Package tracker is the single authoritative container for tasks, user
// progress and list filters. Views read snapshots and call the mutation
// methods; subscribers are told about every change.
package tracker

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/taskxp/internal/model"
	"github.com/sadopc/taskxp/internal/progress"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Option func(*Tracker)

func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithIDs replaces the uuid generator.
func WithIDs(next func() string) Option {
	return func(t *Tracker) { t.newID = next }
}

type Tracker struct {
	mu    sync.Mutex
	state model.Snapshot
	clock Clock
	newID func() string

	subs   map[int]func(model.Snapshot)
	nextID int

	// seq numbers each change; notifyMu orders deliveries so a subscriber
	// never sees an older snapshot after a newer one.
	seq       uint64
	notifyMu  sync.Mutex
	delivered uint64
}

// New builds a tracker seeded with snap. The snapshot is copied.
func New(snap model.Snapshot, opts ...Option) *Tracker {
	t := &Tracker{
		state: snap.Clone(),
		clock: realClock{},
		newID: uuid.NewString,
		subs:  make(map[int]func(model.Snapshot)),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.state.User.ID == "" {
		t.state.User.ID = t.newID()
	}
	progress.Reconcile(&t.state.User)
	return t
}

// Empty returns the first-run state: no tasks and a fresh user.
func Empty(userName string) model.Snapshot {
	return model.Snapshot{
		Tasks: []model.Task{},
		User:  model.DefaultUser(uuid.NewString(), userName),
	}
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() model.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

func (t *Tracker) Task(id string) (model.Task, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return t.state.Tasks[i].Clone(), true
}

func (t *Tracker) User() model.User {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.User.Clone()
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned func removes the subscription.
func (t *Tracker) Subscribe(fn func(model.Snapshot)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// mutate runs fn under the lock and, if fn reports a change, notifies
// subscribers in registration order once the lock is released. A snapshot
// overtaken by a newer delivery is dropped. Subscribers must not mutate
// the tracker.
func (t *Tracker) mutate(fn func(s *model.Snapshot) bool) {
	t.mu.Lock()
	if !fn(&t.state) {
		t.mu.Unlock()
		return
	}
	t.seq++
	seq := t.seq
	snap := t.state.Clone()
	ids := make([]int, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]func(model.Snapshot), len(ids))
	for i, id := range ids {
		subs[i] = t.subs[id]
	}
	t.mu.Unlock()

	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()
	if seq <= t.delivered {
		return
	}
	t.delivered = seq
	for _, fn := range subs {
		fn(snap.Clone())
	}
}

func (t *Tracker) indexOf(id string) int {
	return slices.IndexFunc(t.state.Tasks, func(task model.Task) bool { return task.ID == id })
}
