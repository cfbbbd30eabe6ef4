package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sadopc/taskxp/internal/model"
)

const (
	TaskStoreKey  = "task-store"
	ThemeStoreKey = "theme-store"
)

func (s *Store) SaveTasks(snap model.Snapshot) error {
	return s.saveJSON(TaskStoreKey, snap)
}

// LoadTasks restores the task store. ok is false when nothing usable is
// stored; the caller should start from defaults.
func (s *Store) LoadTasks() (snap model.Snapshot, ok bool) {
	if !s.loadJSON(TaskStoreKey, &snap) {
		return model.Snapshot{}, false
	}
	if snap.Tasks == nil {
		snap.Tasks = []model.Task{}
	}
	return snap, true
}

func (s *Store) SaveTheme(state model.ThemeState) error {
	return s.saveJSON(ThemeStoreKey, state)
}

func (s *Store) LoadTheme() (state model.ThemeState, ok bool) {
	if !s.loadJSON(ThemeStoreKey, &state) {
		return model.ThemeState{}, false
	}
	return state, true
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.SetSlot(key, string(data))
}

func (s *Store) loadJSON(key string, v any) bool {
	raw, err := s.GetSlot(key)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Warn("read slot", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Warn("discarding unreadable slot", "key", key, "error", err)
		return false
	}
	return true
}
