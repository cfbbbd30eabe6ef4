package store

import (
	"fmt"
	"time"
)

// Slot is one durable key/value record.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

func (s *Store) GetSlot(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get slot %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSlot(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("set slot %q: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteSlot(key string) error {
	_, err := s.db.Exec(`DELETE FROM slots WHERE key = ?`, key)
	return err
}

func (s *Store) ListSlots() ([]Slot, error) {
	rows, err := s.db.Query(`SELECT key, value, updated_at FROM slots ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var sl Slot
		var updatedAt string
		if err := rows.Scan(&sl.Key, &sl.Value, &updatedAt); err != nil {
			return nil, err
		}
		sl.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}
