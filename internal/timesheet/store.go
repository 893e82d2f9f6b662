package timesheet

import (
	"fmt"
	"sort"
)

// Backend mirrors the store's contents outside the session. The store calls
// SaveAll after every mutation and LoadAll once at construction; it never
// reads from the backend again during the session.
type Backend interface {
	LoadAll() ([]Entry, error)
	SaveAll([]Entry) error
	Close() error
}

// Store is the authoritative collection of entries for the current session.
// It owns the entry set outright: the backend is a passive mirror, and a
// failed flush never rolls back an in-memory mutation.
//
// Single writer only; callers must not share a Store across goroutines.
type Store struct {
	backend Backend
	entries []Entry
	nextID  int64
}

// NewStore builds a store over backend, loading any previously persisted
// entries. A nil backend gives a purely in-memory store.
//
// A failed load does not fail session start: the store comes up empty and the
// error (wrapping ErrPersistence) is returned alongside it as a warning.
func NewStore(backend Backend) (*Store, error) {
	s := &Store{backend: backend, nextID: 1}
	if backend == nil {
		return s, nil
	}

	entries, err := backend.LoadAll()
	if err != nil {
		return s, fmt.Errorf("%w: load: %v", ErrPersistence, err)
	}
	s.entries = entries
	for _, e := range entries {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
	s.sortEntries()
	return s, nil
}

// Add validates the session via ComputeHours, assigns a fresh id and inserts.
// On validation failure nothing is inserted. On flush failure the entry is
// still added and returned; the error wraps ErrPersistence.
func (s *Store) Add(date Date, start, end Clock, breakMinutes int) (Entry, error) {
	hours, err := ComputeHours(start, end, breakMinutes)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:           s.nextID,
		Date:         date,
		Start:        start,
		End:          end,
		BreakMinutes: breakMinutes,
		Hours:        hours,
	}
	s.nextID++
	s.entries = append(s.entries, e)
	s.sortEntries()
	return e, s.flush()
}

// Update recomputes hours from the new inputs and replaces the entry. If the
// id is absent it fails with ErrNotFound; if the recomputed hours are invalid
// the prior entry is left untouched.
func (s *Store) Update(id int64, date Date, start, end Clock, breakMinutes int) (Entry, error) {
	idx := s.index(id)
	if idx < 0 {
		return Entry{}, ErrNotFound
	}

	hours, err := ComputeHours(start, end, breakMinutes)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:           id,
		Date:         date,
		Start:        start,
		End:          end,
		BreakMinutes: breakMinutes,
		Hours:        hours,
	}
	s.entries[idx] = e
	s.sortEntries()
	return e, s.flush()
}

// Delete removes the entry with the given id and reports whether a removal
// occurred. Deleting an absent id is a no-op, not an error; ids are never
// reused afterwards.
func (s *Store) Delete(id int64) (bool, error) {
	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	return true, s.flush()
}

// Clear removes every entry. Irreversible within the session.
func (s *Store) Clear() error {
	s.entries = nil
	return s.flush()
}

// List returns a copy of all entries, date-descending, ties newest id first.
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int { return len(s.entries) }

func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func (s *Store) index(id int64) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sortEntries() {
	sort.Slice(s.entries, func(i, j int) bool {
		if s.entries[i].Date != s.entries[j].Date {
			return s.entries[j].Date.Before(s.entries[i].Date)
		}
		return s.entries[i].ID > s.entries[j].ID
	})
}

func (s *Store) flush() error {
	if s.backend == nil {
		return nil
	}
	if err := s.backend.SaveAll(s.List()); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrPersistence, err)
	}
	return nil
}
