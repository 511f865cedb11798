package store

import (
	"sync"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Stats is the derived projection over a store's counters. Open is never
// stored; it is always the live active-item count.
type Stats struct {
	Created  int `json:"created"`
	Resolved int `json:"resolved"`
	Deleted  int `json:"deleted"`
	Open     int `json:"open"`
}

// Store owns the id-to-item mapping for one work-item family. The map is
// never handed out raw; all access goes through methods. Safe for
// concurrent readers (the HTTP dashboard) alongside the single mutating
// terminal flow.
type Store[T domain.WorkItem] struct {
	mu       sync.RWMutex
	items    map[int]T
	order    []int
	created  int
	resolved int
	deleted  int
}

// New creates an empty store.
func New[T domain.WorkItem]() *Store[T] {
	return &Store[T]{
		items: make(map[int]T),
	}
}

// Create allocates the next id, inserts the item as Open and unassigned,
// and increments the created total. Field validation is the caller's job.
func (s *Store[T]) Create(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.SetItemID(s.nextIDLocked())
	item.SetItemStatus(domain.ItemStatusOpen)
	item.SetCreatedAt(time.Now())
	s.items[item.ItemID()] = item
	s.order = append(s.order, item.ItemID())
	s.created++
	return item
}

// Get looks up an active item. Absence is a normal result, not an error.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// Assign sets active ownership of an item, recording the holder in the
// last-assignee audit field. Runs under the store lock so dashboard
// readers never observe a half-written assignment.
func (s *Store[T]) Assign(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false
	}
	holder := userID
	item.SetAssigneeID(&holder)
	return true
}

// Unassign clears active ownership when userID is the current holder. The
// last-assignee audit field stays.
func (s *Store[T]) Unassign(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false
	}
	if holder := item.AssigneeID(); holder == nil || *holder != userID {
		return false
	}
	item.ClearAssignee()
	return true
}

// SetStatus updates an item's status field under the store lock.
func (s *Store[T]) SetStatus(id int, status domain.ItemStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false
	}
	item.SetItemStatus(status)
	return true
}

// AppendNote appends a note to an item under the store lock.
func (s *Store[T]) AppendNote(id int, note domain.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false
	}
	item.AppendNote(note)
	return true
}

// Delete removes an item and increments the deleted total. Used by the
// explicit admin delete flow, not by resolution.
func (s *Store[T]) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removeLocked(id) {
		return false
	}
	s.deleted++
	return true
}

// Resolve removes an item and increments the resolved total. Subsequent
// Get calls on the id report not found.
func (s *Store[T]) Resolve(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removeLocked(id) {
		return false
	}
	s.resolved++
	return true
}

// ListActive returns all current items in insertion order. Resolved items
// never appear.
func (s *Store[T]) ListActive() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]T, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			active = append(active, item)
		}
	}
	return active
}

// ForEachActive invokes fn for each active item in insertion order while
// holding the read lock. Callers on other goroutines (the HTTP dashboard)
// must read item fields inside fn, never from retained references.
func (s *Store[T]) ForEachActive(fn func(T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			fn(item)
		}
	}
}

// Len reports the active item count.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Stats recomputes the projection on every call; nothing is cached.
func (s *Store[T]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Created:  s.created,
		Resolved: s.resolved,
		Deleted:  s.deleted,
		Open:     len(s.items),
	}
}

func (s *Store[T]) removeLocked(id int) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// nextIDLocked yields 1 + max(existing ids), or 1 for an empty store. Ids
// restart at 1 once every item has been resolved or deleted away.
func (s *Store[T]) nextIDLocked() int {
	max := 0
	for id := range s.items {
		if id > max {
			max = id
		}
	}
	return max + 1
}
