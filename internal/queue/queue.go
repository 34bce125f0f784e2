// Package queue holds the ordered, duplicate-free list of candidate
// activities and the cursors for the card and image on screen.
//
// A Queue is not safe for concurrent use. The engine drives it from a single
// goroutine.
package queue

import (
	"fmt"

	"activity_discovery/internal/domain"
)

// Delta describes what an operation changed.
type Delta struct {
	Removed       []domain.ActivityID
	Appended      []domain.ActivityID
	ActiveChanged bool
	ImageChanged  bool
	Empty         bool
}

func (d Delta) Changed() bool {
	return len(d.Removed) > 0 || len(d.Appended) > 0 || d.ActiveChanged || d.ImageChanged
}

// Exclusion records why an id was removed. Seq is the fetch sequence current
// at removal time.
type Exclusion struct {
	Seq   uint64
	Liked bool
}

type Queue struct {
	items       []domain.Activity
	index       map[domain.ActivityID]struct{}
	active      int
	activeImage int

	// ids removed by the user this session; never re-added from a feed
	excluded map[domain.ActivityID]Exclusion
}

func New() *Queue {
	return &Queue{
		index:    make(map[domain.ActivityID]struct{}),
		excluded: make(map[domain.ActivityID]Exclusion),
	}
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Cursor returns the active item and image indices.
func (q *Queue) Cursor() (int, int) {
	return q.active, q.activeImage
}

func (q *Queue) Active() (domain.Activity, bool) {
	if len(q.items) == 0 {
		return domain.Activity{}, false
	}
	return q.items[q.active], true
}

func (q *Queue) ActiveImage() (string, bool) {
	a, ok := q.Active()
	if !ok || len(a.Images) == 0 {
		return "", false
	}
	return a.Images[q.activeImage], true
}

func (q *Queue) IDs() []domain.ActivityID {
	ids := make([]domain.ActivityID, len(q.items))
	for i, a := range q.items {
		ids[i] = a.ID
	}
	return ids
}

func (q *Queue) Contains(id domain.ActivityID) bool {
	_, ok := q.index[id]
	return ok
}

func (q *Queue) Excluded(id domain.ActivityID) bool {
	_, ok := q.excluded[id]
	return ok
}

// Append adds activities that are neither queued nor excluded, after the
// existing items and in the given order.
func (q *Queue) Append(activities []domain.Activity) []domain.ActivityID {
	var appended []domain.ActivityID
	for _, a := range activities {
		if q.Contains(a.ID) || q.Excluded(a.ID) {
			continue
		}
		q.items = append(q.items, a)
		q.index[a.ID] = struct{}{}
		appended = append(appended, a.ID)
	}
	return appended
}

// RemoveActive removes the item on screen and excludes it for the rest of the session.
func (q *Queue) RemoveActive(mark Exclusion) (domain.Activity, bool) {
	if len(q.items) == 0 {
		return domain.Activity{}, false
	}
	removed := q.items[q.active]
	q.removeAt(q.active)
	q.excluded[removed.ID] = mark
	q.active = 0
	q.activeImage = 0
	return removed, true
}

// Remove drops the item with the given id wherever it sits and excludes it.
// It reports whether the item was queued.
func (q *Queue) Remove(id domain.ActivityID, mark Exclusion) bool {
	q.excluded[id] = mark
	if !q.Contains(id) {
		return false
	}
	for i, a := range q.items {
		if a.ID != id {
			continue
		}
		wasActive := i == q.active
		q.removeAt(i)
		switch {
		case wasActive:
			q.active = 0
			q.activeImage = 0
		case i < q.active:
			q.active--
		}
		return true
	}
	return false
}

// Reconcile keeps only queued items present in remoteIDs, then appends the
// remote activities not yet queued. The active item keeps its cursor position
// relative to the surviving items; if it was dropped the cursor is clamped.
// Applying the same arguments twice is a no-op the second time.
func (q *Queue) Reconcile(remoteIDs map[domain.ActivityID]struct{}, remote []domain.Activity) Delta {
	var delta Delta

	var activeID domain.ActivityID
	hadActive := len(q.items) > 0
	if hadActive {
		activeID = q.items[q.active].ID
	}

	kept := q.items[:0]
	newActive := -1
	for _, a := range q.items {
		if _, ok := remoteIDs[a.ID]; !ok {
			delete(q.index, a.ID)
			delta.Removed = append(delta.Removed, a.ID)
			continue
		}
		if hadActive && a.ID == activeID {
			newActive = len(kept)
		}
		kept = append(kept, a)
	}
	clear(q.items[len(kept):])
	q.items = kept

	if newActive >= 0 {
		q.active = newActive
	} else {
		q.active = min(q.active, max(len(q.items)-1, 0))
		q.activeImage = 0
	}

	delta.Appended = q.Append(remote)

	current, hasActive := q.Active()
	delta.ActiveChanged = hadActive != hasActive || (hasActive && current.ID != activeID)
	delta.Empty = len(q.items) == 0
	return delta
}

// CycleImage moves the image cursor by step, clamped to the active item's
// images. It reports whether the cursor moved.
func (q *Queue) CycleImage(step int) (int, bool) {
	a, ok := q.Active()
	if !ok {
		return 0, false
	}
	next := min(max(q.activeImage+step, 0), len(a.Images)-1)
	if next < 0 {
		next = 0
	}
	moved := next != q.activeImage
	q.activeImage = next
	return next, moved
}

// Clear empties the queue and forgets session exclusions.
func (q *Queue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	clear(q.index)
	clear(q.excluded)
	q.active = 0
	q.activeImage = 0
}

// ForgetDeclinedBefore lets dislikes recorded before seq be appended again.
// Likes and later removals stay excluded. It returns how many were forgotten.
func (q *Queue) ForgetDeclinedBefore(seq uint64) int {
	n := 0
	for id, mark := range q.excluded {
		if !mark.Liked && mark.Seq < seq {
			delete(q.excluded, id)
			n++
		}
	}
	return n
}

// Validate checks the queue invariants.
func (q *Queue) Validate() error {
	seen := make(map[domain.ActivityID]struct{}, len(q.items))
	for _, a := range q.items {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate activity %d", a.ID)
		}
		seen[a.ID] = struct{}{}
		if _, ok := q.index[a.ID]; !ok {
			return fmt.Errorf("activity %d missing from index", a.ID)
		}
	}
	if len(q.index) != len(q.items) {
		return fmt.Errorf("index size %d, queue length %d", len(q.index), len(q.items))
	}
	if len(q.items) == 0 {
		if q.active != 0 || q.activeImage != 0 {
			return fmt.Errorf("empty queue with cursor (%d, %d)", q.active, q.activeImage)
		}
		return nil
	}
	if q.active < 0 || q.active >= len(q.items) {
		return fmt.Errorf("active index %d out of range [0, %d)", q.active, len(q.items))
	}
	images := len(q.items[q.active].Images)
	if images > 0 && (q.activeImage < 0 || q.activeImage >= images) {
		return fmt.Errorf("active image index %d out of range [0, %d)", q.activeImage, images)
	}
	return nil
}

func (q *Queue) removeAt(i int) {
	delete(q.index, q.items[i].ID)
	copy(q.items[i:], q.items[i+1:])
	q.items[len(q.items)-1] = domain.Activity{}
	q.items = q.items[:len(q.items)-1]
}
