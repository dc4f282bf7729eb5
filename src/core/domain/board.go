package domain

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// IDSource produces opaque unique ids for newly created entities. It is the
// only non-pure dependency of the collection operations and is injected so
// tests can substitute a counter.
type IDSource interface {
	NewID() string
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() string

func (f IDSourceFunc) NewID() string { return f() }

// TimestampIDSource issues millisecond-timestamp ids with a monotonic guard,
// so two calls in the same millisecond still produce distinct values.
type TimestampIDSource struct {
	mu   sync.Mutex
	last int64
}

func (s *TimestampIDSource) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return strconv.FormatInt(now, 10)
}

// TheoryInput carries the user-supplied fields for a new theory.
type TheoryInput struct {
	Title    string
	Content  string
	Author   string
	Category Category
}

// WishInput carries the user-supplied fields for a new wish.
type WishInput struct {
	Title       string
	Description string
	Category    Category
}

// AddTheory returns a new collection with a freshly created theory prepended
// (most-recent-first). Title and content must be non-empty after trimming;
// otherwise the input collection is returned unchanged alongside a
// validation error.
func AddTheory(theories []Theory, input TheoryInput, ids IDSource) ([]Theory, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return theories, NewValidationError("title", "title is required")
	}
	if content == "" {
		return theories, NewValidationError("content", "content is required")
	}
	if !input.Category.Valid() {
		return theories, NewValidationError("category", "unknown category: "+string(input.Category))
	}

	next := make([]Theory, 0, len(theories)+1)
	next = append(next, Theory{
		ID:       ids.NewID(),
		Title:    title,
		Content:  content,
		Author:   strings.TrimSpace(input.Author),
		Category: input.Category,
	})
	next = append(next, theories...)
	return next, nil
}

// AddWish returns a new collection with a freshly created wish prepended.
// The wish starts not completed with zero progress. Title must be non-empty
// after trimming.
func AddWish(wishes []Wish, input WishInput, ids IDSource) ([]Wish, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return wishes, NewValidationError("title", "title is required")
	}
	if !input.Category.Valid() {
		return wishes, NewValidationError("category", "unknown category: "+string(input.Category))
	}

	next := make([]Wish, 0, len(wishes)+1)
	next = append(next, Wish{
		ID:              ids.NewID(),
		Title:           title,
		Description:     strings.TrimSpace(input.Description),
		Category:        input.Category,
		Completed:       false,
		Progress:        DefaultWishProgress,
		TrackedProgress: DefaultWishProgress,
	})
	next = append(next, wishes...)
	return next, nil
}

// ToggleWish flips the completed flag of the wish with the given id and
// returns a new collection with only that element replaced. Completing a
// wish forces progress to 100; un-completing restores the last tracked
// progress value. A missing id is a tolerated no-op: the returned collection
// equals the input and the second result is false.
func ToggleWish(wishes []Wish, id string) ([]Wish, bool) {
	next := make([]Wish, len(wishes))
	copy(next, wishes)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if next[i].Completed {
			next[i].Completed = false
			next[i].Progress = next[i].TrackedProgress
		} else {
			next[i].TrackedProgress = next[i].Progress
			next[i].Completed = true
			next[i].Progress = CompletedWishProgress
		}
		return next, true
	}
	return next, false
}
