package repo

import (
	"context"
	"log/slog"
	"sync"

	"visionboard/src/core/domain"
)

// MemoryBoardRepository holds the four content collections in memory,
// exactly as the session sees them. Mutations run under a single mutex so
// concurrent HTTP requests cannot interleave a read-modify-write cycle;
// snapshots hand out copies that need no further locking.
type MemoryBoardRepository struct {
	mu    sync.RWMutex
	board domain.Board
	log   *slog.Logger
}

// NewMemoryBoardRepository constructs a repository pre-populated with the
// given board (typically SeedBoard()).
func NewMemoryBoardRepository(initial domain.Board, log *slog.Logger) *MemoryBoardRepository {
	return &MemoryBoardRepository{board: copyBoard(initial), log: log}
}

// Health always succeeds; memory is never unreachable.
func (r *MemoryBoardRepository) Health(_ context.Context) error {
	return nil
}

// Snapshot returns a copy of the current board.
func (r *MemoryBoardRepository) Snapshot(_ context.Context) (domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyBoard(r.board), nil
}

// UpdateTheories applies fn to a copy of the theory collection and commits
// the result. On error the stored collection is untouched.
func (r *MemoryBoardRepository) UpdateTheories(_ context.Context, fn func([]domain.Theory) ([]domain.Theory, error)) ([]domain.Theory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := make([]domain.Theory, len(r.board.Theories))
	copy(current, r.board.Theories)

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	r.board.Theories = next
	return next, nil
}

// UpdateWishes applies fn to a copy of the wish collection and commits the
// result, with the same error contract as UpdateTheories.
func (r *MemoryBoardRepository) UpdateWishes(_ context.Context, fn func([]domain.Wish) ([]domain.Wish, error)) ([]domain.Wish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := make([]domain.Wish, len(r.board.Wishes))
	copy(current, r.board.Wishes)

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	r.board.Wishes = next
	return next, nil
}

func copyBoard(b domain.Board) domain.Board {
	out := domain.Board{
		Images:   make([]domain.Image, len(b.Images)),
		Videos:   make([]domain.Video, len(b.Videos)),
		Theories: make([]domain.Theory, len(b.Theories)),
		Wishes:   make([]domain.Wish, len(b.Wishes)),
	}
	copy(out.Images, b.Images)
	copy(out.Videos, b.Videos)
	copy(out.Theories, b.Theories)
	copy(out.Wishes, b.Wishes)
	return out
}
