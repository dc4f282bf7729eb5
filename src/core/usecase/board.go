package usecase

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"visionboard/src/core/domain"
	"visionboard/src/core/ports"
)

// BoardService exposes the aggregate view and the three board mutations.
// All business rules live in the pure domain functions; this service wires
// them to the repository and owns the non-pure inputs (id generation and
// shuffle randomness).
type BoardService struct {
	repo ports.BoardRepository
	ids  domain.IDSource
	log  *slog.Logger

	// rand.Rand is not safe for concurrent use; the view path serializes
	// draws behind rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewBoardService creates a BoardService with the given id and randomness
// sources. Tests inject deterministic ones.
func NewBoardService(repo ports.BoardRepository, ids domain.IDSource, rng *rand.Rand, log *slog.Logger) *BoardService {
	return &BoardService{repo: repo, ids: ids, rng: rng, log: log}
}

// View returns the randomized, filtered display sequence. The raw filter is
// validated here: an unrecognized value fails with an invalid filter error
// rather than being treated as "all".
func (s *BoardService) View(ctx context.Context, rawFilter string) (*domain.View, error) {
	filter, err := domain.ParseFilter(rawFilter)
	if err != nil {
		s.log.Error("rejected board filter", "filter", rawFilter)
		return nil, err
	}

	board, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	view := domain.BuildView(board, filter, s.rng)
	s.rngMu.Unlock()
	return &view, nil
}

// AddTheory validates and prepends a new theory, returning the created
// entity. The collection is left untouched on validation failure.
func (s *BoardService) AddTheory(ctx context.Context, input domain.TheoryInput) (*domain.Theory, error) {
	var created domain.Theory
	_, err := s.repo.UpdateTheories(ctx, func(theories []domain.Theory) ([]domain.Theory, error) {
		next, err := domain.AddTheory(theories, input, s.ids)
		if err != nil {
			return nil, err
		}
		created = next[0]
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("theory added", "theory_id", created.ID, "category", created.Category)
	return &created, nil
}

// AddWish validates and prepends a new wish, returning the created entity.
func (s *BoardService) AddWish(ctx context.Context, input domain.WishInput) (*domain.Wish, error) {
	var created domain.Wish
	_, err := s.repo.UpdateWishes(ctx, func(wishes []domain.Wish) ([]domain.Wish, error) {
		next, err := domain.AddWish(wishes, input, s.ids)
		if err != nil {
			return nil, err
		}
		created = next[0]
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("wish added", "wish_id", created.ID, "category", created.Category)
	return &created, nil
}

// ToggleWish flips completion of the wish with the given id. A missing id is
// tolerated: the board is unchanged and the returned flag is false.
func (s *BoardService) ToggleWish(ctx context.Context, id string) (*domain.Wish, bool, error) {
	var toggled *domain.Wish
	changed := false
	_, err := s.repo.UpdateWishes(ctx, func(wishes []domain.Wish) ([]domain.Wish, error) {
		next, ok := domain.ToggleWish(wishes, id)
		changed = ok
		if ok {
			for i := range next {
				if next[i].ID == id {
					w := next[i]
					toggled = &w
					break
				}
			}
		}
		return next, nil
	})
	if err != nil {
		return nil, false, err
	}
	if changed {
		s.log.Info("wish toggled", "wish_id", id, "completed", toggled.Completed)
	}
	return toggled, changed, nil
}
