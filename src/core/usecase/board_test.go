package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionboard/src/core/domain"
	"visionboard/src/infra/repo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBoardService(t *testing.T) *BoardService {
	t.Helper()
	n := 0
	ids := domain.IDSourceFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	boardRepo := repo.NewMemoryBoardRepository(repo.SeedBoard(), testLogger())
	return NewBoardService(boardRepo, ids, rand.New(rand.NewSource(1)), testLogger())
}

func TestBoardServiceView(t *testing.T) {
	s := newTestBoardService(t)
	ctx := context.Background()

	t.Run("all returns every seed item", func(t *testing.T) {
		view, err := s.View(ctx, "all")
		require.NoError(t, err)
		// Seed: 3 images + 1 video + 3 theories + 4 wishes
		assert.Len(t, view.Items, 11)
		assert.Equal(t, domain.EmptyNone, view.Empty)
	})

	t.Run("health filter matches seed image and marathon wish", func(t *testing.T) {
		view, err := s.View(ctx, "health")
		require.NoError(t, err)
		require.Len(t, view.Items, 2)

		kinds := map[domain.ContentKind]int{}
		for _, it := range view.Items {
			kinds[it.Kind]++
			assert.Equal(t, domain.CategoryHealth, it.Category())
		}
		assert.Equal(t, map[domain.ContentKind]int{domain.KindImage: 1, domain.KindWish: 1}, kinds)
	})

	t.Run("unrecognized filter fails, not treated as all", func(t *testing.T) {
		_, err := s.View(ctx, "everything")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidFilter(err))
	})

	t.Run("relationships category is empty in seed data", func(t *testing.T) {
		view, err := s.View(ctx, "relationships")
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, domain.EmptyCategory, view.Empty)
	})
}

func TestBoardServiceAddTheory(t *testing.T) {
	s := newTestBoardService(t)
	ctx := context.Background()

	created, err := s.AddTheory(ctx, domain.TheoryInput{
		Title:    "Memento Mori",
		Content:  "Remember you must die.",
		Category: domain.CategoryPersonal,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	// New theory shows up in the aggregate view
	view, err := s.View(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, view.Items, 12)

	// Validation failure leaves the board unchanged
	_, err = s.AddTheory(ctx, domain.TheoryInput{Title: " ", Content: "x", Category: domain.CategoryPersonal})
	require.Error(t, err)
	view, err = s.View(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, view.Items, 12)
}

func TestBoardServiceAddWish(t *testing.T) {
	s := newTestBoardService(t)
	ctx := context.Background()

	created, err := s.AddWish(ctx, domain.WishInput{
		Title:    "Write a book",
		Category: domain.CategoryCreativity,
	})
	require.NoError(t, err)
	assert.False(t, created.Completed)
	assert.Equal(t, 0, created.Progress)
}

func TestBoardServiceToggleWish(t *testing.T) {
	s := newTestBoardService(t)
	ctx := context.Background()

	// Seed wish "1" (Run a marathon) starts at progress 35
	wish, changed, err := s.ToggleWish(ctx, "1")
	require.NoError(t, err)
	require.True(t, changed)
	assert.True(t, wish.Completed)
	assert.Equal(t, 100, wish.Progress)

	wish, changed, err = s.ToggleWish(ctx, "1")
	require.NoError(t, err)
	require.True(t, changed)
	assert.False(t, wish.Completed)
	assert.Equal(t, 35, wish.Progress)

	// Unknown id is tolerated
	wish, changed, err = s.ToggleWish(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, wish)
}
