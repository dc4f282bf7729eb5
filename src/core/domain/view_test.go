package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() Board {
	return Board{
		Images: []Image{
			{ID: "i1", Src: "/a.jpg", Alt: "summit", Category: CategoryTravel},
			{ID: "i2", Src: "/b.jpg", Alt: "workspace", Category: CategoryCareer},
			{ID: "i3", Src: "/c.jpg", Alt: "meditation", Category: CategoryHealth},
		},
		Videos: []Video{
			{ID: "v1", URL: "https://www.youtube.com/embed/xyz", Title: "Morning", Category: CategoryPersonal},
		},
		Theories: []Theory{
			{ID: "t1", Title: "Amor Fati", Content: "Love your fate.", Category: CategoryPersonal},
		},
		Wishes: []Wish{
			{ID: "w1", Title: "Run a marathon", Category: CategoryHealth, Progress: 35},
			{ID: "w2", Title: "Visit Japan", Category: CategoryTravel, Progress: 10},
		},
	}
}

// multiset collects (kind, id) pairs independent of display order.
func multiset(items []Item) map[[2]string]int {
	out := make(map[[2]string]int)
	for _, it := range items {
		out[[2]string{string(it.Kind), it.ID()}]++
	}
	return out
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		raw     string
		want    Filter
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"", FilterAll, false},
		{"health", Filter("health"), false},
		{"relationships", Filter("relationships"), false},
		{"ALL", "", true},
		{"Health", "", true},
		{"mindfulness", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFilter(tc.raw)
		if tc.wantErr {
			require.Error(t, err, "raw=%q", tc.raw)
			assert.True(t, IsInvalidFilter(err), "raw=%q", tc.raw)
		} else {
			require.NoError(t, err, "raw=%q", tc.raw)
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestBuildViewAllIsUnionOfCollections(t *testing.T) {
	board := testBoard()
	want := map[[2]string]int{
		{"image", "i1"}: 1, {"image", "i2"}: 1, {"image", "i3"}: 1,
		{"video", "v1"}: 1,
		{"theory", "t1"}: 1,
		{"wish", "w1"}: 1, {"wish", "w2"}: 1,
	}

	// The multiset must hold for any random permutation.
	for seed := int64(0); seed < 20; seed++ {
		view := BuildView(board, FilterAll, rand.New(rand.NewSource(seed)))
		assert.Equal(t, EmptyNone, view.Empty)
		assert.Equal(t, want, multiset(view.Items), "seed=%d", seed)
	}
}

func TestBuildViewFiltersByCategory(t *testing.T) {
	board := testBoard()
	view := BuildView(board, Filter(CategoryHealth), rand.New(rand.NewSource(7)))

	want := map[[2]string]int{
		{"image", "i3"}: 1,
		{"wish", "w1"}:  1,
	}
	assert.Equal(t, want, multiset(view.Items))
	assert.Equal(t, EmptyNone, view.Empty)

	for _, it := range view.Items {
		assert.Equal(t, CategoryHealth, it.Category())
	}
	for _, it := range view.Items {
		if it.Kind == KindWish {
			assert.Equal(t, "Run a marathon", it.Wish.Title)
		}
	}
}

func TestBuildViewShufflesDeterministicallyPerSource(t *testing.T) {
	board := testBoard()
	a := BuildView(board, FilterAll, rand.New(rand.NewSource(42)))
	b := BuildView(board, FilterAll, rand.New(rand.NewSource(42)))

	require.Equal(t, len(a.Items), len(b.Items))
	for i := range a.Items {
		assert.Equal(t, a.Items[i].Kind, b.Items[i].Kind)
		assert.Equal(t, a.Items[i].ID(), b.Items[i].ID())
	}
}

func TestBuildViewEmptyStates(t *testing.T) {
	t.Run("category with no items", func(t *testing.T) {
		view := BuildView(testBoard(), Filter(CategoryRelationships), rand.New(rand.NewSource(1)))
		assert.Empty(t, view.Items)
		assert.Equal(t, EmptyCategory, view.Empty)
	})

	t.Run("board with nothing added", func(t *testing.T) {
		view := BuildView(Board{}, FilterAll, rand.New(rand.NewSource(1)))
		assert.Empty(t, view.Items)
		assert.Equal(t, EmptyBoard, view.Empty)
	})

	t.Run("empty board with category filter", func(t *testing.T) {
		view := BuildView(Board{}, Filter(CategoryHealth), rand.New(rand.NewSource(1)))
		assert.Empty(t, view.Items)
		assert.Equal(t, EmptyBoard, view.Empty)
	})
}

func TestBuildViewDoesNotInventItems(t *testing.T) {
	// No placeholders: an empty result really is empty.
	view := BuildView(Board{Wishes: []Wish{{ID: "w1", Title: "x", Category: CategoryHealth}}},
		Filter(CategoryCareer), rand.New(rand.NewSource(3)))
	assert.Len(t, view.Items, 0)
}
