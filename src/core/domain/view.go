package domain

import "math/rand"

// FilterAll is the sentinel filter that retains every category.
const FilterAll Filter = "all"

// Filter selects which categories the aggregate view retains: either the
// FilterAll sentinel or exactly one category.
type Filter string

// ParseFilter validates a raw filter value. An empty string means FilterAll;
// anything else must be "all" or a member of the closed category set. An
// unrecognized value is an error, never silently treated as "all".
func ParseFilter(raw string) (Filter, error) {
	if raw == "" || raw == string(FilterAll) {
		return FilterAll, nil
	}
	if !Category(raw).Valid() {
		return "", NewInvalidFilterError(raw)
	}
	return Filter(raw), nil
}

// Item is one entry of the aggregate view: an entity tagged with its kind.
// Exactly one of the pointers is set, matching Kind.
type Item struct {
	Kind   ContentKind
	Image  *Image
	Video  *Video
	Theory *Theory
	Wish   *Wish
}

// ID returns the id of the tagged entity.
func (it Item) ID() string {
	switch it.Kind {
	case KindImage:
		return it.Image.ID
	case KindVideo:
		return it.Video.ID
	case KindTheory:
		return it.Theory.ID
	case KindWish:
		return it.Wish.ID
	}
	return ""
}

// Category returns the category of the tagged entity.
func (it Item) Category() Category {
	switch it.Kind {
	case KindImage:
		return it.Image.Category
	case KindVideo:
		return it.Video.Category
	case KindTheory:
		return it.Theory.Category
	case KindWish:
		return it.Wish.Category
	}
	return ""
}

// EmptyState signals why a view came back without items.
type EmptyState string

const (
	// EmptyNone means the view has at least one item.
	EmptyNone EmptyState = ""

	// EmptyBoard means nothing has been added to the board at all.
	EmptyBoard EmptyState = "board_empty"

	// EmptyCategory means the board has items but none in the selected category.
	EmptyCategory EmptyState = "category_empty"
)

// View is the ordered sequence of display items plus the empty-state signal.
type View struct {
	Items []Item
	Empty EmptyState
}

// BuildView combines the four collections into one tagged sequence, filters
// it by the selected category, and shuffles the result into a fresh random
// permutation drawn from rng. The pre-shuffle order is images, videos,
// theories, wishes; it only matters as the permutation's seed order.
//
// The display order is intentionally non-deterministic across calls: two
// views over identical inputs may differ in order. Callers that need
// reproducibility inject a seeded rng.
func BuildView(board Board, filter Filter, rng *rand.Rand) View {
	items := make([]Item, 0, len(board.Images)+len(board.Videos)+len(board.Theories)+len(board.Wishes))
	for i := range board.Images {
		items = append(items, Item{Kind: KindImage, Image: &board.Images[i]})
	}
	for i := range board.Videos {
		items = append(items, Item{Kind: KindVideo, Video: &board.Videos[i]})
	}
	for i := range board.Theories {
		items = append(items, Item{Kind: KindTheory, Theory: &board.Theories[i]})
	}
	for i := range board.Wishes {
		items = append(items, Item{Kind: KindWish, Wish: &board.Wishes[i]})
	}

	total := len(items)
	if filter != FilterAll {
		filtered := items[:0]
		for _, it := range items {
			if it.Category() == Category(filter) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	empty := EmptyNone
	if len(items) == 0 {
		if filter != FilterAll && total > 0 {
			empty = EmptyCategory
		} else {
			empty = EmptyBoard
		}
	}
	return View{Items: items, Empty: empty}
}
