package domain

// Category is the fixed life-category taxonomy shared by every board entity.
// The set is closed; anything outside it is invalid input.
type Category string

const (
	CategoryCareer        Category = "career"
	CategoryHealth        Category = "health"
	CategoryTravel        Category = "travel"
	CategoryCreativity    Category = "creativity"
	CategoryRelationships Category = "relationships"
	CategoryPersonal      Category = "personal"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryCareer,
	CategoryHealth,
	CategoryTravel,
	CategoryCreativity,
	CategoryRelationships,
	CategoryPersonal,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryCareer, CategoryHealth, CategoryTravel,
		CategoryCreativity, CategoryRelationships, CategoryPersonal:
		return true
	}
	return false
}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", NewValidationError("category", "unknown category: "+raw)
	}
	return c, nil
}

// ContentKind discriminates the four board entity kinds in the aggregate view.
type ContentKind string

const (
	KindImage  ContentKind = "image"
	KindVideo  ContentKind = "video"
	KindTheory ContentKind = "theory"
	KindWish   ContentKind = "wish"
)

// Image is a pinned picture. Immutable once created.
type Image struct {
	ID       string   `json:"id"`
	Src      string   `json:"src"`
	Alt      string   `json:"alt"`
	Category Category `json:"category"`
}

// Video is an embedded clip. Thumbnail is optional; when empty it is derived
// from the URL for known providers (see ThumbnailURL).
type Video struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// Theory is a short philosophical note, optionally attributed.
type Theory struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author,omitempty"`
	Category Category `json:"category"`
}

// Wish is a goal with a completion flag and a 0-100 progress value.
//
// TrackedProgress remembers the last manually set progress while the wish is
// completed, so toggling completion off restores it instead of resetting to
// zero. Progress is the displayed value.
type Wish struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Category        Category `json:"category"`
	Completed       bool     `json:"completed"`
	Progress        int      `json:"progress"`
	TrackedProgress int      `json:"-"`
}

// Board bundles the four entity collections owned by one session.
type Board struct {
	Images   []Image
	Videos   []Video
	Theories []Theory
	Wishes   []Wish
}

// Profile is the per-user singleton record. All fields are optional and read
// back as empty strings when absent.
type Profile struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
	AvatarURL  string `json:"avatar_url"`
}
