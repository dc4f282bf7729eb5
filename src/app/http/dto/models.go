package dto

// AddTheoryRequest is the payload for POST /v1/board/theories.
type AddTheoryRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"`
	Category string `json:"category" binding:"required"`
}

// AddWishRequest is the payload for POST /v1/board/wishes.
type AddWishRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
}

// SaveProfileRequest is the payload for PUT /v1/profile. Every field is
// optional; omitted fields are stored as empty strings.
type SaveProfileRequest struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
	AvatarURL  string `json:"avatar_url"`
}
