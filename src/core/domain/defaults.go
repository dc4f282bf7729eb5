package domain

// DefaultWishProgress is the progress assigned to a newly created wish.
const DefaultWishProgress = 0

// CompletedWishProgress is the progress forced when a wish is completed.
const CompletedWishProgress = 100

// PlaceholderThumbnail is used when no thumbnail can be derived for a video.
const PlaceholderThumbnail = "/placeholder.svg"

// LocalProfileKey is the fixed key under which the device-local profile
// singleton is stored.
const LocalProfileKey = "vision-profile"
