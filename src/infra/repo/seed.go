package repo

import "visionboard/src/core/domain"

// SeedBoard returns the compiled-in starting dataset. Ids are pre-assigned
// and the data always conforms to the content model, so loading it cannot
// fail. It is copied into the in-memory repository once at startup.
func SeedBoard() domain.Board {
	return domain.Board{
		Images: []domain.Image{
			{ID: "1", Src: "/assets/vision-travel.jpg", Alt: "Mountain summit at golden hour", Category: domain.CategoryTravel},
			{ID: "2", Src: "/assets/vision-career.jpg", Alt: "Minimalist workspace sanctuary", Category: domain.CategoryCareer},
			{ID: "3", Src: "/assets/vision-health.jpg", Alt: "Morning meditation practice", Category: domain.CategoryHealth},
		},
		Videos: []domain.Video{
			{ID: "1", URL: "https://www.youtube.com/embed/LXb3EKWsInQ", Title: "Morning Motivation", Category: domain.CategoryPersonal},
		},
		Theories: []domain.Theory{
			{
				ID:       "1",
				Title:    "The Compound Effect",
				Content:  "Small, seemingly insignificant steps completed consistently over time will create a radical difference.",
				Author:   "Darren Hardy",
				Category: domain.CategoryPersonal,
			},
			{
				ID:       "2",
				Title:    "Amor Fati",
				Content:  "Love your fate. Not merely bear what is necessary, but love it.",
				Author:   "Friedrich Nietzsche",
				Category: domain.CategoryPersonal,
			},
			{
				ID:       "3",
				Title:    "The Map Is Not The Territory",
				Content:  `Our perception of reality is not reality itself but our own version of it, or our "map".`,
				Author:   "Alfred Korzybski",
				Category: domain.CategoryCreativity,
			},
		},
		Wishes: []domain.Wish{
			{ID: "1", Title: "Run a marathon", Description: "Complete a full 42km marathon", Category: domain.CategoryHealth, Progress: 35, TrackedProgress: 35},
			{ID: "2", Title: "Learn a new language", Description: "Become conversational in Japanese", Category: domain.CategoryPersonal, Progress: 20, TrackedProgress: 20},
			{ID: "3", Title: "Visit Japan", Description: "Experience the culture and beauty of Japan", Category: domain.CategoryTravel, Progress: 10, TrackedProgress: 10},
			{ID: "4", Title: "Build a side project", Description: "Launch a profitable side business", Category: domain.CategoryCareer, Completed: true, Progress: 100, TrackedProgress: 100},
		},
	}
}
