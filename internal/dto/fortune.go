package dto

import "time"

type SubmitFortuneRequestDTO struct {
	Category string `json:"category" example:"love"`
	Cost     int    `json:"cost" example:"10"`
}

type FortuneResponseDTO struct {
	ID           string     `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Category     string     `json:"category" example:"love"`
	TokenAmount  int        `json:"token_amount" example:"10"`
	Status       string     `json:"status" example:"in_review"`
	ProcessAfter time.Time  `json:"process_after"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	AdsWatched   int        `json:"ads_watched" example:"0"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AccelerateResponseDTO struct {
	AdsWatched   int       `json:"ads_watched" example:"2"`
	ProcessAfter time.Time `json:"process_after"`
}
