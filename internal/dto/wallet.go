package dto

import "time"

type BalanceResponseDTO struct {
	Balance int `json:"balance" example:"42"`
}

type TransactionResponseDTO struct {
	Amount    int       `json:"amount" example:"-10"`
	Type      string    `json:"transaction_type" example:"fortune_purchase"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type ChatMessageRequestDTO struct {
	Text    string   `json:"text" example:"what does my future hold?"`
	History []string `json:"history,omitempty"`
}

type ChatMessageResponseDTO struct {
	Reply   string `json:"reply"`
	Balance int    `json:"balance" example:"41"`
}
