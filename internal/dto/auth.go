package dto

type AuthRequestDTO struct {
	Login    string `json:"login" example:"user"`
	Password string `json:"password" example:"password"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}

type UserResponseDTO struct {
	ID            int    `json:"id" example:"1"`
	Login         string `json:"login" example:"user"`
	ReferralCode  string `json:"referral_code" example:"7992739871"`
	ReferralCount int    `json:"referral_count" example:"3"`
	Premium       bool   `json:"premium" example:"false"`
}
