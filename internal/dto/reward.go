package dto

type ProgressEventRequestDTO struct {
	Metric    string `json:"metric" example:"posts_liked"`
	Increment int    `json:"increment,omitempty" example:"1"`
}

type TierProgressResponseDTO struct {
	Tier         int            `json:"tier" example:"1"`
	Requirements map[string]int `json:"requirements"`
	Counters     map[string]int `json:"counters"`
	Reward       int            `json:"reward" example:"2"`
	Completed    bool           `json:"completed" example:"true"`
	Claimed      bool           `json:"claimed" example:"false"`
}

type ClaimRequestDTO struct {
	Tier int `json:"tier" example:"1"`
}

type ClaimResponseDTO struct {
	Reward int `json:"reward" example:"2"`
}

type ReferralRequestDTO struct {
	Code string `json:"code" example:"7992739871"`
}

type AdViewResponseDTO struct {
	Balance int `json:"balance" example:"43"`
}
