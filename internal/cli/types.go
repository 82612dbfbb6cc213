package cli

// User is a player profile as returned by the API
type User struct {
	ID          string  `json:"id"`
	GoogleID    string  `json:"google_id"`
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	Picture     *string `json:"picture"`
	DisplayName string  `json:"display_name"`
	TotalScore  int     `json:"total_score"`
}

// AuthResult is the identity endpoint response
type AuthResult struct {
	User User `json:"user"`
}

// ExampleResult is the generation endpoint response
type ExampleResult struct {
	FromCache bool `json:"from_cache"`
	Result    struct {
		German      string `json:"german"`
		Translation string `json:"translation"`
	} `json:"result"`
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}
