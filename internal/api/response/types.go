package response

import (
	"github.com/wortle/wortle-server/internal/model"
)

// User represents a player profile in API responses
type User struct {
	ID          string  `json:"id"`
	GoogleID    string  `json:"google_id"`
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	Picture     *string `json:"picture"`
	DisplayName string  `json:"display_name"`
	TotalScore  int     `json:"total_score"`
}

// UserFromModel converts a model.PlayerProfile to a response User
func UserFromModel(p *model.PlayerProfile) User {
	return User{
		ID:          string(p.ID),
		GoogleID:    p.ProviderSubject,
		Email:       p.Email,
		Name:        p.Name,
		Picture:     p.Picture,
		DisplayName: p.DisplayName,
		TotalScore:  p.TotalScore,
	}
}

// AuthResponse is the response for the identity endpoint
type AuthResponse struct {
	User User `json:"user"`
}

// ExampleResponse is the response for the generation endpoint
type ExampleResponse struct {
	FromCache bool          `json:"from_cache"`
	Result    model.Example `json:"result"`
}
