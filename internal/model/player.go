package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerProfile is the durable record for a signed-in player.
//
// ProviderSubject is the stable identifier Google assigns to the account
// and is the natural key for upserts; exactly one profile exists per
// subject. Email, Name and Picture are provider-supplied and overwritten
// on every successful verification; nil means the provider omitted the
// field. DisplayName is generated once at creation and never regenerated.
type PlayerProfile struct {
	ID              PlayerID
	ProviderSubject string
	Email           *string
	Name            *string
	Picture         *string
	DisplayName     string
	TotalScore      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
