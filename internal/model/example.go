package model

// Example is a generated example sentence for a vocabulary word:
// a short German sentence and its Indonesian translation.
//
// Both fields are always present on the wire; a missing translation is
// rendered as an empty string, never null.
type Example struct {
	German      string `json:"german"`
	Translation string `json:"translation"`
}
