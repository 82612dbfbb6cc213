package request

// AuthGoogleRequest is the request body for resolving a Google identity
type AuthGoogleRequest struct {
	AccessToken string `json:"access_token"`
}

// ExampleRequest is the request body for generating an example sentence
type ExampleRequest struct {
	Word string `json:"word"`
}
