package dto

// SignupRes represents the response for a successful signup.
type SignupRes struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TokenRes represents the response for a successful login.
type TokenRes struct {
	Token string `json:"token"`
}

// ErrorRes represents an error response body.
type ErrorRes struct {
	Error string `json:"error"`
}
