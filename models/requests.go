package models

// RegisterRequest is the JSON body of POST /account/register.
type RegisterRequest struct {
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// LoginRequest is the JSON body of POST /account/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateProjectRequest is the JSON body of POST /project/create.
type CreateProjectRequest struct {
	Name string `json:"name"`
}
