package domain

// User is the identity the provider vouches for. It lives only for the
// duration of a request; nothing about it is persisted locally.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the body of a signup or login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
