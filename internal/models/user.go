package models

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthData is the login payload. TokenExpiration is expressed in hours.
type AuthData struct {
	UserID          string `json:"userId"`
	Token           string `json:"token"`
	TokenExpiration int    `json:"tokenExpiration"`
}

type Credentials struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}
