package model

// User is an account row. Created at registration, immutable afterwards,
// never deleted by the application.
type User struct {
	Username     string
	PasswordHash string
}
