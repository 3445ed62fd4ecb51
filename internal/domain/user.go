package domain

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	PhoneNumber  string
	ImageURL     string
}
