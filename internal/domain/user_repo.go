package domain

type UserRepository interface {
	AddUser(user *User) error
	GetUserByEmail(email string) (*User, error)
	AllUsers() []*User
}
