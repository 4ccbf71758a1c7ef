package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserColumns is the header row of the users sheet, in column order.
var UserColumns = []string{"username", "first_name", "password", "role"}

// User is one row of the users sheet. Password is stored as given.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Password  string `json:"-"`
	Role      string `json:"role"`
}
