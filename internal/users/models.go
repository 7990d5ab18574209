package users

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
)

type User struct {
	Login    string
	Password string
	Phone    string
	FavItems string
	Role     Role
}
