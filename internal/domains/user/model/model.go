package model

import "github.com/TomaszChromy/vehicle-rental-platform/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldIsActive  = "is_active"
)

type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Phone     *string `db:"phone"`
	Role      string  `db:"role"`
	LastLogin *string `db:"last_login"`
	IsActive  bool    `db:"is_active"`
	model.Metadata
}
