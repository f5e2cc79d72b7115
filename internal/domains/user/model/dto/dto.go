package dto

import (
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/user/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email     string  `json:"email"           validate:"required,email"`
	Password  string  `json:"password"        validate:"required,min=8"`
	FirstName string  `json:"first_name"      validate:"required,min=1,max=100"`
	LastName  string  `json:"last_name"       validate:"required,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Role      string  `json:"role"            validate:"omitempty,oneof=CLIENT MANAGER ADMIN"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleClient
	}

	return model.User{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Role:      role,
		IsActive:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login,omitempty"`
	IsActive  bool    `json:"is_active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Role = model.Role
	r.LastLogin = model.LastLogin
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	FirstName *string `db:"first_name" json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `db:"last_name"  json:"last_name,omitempty"  validate:"omitempty,min=1,max=100"`
	Phone     *string `db:"phone"      json:"phone,omitempty"      validate:"omitempty,min=7,max=20"`
	Role      *string `db:"role"       json:"role,omitempty"       validate:"omitempty,oneof=CLIENT MANAGER ADMIN"`
	IsActive  *bool   `db:"is_active"  json:"is_active,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName *string `db:"first_name" json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `db:"last_name"  json:"last_name,omitempty"  validate:"omitempty,min=1,max=100"`
	Phone     *string `db:"phone"      json:"phone,omitempty"      validate:"omitempty,min=7,max=20"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
