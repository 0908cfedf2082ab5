// Package userrepo stores the user directory: users, the staff groups and
// group membership.
package userrepo

import (
	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"size:150;uniqueIndex;not null"`
	IsSuperuser bool      `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GroupDTO is keyed by the group name ("Manager", "Delivery crew").
type GroupDTO struct {
	Name string `gorm:"size:150;primaryKey"`
}

func (GroupDTO) TableName() string {
	return "groups"
}

type UserGroupDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupName string    `gorm:"size:150;primaryKey;index"`
}

func (UserGroupDTO) TableName() string {
	return "user_groups"
}
