package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile       *ProfileModel        `gorm:"foreignKey:UserID"`
	Role          *UserRoleModel       `gorm:"foreignKey:UserID"`
	Credentials   []CredentialModel    `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshTokenModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey;type:uuid"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	City      string    `gorm:"type:varchar(100)"`
	ShowPhone bool      `gorm:"not null;default:true"`
	ShowEmail bool      `gorm:"not null;default:false"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
