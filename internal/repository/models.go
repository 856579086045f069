package repository

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string  `gorm:"primaryKey;autoIncrement:false"`
	Username     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Email        *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"type:varchar(16);not null;default:user"`
	CreatedAt    time.Time
}

type Song struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"type:varchar(512);not null;uniqueIndex:idx_owner_track"`
	Artist *string `gorm:"type:varchar(255)"`
	URL    string  `gorm:"type:varchar(2048);not null;uniqueIndex:idx_owner_track"`
	UserID string  `gorm:"not null;index;uniqueIndex:idx_owner_track"`
}

type Favorite struct {
	UserID string `gorm:"primaryKey;autoIncrement:false"`
	SongID uint   `gorm:"primaryKey;autoIncrement:false"`
}

type UserConfig struct {
	UserID        string `gorm:"primaryKey;autoIncrement:false"`
	DarkMode      bool   `gorm:"not null;default:false"`
	DefaultVolume int    `gorm:"not null;default:50"`
}
