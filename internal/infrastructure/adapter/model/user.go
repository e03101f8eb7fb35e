package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement"`
	Email            string     `gorm:"uniqueIndex;not null;size:255"`
	Username         string     `gorm:"uniqueIndex;not null;size:64"`
	WalletAddress    string     `gorm:"size:128"`
	PasswordHash     string     `gorm:"not null;size:128"`
	Points           int64      `gorm:"not null;default:0"`
	TotalTournaments uint64     `gorm:"not null;default:0"`
	WonTournaments   uint64     `gorm:"not null;default:0"`
	LastClaimDate    *time.Time `gorm:"index"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
