package model

import (
	"time"
)

// Participation represents the database model for tournament entries.
// The composite unique index backs the at-most-one-entry invariant even
// if a precondition check is ever bypassed
type Participation struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	TournamentID string    `gorm:"not null;size:36;uniqueIndex:idx_tournament_user;index"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_tournament_user;index"`
	Prediction   string    `gorm:"not null;size:255"`
	PointsPaid   int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Tournament Tournament `gorm:"foreignKey:TournamentID;references:ID"`
	User       User       `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Participation
func (Participation) TableName() string {
	return "participations"
}
