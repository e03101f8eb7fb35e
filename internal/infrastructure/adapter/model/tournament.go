package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tournament represents the database model for tournaments.
// Options are persisted as a JSON-encoded text column; the encoded form
// never leaves this package
type Tournament struct {
	ID                  string    `gorm:"primaryKey;size:36"`
	Category            string    `gorm:"not null;size:64;index"`
	Type                string    `gorm:"not null;size:16"`
	Options             string    `gorm:"not null;type:text"`
	EntryFee            int64     `gorm:"not null"`
	MaxParticipants     uint32    `gorm:"not null"`
	CurrentParticipants uint32    `gorm:"not null;default:0"`
	PrizePool           int64     `gorm:"not null;default:0"`
	StartTime           time.Time `gorm:"not null;index"`
	EndTime             time.Time `gorm:"not null;index"`
	Status              string    `gorm:"not null;size:16;index"`
	CorrectAnswer       *string   `gorm:"size:255"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for Tournament
func (Tournament) TableName() string {
	return "tournaments"
}

// EncodeOptions serializes an ordered option list for storage
func EncodeOptions(options []string) (string, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	return string(encoded), nil
}

// DecodeOptions restores the ordered option list from its stored form
func DecodeOptions(encoded string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(encoded), &options); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return options, nil
}
