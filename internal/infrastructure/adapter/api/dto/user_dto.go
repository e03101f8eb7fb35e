package dto

import (
	"time"
)

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	ID                   uint64     `json:"id"`
	Email                string     `json:"email"`
	Username             string     `json:"username"`
	WalletAddress        string     `json:"walletAddress,omitempty"`
	Points               int64      `json:"points"`
	TotalTournaments     uint64     `json:"totalTournaments"`
	WonTournaments       uint64     `json:"wonTournaments"`
	LastClaimDate        *time.Time `json:"lastClaimDate,omitempty"`
	ClaimAvailableInSecs int64      `json:"claimAvailableInSecs"`
}

// BalanceResponse represents the API response for a user's point balance
type BalanceResponse struct {
	UserID uint64 `json:"userId"`
	Points int64  `json:"points"`
}

// ClaimResponse represents a successful free-point claim
type ClaimResponse struct {
	PointsAwarded int64 `json:"pointsAwarded"`
	NewBalance    int64 `json:"newBalance"`
}

// CooldownResponse reports the remaining wait on a rejected claim
type CooldownResponse struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	RemainingSecs int64  `json:"remainingSecs"`
}
