package migration

import (
	"context"
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
	tournamentUseCase "github.com/predictarena/backend/internal/domain/usecase/tournament"
)

// seedTournaments are the development fixtures created on a fresh database
var seedTournaments = []tournamentUseCase.CreateRequest{
	{
		Category:        "crypto",
		Type:            string(entity.TypeYesNo),
		EntryFee:        100,
		MaxParticipants: 100,
	},
	{
		Category:        "sports",
		Type:            string(entity.TypeMultiple),
		Options:         []string{"Home win", "Away win", "Draw"},
		EntryFee:        250,
		MaxParticipants: 50,
	},
}

// SeedTournaments creates a handful of upcoming tournaments so a fresh
// development database has something to enter. Skipped when any
// tournament already exists
func SeedTournaments(ctx context.Context, service *tournamentUseCase.UseCase, now time.Time) error {
	existing, err := service.ListOpen(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, req := range seedTournaments {
		req.StartTime = now.Add(5 * time.Minute)
		req.EndTime = now.Add(24 * time.Hour)
		if _, err := service.Create(ctx, req); err != nil {
			return err
		}
	}

	return nil
}
