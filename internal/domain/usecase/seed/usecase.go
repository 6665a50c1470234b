package seed

import (
	"context"

	"sqs-seeder/internal/domain/model"
)

type UseCase interface {
	Run(ctx context.Context, request model.SeedRequest) (*model.SeedSummary, error)
}
