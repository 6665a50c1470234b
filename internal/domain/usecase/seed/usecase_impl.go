package seed

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"sqs-seeder/internal/domain/gateway/queue"
	"sqs-seeder/internal/domain/identifier"
	"sqs-seeder/internal/domain/model"
	"sqs-seeder/pkg/log"
	"sqs-seeder/pkg/msg"
)

type seedUseCase struct {
	sender    queue.Sender
	generator *identifier.Generator
	out       io.Writer
}

// NewSeedUseCase builds the use case. Failed entries of every batch are written to out.
func NewSeedUseCase(sender queue.Sender, generator *identifier.Generator, out io.Writer) UseCase {
	return &seedUseCase{
		sender:    sender,
		generator: generator,
		out:       out,
	}
}

// Run generates request.NumMessages messages and submits them sequentially in
// batches of queue.BatchLimit. Each batch is built right before it is sent, so
// only one batch is held in memory. The first batch call error aborts the run.
func (uc *seedUseCase) Run(ctx context.Context, request model.SeedRequest) (*model.SeedSummary, error) {
	summary := &model.SeedSummary{Messages: request.NumMessages}
	if request.NumMessages <= 0 {
		return summary, nil
	}

	queueURL, err := uc.sender.ResolveQueueURL(ctx, request.Queue)
	if err != nil {
		return summary, err
	}

	batches := request.NumMessages / queue.BatchLimit
	if request.NumMessages%queue.BatchLimit != 0 {
		batches++
	}

	for number := 0; number < batches; number++ {
		batch := uc.buildBatch(number*queue.BatchLimit, request, summary)

		result, err := uc.sender.SendBatch(ctx, queueURL, batch)
		if err != nil {
			return summary, fmt.Errorf("batch %d: %w", number, err)
		}
		summary.Batches++

		log.Debugw("batch sent", "batch", number, "size", len(batch), "failed", len(result.Failed))

		if len(result.Failed) > 0 {
			summary.Failed += len(result.Failed)
			fmt.Fprintln(uc.out, msg.GetMessage("seed.failed", result.Failed))
		}
	}

	return summary, nil
}

// buildBatch generates the messages with indexes [start, start+queue.BatchLimit) capped at request.NumMessages
func (uc *seedUseCase) buildBatch(start int, request model.SeedRequest, summary *model.SeedSummary) []queue.BatchMessage {
	size := request.NumMessages - start
	if size > queue.BatchLimit {
		size = queue.BatchLimit
	}

	batch := make([]queue.BatchMessage, 0, size)
	for i := start; i < start+size; i++ {
		id, kind := uc.generator.For(i, request.CollisionPercentage)
		if kind == identifier.KindDeterministic {
			summary.Deterministic++
		} else {
			summary.Random++
		}

		batch = append(batch, queue.BatchMessage{
			MessageID: strconv.Itoa(i),
			Body:      model.MessageBody{Identifier: id},
		})
	}
	return batch
}
