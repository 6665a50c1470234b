package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"sqs-seeder/internal/domain/gateway/queue"
	"sqs-seeder/internal/domain/identifier"
	"sqs-seeder/internal/domain/model"
	"sqs-seeder/internal/domain/usecase/seed"
	"sqs-seeder/pkg/log"
	"sqs-seeder/pkg/msg"
	"sqs-seeder/pkg/util/numberutils"
)

const (
	ExitOK    = 0
	ExitError = 1
)

// Dependencies holds everything Run needs from the outside world
type Dependencies struct {
	Out       io.Writer
	Generator *identifier.Generator
	// NewSender is only called once the arguments are valid
	NewSender func(ctx context.Context) (queue.Sender, error)
}

// Run executes `<program> <queue_url> <num_messages> <collision_percentage>` and returns the process exit code
func Run(ctx context.Context, args []string, deps Dependencies) int {
	request, ok := parseArgs(args, deps.Out)
	if !ok {
		return ExitError
	}

	sender, err := deps.NewSender(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("cli.error.aws-config", err))
		return ExitError
	}

	log.Infow(msg.GetMessage("app.start"),
		"queue", request.Queue,
		"numMessages", request.NumMessages,
		"collisionPercentage", request.CollisionPercentage)

	useCase := seed.NewSeedUseCase(sender, deps.Generator, deps.Out)
	summary, err := useCase.Run(ctx, request)
	if err != nil {
		log.Errorw(msg.GetMessage("cli.error.send", request.Queue, err), "summary", summary)
		return ExitError
	}

	log.Infow(msg.GetMessage("seed.done"),
		"messages", summary.Messages,
		"batches", summary.Batches,
		"random", summary.Random,
		"deterministic", summary.Deterministic,
		"failed", summary.Failed)

	return ExitOK
}

func parseArgs(args []string, out io.Writer) (model.SeedRequest, bool) {
	program := "send-messages"
	if len(args) > 0 {
		program = filepath.Base(args[0])
	}

	if len(args) != 4 {
		fmt.Fprintln(out, msg.GetMessage("cli.usage", program))
		return model.SeedRequest{}, false
	}

	numMessages, ok := parseCount(out, "num_messages", args[2])
	if !ok {
		return model.SeedRequest{}, false
	}

	collisionPercentage, err := numberutils.ToIntWithError(args[3])
	if err != nil {
		fmt.Fprintln(out, msg.GetMessage("cli.error.not-integer", "collision_percentage", args[3]))
		return model.SeedRequest{}, false
	}
	if !numberutils.IsIntInRange(collisionPercentage, 0, 100) {
		fmt.Fprintln(out, msg.GetMessage("cli.error.collision-range"))
		return model.SeedRequest{}, false
	}

	return model.SeedRequest{
		Queue:               args[1],
		NumMessages:         numMessages,
		CollisionPercentage: collisionPercentage,
	}, true
}

func parseCount(out io.Writer, name, value string) (int, bool) {
	n, err := numberutils.ToIntWithError(value)
	if err != nil {
		fmt.Fprintln(out, msg.GetMessage("cli.error.not-integer", name, value))
		return 0, false
	}
	if numberutils.IsIntNegative(n) {
		fmt.Fprintln(out, msg.GetMessage("cli.error.negative", name, n))
		return 0, false
	}
	return n, true
}
