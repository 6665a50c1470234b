package main

import (
	"context"
	"os"

	"sqs-seeder/configs"
	"sqs-seeder/internal/application/cli"
	"sqs-seeder/internal/domain/gateway/queue"
	"sqs-seeder/internal/domain/identifier"
	"sqs-seeder/internal/infra/aws"
	"sqs-seeder/pkg/log"

	"go.uber.org/zap/zapcore"
)

func main() {
	initLogger(os.Stderr, configs.Env)
	ctx := context.Background()

	code := cli.Run(ctx, os.Args, cli.Dependencies{
		Out:       os.Stdout,
		Generator: identifier.NewGenerator(),
		NewSender: func(ctx context.Context) (queue.Sender, error) {
			cfg, err := aws.NewConfig(ctx, configs.Env)
			if err != nil {
				return nil, err
			}
			return aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg)), nil
		},
	})

	log.Sync()
	os.Exit(code)
}

// initLogger tags every log line with the configured application name
func initLogger(out zapcore.WriteSyncer, env *configs.EnvConfig) {
	log.New(out, log.LevelFromEnv(), env.ApplicationName)
}
