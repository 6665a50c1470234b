package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"sqs-seeder/internal/domain/gateway/queue"
	"sqs-seeder/internal/domain/identifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	batches [][]queue.BatchMessage
	err     error
}

func (s *recordingSender) ResolveQueueURL(_ context.Context, q string) (string, error) {
	return q, nil
}

func (s *recordingSender) SendBatch(_ context.Context, _ string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.batches = append(s.batches, messages)
	return &queue.BatchResult{}, nil
}

func run(t *testing.T, sender *recordingSender, args ...string) (int, string, bool) {
	t.Helper()

	out := &bytes.Buffer{}
	called := false
	code := Run(context.Background(), append([]string{"/usr/bin/send-messages"}, args...), Dependencies{
		Out:       out,
		Generator: identifier.NewGenerator(),
		NewSender: func(context.Context) (queue.Sender, error) {
			called = true
			return sender, nil
		},
	})
	return code, out.String(), called
}

func TestRunUsage(t *testing.T) {
	code, out, called := run(t, &recordingSender{}, "https://sqs/queue", "10")

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Usage: send-messages <queue_url> <num_messages> <collision_percentage>\n", out)
	assert.False(t, called)
}

func TestRunCollisionOutOfRange(t *testing.T) {
	for _, percentage := range []string{"150", "-1", "101"} {
		t.Run(percentage, func(t *testing.T) {
			code, out, called := run(t, &recordingSender{}, "https://sqs/queue", "10", percentage)

			assert.Equal(t, ExitError, code)
			assert.Equal(t, "Collision percentage should be between 0 and 100\n", out)
			assert.False(t, called)
		})
	}
}

func TestRunInvalidNumbers(t *testing.T) {
	code, out, called := run(t, &recordingSender{}, "https://sqs/queue", "ten", "5")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, "num_messages should be an integer, got ten\n", out)
	assert.False(t, called)

	code, out, _ = run(t, &recordingSender{}, "https://sqs/queue", "-4", "5")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, "num_messages should not be negative, got -4\n", out)

	code, out, _ = run(t, &recordingSender{}, "https://sqs/queue", "4", "half")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, "collision_percentage should be an integer, got half\n", out)
}

func TestRunSends(t *testing.T) {
	sender := &recordingSender{}
	code, out, called := run(t, sender, "https://sqs/queue", "25", "0")

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, out)
	assert.True(t, called)
	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[2], 5)
}

func TestRunBatchErrorExitsWithError(t *testing.T) {
	sender := &recordingSender{err: errors.New("expired token")}
	code, _, _ := run(t, sender, "https://sqs/queue", "3", "50")

	assert.Equal(t, ExitError, code)
}

func TestRunSenderConstructionError(t *testing.T) {
	code := Run(context.Background(), []string{"send-messages", "q", "1", "1"}, Dependencies{
		Out:       &bytes.Buffer{},
		Generator: identifier.NewGenerator(),
		NewSender: func(context.Context) (queue.Sender, error) {
			return nil, errors.New("no region")
		},
	})

	assert.Equal(t, ExitError, code)
}
