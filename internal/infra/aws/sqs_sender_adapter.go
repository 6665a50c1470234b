package aws

import (
	"context"

	"sqs-seeder/internal/domain/gateway/queue"
	"sqs-seeder/pkg/sqs"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to implement domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

// NewSQSSenderAdapter creates a new SQS sender adapter that implements domain interface
func NewSQSSenderAdapter(sqsClient sqs.SQSClient) queue.Sender {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

// ResolveQueueURL implements the domain interface
func (adapter *SQSSenderAdapter) ResolveQueueURL(ctx context.Context, queueName string) (string, error) {
	return adapter.sqsSender.ResolveQueueURL(ctx, queueName)
}

// SendBatch implements the domain interface by converting types
func (adapter *SQSSenderAdapter) SendBatch(ctx context.Context, queueURL string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	// Convert domain types to SQS types
	sqsMessages := make([]sqs.BatchMessage, len(messages))
	for i, msg := range messages {
		sqsMessages[i] = sqs.BatchMessage{
			MessageID: msg.MessageID,
			Body:      msg.Body,
		}
	}

	result, err := adapter.sqsSender.SendBatch(ctx, queueURL, sqsMessages)
	if err != nil {
		return nil, err
	}

	// Convert SQS result back to domain type
	failed := make([]queue.FailedMessage, len(result.Failed))
	for i, entry := range result.Failed {
		failed[i] = queue.FailedMessage{
			ID:          entry.ID,
			Code:        entry.Code,
			Message:     entry.Message,
			SenderFault: entry.SenderFault,
		}
	}

	return &queue.BatchResult{
		Successful: result.Successful,
		Failed:     failed,
	}, nil
}
