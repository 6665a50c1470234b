package queue

import "context"

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// FailedMessage describes a message the queue refused within an accepted batch
type FailedMessage struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	SenderFault bool   `json:"senderFault"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string        `json:"successful"`
	Failed     []FailedMessage `json:"failed"`
}

// Sender submits batches of at most BatchLimit messages to a queue
type Sender interface {
	ResolveQueueURL(ctx context.Context, queue string) (string, error)
	SendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error)
}

// BatchLimit is the maximum number of messages accepted by a single SendBatch call
const BatchLimit = 10
