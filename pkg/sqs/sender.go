package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// MaxBatchSize is the SQS limit of entries per SendMessageBatch call
const MaxBatchSize = 10

// SerializationErrorCode marks entries whose body could not be encoded to JSON
const SerializationErrorCode = "SerializationError"

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// FailedEntry describes a message rejected by SQS inside a batch call
type FailedEntry struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	SenderFault bool   `json:"senderFault"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string      `json:"successful"`
	Failed     []FailedEntry `json:"failed"`
}

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// ResolveQueueURL returns queue verbatim when it is already an URL, otherwise
// it is treated as a queue name and looked up
func (s *Sender) ResolveQueueURL(ctx context.Context, queue string) (string, error) {
	if strings.HasPrefix(queue, "https://") || strings.HasPrefix(queue, "http://") {
		return queue, nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queue, err)
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queue)
	}
	return *result.QueueUrl, nil
}

// SendBatch sends a single batch of up to 10 messages in one SendMessageBatch call.
// An error is returned only when the call itself fails; entries rejected by SQS
// are reported in BatchResult.Failed
func (s *Sender) SendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) > MaxBatchSize {
		return nil, fmt.Errorf("batch size cannot exceed %d messages, got %d", MaxBatchSize, len(messages))
	}

	result := &BatchResult{
		Successful: []string{},
		Failed:     []FailedEntry{},
	}
	if len(messages) == 0 {
		return result, nil
	}

	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))

	// Prepare batch entries
	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			result.Failed = append(result.Failed, FailedEntry{
				ID:          msg.MessageID,
				Code:        SerializationErrorCode,
				Message:     err.Error(),
				SenderFault: true,
			})
			continue
		}

		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(msg.MessageID),
			MessageBody: aws.String(string(jsonBody)),
		})
	}

	// If no messages could be serialized, return early
	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, success := range output.Successful {
		if success.Id != nil {
			result.Successful = append(result.Successful, *success.Id)
		}
	}

	for _, failed := range output.Failed {
		result.Failed = append(result.Failed, FailedEntry{
			ID:          aws.ToString(failed.Id),
			Code:        aws.ToString(failed.Code),
			Message:     aws.ToString(failed.Message),
			SenderFault: failed.SenderFault,
		})
	}

	return result, nil
}
