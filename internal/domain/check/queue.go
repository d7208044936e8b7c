package check

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"go-health/internal/domain/model"
)

// QueueCheck verifies an SQS queue is reachable by reading its
// approximate message counts.
type QueueCheck struct {
	client   *sqs.Client
	queueURL string
}

// NewQueueCheck creates a check for the given queue URL.
func NewQueueCheck(client *sqs.Client, queueURL string) *QueueCheck {
	return &QueueCheck{client: client, queueURL: queueURL}
}

func (c *QueueCheck) Check(ctx context.Context) model.CheckResult {
	out, err := c.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(c.queueURL),
		AttributeNames: []types.QueueAttributeName{
			types.QueueAttributeNameApproximateNumberOfMessages,
			types.QueueAttributeNameApproximateNumberOfMessagesNotVisible,
		},
	})
	if err != nil {
		return model.DownResult(err, map[string]any{"queue_url": c.queueURL})
	}

	details := map[string]any{"queue_url": c.queueURL}
	if count, ok := out.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]; ok {
		details["approximate_messages"] = count
	}
	if count, ok := out.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessagesNotVisible)]; ok {
		details["approximate_messages_not_visible"] = count
	}
	return model.UpResult(details)
}
