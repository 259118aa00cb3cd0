package main

import (
	"github.com/streadway/amqp"

	"github.com/influenceos/influenceos-backend/internal/queue"
)

const maxArchiveRetries = 3

// nextRetry reads the delivery's retry count and reports whether a
// failed archive insert should be republished, along with the count to
// stamp on the republished message.
func nextRetry(headers amqp.Table) (int32, bool) {
	n := retryCount(headers)
	return n + 1, n < maxArchiveRetries
}

// retryCount tolerates the integer widths AMQP clients use for header
// values. A missing header means a first delivery.
func retryCount(headers amqp.Table) int32 {
	switch v := headers["x-retry-count"].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	case int:
		return int32(v)
	}
	return 0
}

func republish(ch *amqp.Channel, body []byte, attempt int32) error {
	return ch.Publish(
		"",
		queue.TopicSends,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers:     amqp.Table{"x-retry-count": attempt},
		},
	)
}
