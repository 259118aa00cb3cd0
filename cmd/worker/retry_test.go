package main

import (
	"testing"

	"github.com/streadway/amqp"
)

func TestNextRetryFirstDelivery(t *testing.T) {
	// no header on a first delivery
	attempt, retry := nextRetry(nil)
	if !retry || attempt != 1 {
		t.Errorf("expected retry with attempt 1, got %d/%v", attempt, retry)
	}

	attempt, retry = nextRetry(amqp.Table{})
	if !retry || attempt != 1 {
		t.Errorf("empty headers: expected retry with attempt 1, got %d/%v", attempt, retry)
	}
}

func TestNextRetryBound(t *testing.T) {
	// the count climbs by one per republish and stops at the bound
	headers := amqp.Table{}
	attempts := []int32{}
	for {
		attempt, retry := nextRetry(headers)
		if !retry {
			break
		}
		attempts = append(attempts, attempt)
		headers["x-retry-count"] = attempt
		if len(attempts) > 10 {
			t.Fatal("retry bound never engaged")
		}
	}

	if len(attempts) != maxArchiveRetries {
		t.Errorf("expected %d retries, got %v", maxArchiveRetries, attempts)
	}
	for i, a := range attempts {
		if a != int32(i+1) {
			t.Errorf("attempt %d: expected %d, got %d", i, i+1, a)
		}
	}
}

func TestRetryCountHeaderWidths(t *testing.T) {
	cases := []struct {
		name    string
		headers amqp.Table
		want    int32
	}{
		{"int32", amqp.Table{"x-retry-count": int32(2)}, 2},
		{"int64", amqp.Table{"x-retry-count": int64(2)}, 2},
		{"int", amqp.Table{"x-retry-count": int(2)}, 2},
		{"missing", amqp.Table{}, 0},
		{"wrong type", amqp.Table{"x-retry-count": "2"}, 0},
	}

	for _, tc := range cases {
		if got := retryCount(tc.headers); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
