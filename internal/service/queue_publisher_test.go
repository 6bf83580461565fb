package queue_publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisherURL(t *testing.T) {
	assert.Equal(t, defaultBrokerURL, NewPublisher("").url, "empty url selects the local broker")
	assert.Equal(t, "amqp://events:pw@broker:5672/", NewPublisher("amqp://events:pw@broker:5672/").url)
}
