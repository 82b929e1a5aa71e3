package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConsumer_Defaults(t *testing.T) {
	consumer := NewConsumer([]string{"localhost:9092"}, "smartmove-worker", "booking-notifications")
	defer consumer.Close()

	cfg := consumer.reader.Config()
	assert.Equal(t, defaultHeartbeatInterval, cfg.HeartbeatInterval)
	assert.Equal(t, defaultSessionTimeout, cfg.SessionTimeout)
	assert.Equal(t, "booking-notifications", cfg.Topic)
	assert.Equal(t, "smartmove-worker", cfg.GroupID)
}

func TestNewConsumer_Options(t *testing.T) {
	consumer := NewConsumer(
		[]string{"localhost:9092"}, "smartmove-worker", "booking-notifications",
		WithHeartbeatInterval(5*time.Second),
		WithSessionTimeout(45*time.Second),
	)
	defer consumer.Close()

	cfg := consumer.reader.Config()
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 45*time.Second, cfg.SessionTimeout)
}
