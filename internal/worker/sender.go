package worker

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Sender interface {
	Send(to string, subject string, body string) (string, error)
}

// Simulates an email delivery provider
type MockSender struct {
	from        string
	successRate float64
}

// Create a new mock sender with the given envelope sender and success rate
func NewMockSender(from string, successRate float64) *MockSender {
	return &MockSender{
		from:        from,
		successRate: successRate,
	}
}

// Simulates sending an email
// Returns a provider message ID on success, or an error on failure
func (s *MockSender) Send(to string, subject string, body string) (string, error) {
	time.Sleep(time.Duration(rand.Intn(500)) * time.Millisecond)
	if rand.Float64() > s.successRate {
		return "", fmt.Errorf("mock provider error: failed to deliver email to %s", to)
	}
	log.Debug().Str("from", s.from).Str("to", to).Str("subject", subject).Msg("mock email delivered")
	return fmt.Sprintf("mock-email-%s", uuid.New().String()), nil
}
