package email

import (
	"context"
	"fmt"

	"github.com/peacekuria/smartmove/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for move %s on %s\n", event.Email, event.Type, event.Reference, event.MoveDate)
	return nil
}
