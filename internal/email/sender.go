package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para enviar invitaciones de share link.
type Sender interface {
	SendShareInvite(ctx context.Context, toEmail, founderName, productName, shareLink string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendShareInvite(_ context.Context, _, _, _, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
