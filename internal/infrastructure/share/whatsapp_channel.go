package share

import (
	"context"
	"errors"
	"log"
	"net/url"

	"salesease/internal/usecase/interfaces"
)

const composeBaseURL = "https://wa.me/"

var ErrEmptyShareMessage = errors.New("empty share message")

// WhatsAppChannel builds a pre-filled WhatsApp compose link. No network call
// is made here; opening the link is the caller's (browser's) job.
type WhatsAppChannel struct{}

var _ interfaces.IShareChannel = (*WhatsAppChannel)(nil)

func NewWhatsAppChannel() *WhatsAppChannel {
	return &WhatsAppChannel{}
}

func (c *WhatsAppChannel) Open(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyShareMessage
	}

	compose := composeBaseURL + "?text=" + url.QueryEscape(message)
	log.Printf("[share][whatsapp] compose link built message_len=%d", len(message))
	return compose, nil
}
