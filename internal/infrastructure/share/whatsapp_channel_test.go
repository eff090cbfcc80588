package share

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppChannel_Open(t *testing.T) {
	channel := NewWhatsAppChannel()

	t.Run("builds escaped compose link", func(t *testing.T) {
		message := "*Invoice from Acme Studio*\n\n*Total:* *EGP 2700.00*"
		got, err := channel.Open(context.Background(), message)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "https://wa.me/?text=" + url.QueryEscape(message)
		if got != want {
			t.Fatalf("unexpected link:\n got: %q\nwant: %q", got, want)
		}
		if strings.ContainsAny(got, "\n ") {
			t.Fatalf("link must not contain raw whitespace: %q", got)
		}
	})

	t.Run("round-trips through url parsing", func(t *testing.T) {
		message := "line one\nline two & three?"
		link, err := channel.Open(context.Background(), message)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parsed, err := url.Parse(link)
		if err != nil {
			t.Fatalf("link must be a valid url: %v", err)
		}
		if got := parsed.Query().Get("text"); got != message {
			t.Fatalf("expected message to survive escaping, got %q", got)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		if _, err := channel.Open(context.Background(), ""); !errors.Is(err, ErrEmptyShareMessage) {
			t.Fatalf("expected ErrEmptyShareMessage, got %v", err)
		}
	})
}
