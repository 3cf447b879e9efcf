package messaging

import "context"

// Nop is a sender that drops every message, used when the provider is not configured.
type Nop struct{}

// SendSMS does nothing.
func (Nop) SendSMS(context.Context, string, string) error { return nil }

// SendWhatsApp does nothing.
func (Nop) SendWhatsApp(context.Context, string, string) error { return nil }
