package messaging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/logx"
)

// Config stores message provider credentials.
type Config struct {
	BaseURL      string
	AccountSID   string
	AuthToken    string
	SMSFrom      string
	WhatsAppFrom string
}

// Client sends SMS and WhatsApp messages through a Twilio-style REST API.
type Client struct {
	httpc  *http.Client
	cfg    Config
	logger logx.Logger
}

// NewClient creates a messaging Client. Returns nil when the credential pair
// is missing so callers can fall back to a no-op sender.
func NewClient(httpc *http.Client, cfg Config, logger logx.Logger) *Client {
	if strings.TrimSpace(cfg.AccountSID) == "" || strings.TrimSpace(cfg.AuthToken) == "" {
		return nil
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{httpc: httpc, cfg: cfg, logger: logger}
}

// SendSMS sends a plain SMS.
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	return c.send(ctx, c.cfg.SMSFrom, to, body)
}

// SendWhatsApp sends a WhatsApp message, prefixing the channel scheme when absent.
func (c *Client) SendWhatsApp(ctx context.Context, to, body string) error {
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}
	from := c.cfg.WhatsAppFrom
	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}
	return c.send(ctx, from, to, body)
}

func (c *Client) send(ctx context.Context, from, to, body string) error {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.cfg.BaseURL, c.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build message request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("send message to %s: %v: %w", to, err, apperr.ErrUpstream)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send message to %s: provider status %d: %w", to, resp.StatusCode, apperr.ErrUpstream)
	}

	c.logger.Debug("message sent", logx.String("to", to))
	return nil
}
