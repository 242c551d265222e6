package sender

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

// TwilioOptions: учётные данные Twilio.
type TwilioOptions struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string // по умолчанию https://api.twilio.com

	Timeout time.Duration
}

// TwilioClient отправляет SMS через Twilio Messages API.
type TwilioClient struct {
	opts   TwilioOptions
	client *http.Client
}

// NewTwilioClient создаёт TwilioClient.
func NewTwilioClient(opts TwilioOptions) *TwilioClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultTwilioBaseURL
	}
	return &TwilioClient{
		opts:   opts,
		client: newHTTPClient(opts.Timeout),
	}
}

// Send отправляет SMS на номер phoneNumber.
func (c *TwilioClient) Send(ctx context.Context, phoneNumber, message string) error {
	if c.opts.AccountSID == "" || c.opts.AuthToken == "" || c.opts.From == "" {
		return fmt.Errorf("%w: twilio account sid, auth token or sender number is empty", ErrNotConfigured)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(c.opts.BaseURL, "/"), url.PathEscape(c.opts.AccountSID))

	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("From", c.opts.From)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.opts.AccountSID, c.opts.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: http request failed: %w", err)
	}
	defer drain(resp)

	return checkStatus("twilio", resp)
}
