package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arjunmehra/dhaba/internal/model"
)

const defaultPostmarkAPIURL = "https://api.postmarkapp.com/email"

// EmailClient sends new-order alerts to a staff inbox through Postmark.
type EmailClient struct {
	serverToken string
	from        string
	to          string
	apiURL      string
	httpClient  *http.Client
}

type EmailOption func(*EmailClient)

func WithEmailHTTPClient(c *http.Client) EmailOption {
	return func(cl *EmailClient) {
		cl.httpClient = c
	}
}

func WithEmailAPIURL(u string) EmailOption {
	return func(cl *EmailClient) {
		cl.apiURL = u
	}
}

func NewEmailClient(serverToken, from, to string, opts ...EmailOption) *EmailClient {
	c := &EmailClient{
		serverToken: serverToken,
		from:        from,
		to:          to,
		apiURL:      defaultPostmarkAPIURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if the server token and both addresses are set.
func (c *EmailClient) Configured() bool {
	return c.serverToken != "" && c.from != "" && c.to != ""
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	TextBody string `json:"TextBody"`
}

// OrderCreated emails the new-order alert to the staff inbox.
func (c *EmailClient) OrderCreated(o model.Order) error {
	if !c.Configured() {
		return fmt.Errorf("email client not configured")
	}

	payload := postmarkEmail{
		From:     c.from,
		To:       c.to,
		Subject:  fmt.Sprintf("New order %s", o.ID),
		TextBody: orderAlertText(o),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode)
	}
	return nil
}
