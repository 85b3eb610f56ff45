package notify

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/arjunmehra/dhaba/internal/model"
)

const defaultWhatsAppBaseURL = "https://wa.me"

// WhatsAppClient sends new-order alerts to the restaurant's WhatsApp number
// through the wa.me deep link. Delivery is best effort; there is no
// confirmation beyond the HTTP status.
type WhatsAppClient struct {
	phone      string
	baseURL    string
	httpClient *http.Client
}

type WhatsAppOption func(*WhatsAppClient)

func WithHTTPClient(c *http.Client) WhatsAppOption {
	return func(cl *WhatsAppClient) {
		cl.httpClient = c
	}
}

func WithBaseURL(u string) WhatsAppOption {
	return func(cl *WhatsAppClient) {
		cl.baseURL = u
	}
}

func NewWhatsAppClient(phone string, opts ...WhatsAppOption) *WhatsAppClient {
	c := &WhatsAppClient{
		phone:      phone,
		baseURL:    defaultWhatsAppBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if a destination phone number is set.
func (c *WhatsAppClient) Configured() bool {
	return c.phone != ""
}

// OrderCreated dispatches the new-order alert for the given order.
func (c *WhatsAppClient) OrderCreated(o model.Order) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp client not configured: missing phone number")
	}

	link := fmt.Sprintf("%s/%s?text=%s", c.baseURL, c.phone, url.QueryEscape(orderAlertText(o)))

	resp, err := c.httpClient.Get(link)
	if err != nil {
		return fmt.Errorf("open whatsapp link: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("whatsapp link returned %d", resp.StatusCode)
	}
	return nil
}

func orderAlertText(o model.Order) string {
	table := o.TableNumber
	if table == "" {
		table = "Not specified"
	}
	return fmt.Sprintf(
		"New Order Alert!\n\nOrder ID: %s\nAmount: ₹%.0f\nTable: %s\nPhone: %s\n\nPlease check the admin dashboard for details.",
		o.ID, o.Total, table, o.CustomerPhone,
	)
}
