// server/internal/webhook/notifier.go
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"taller-api-server/internal/models"
)

// Notifier forwards notifications to an external automation endpoint
// (e.g. an n8n flow that emails or texts the client). Disabled when no
// URL is configured.
type Notifier struct {
	client *resty.Client
	url    string
}

func NewNotifier(url string) *Notifier {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &Notifier{client: client, url: url}
}

func (n *Notifier) Enabled() bool {
	return n.url != ""
}

// Forward posts the notification payload. Callers treat failures as
// best-effort; the in-app copy is the source of truth.
func (n *Notifier) Forward(ctx context.Context, notif *models.Notification) error {
	if !n.Enabled() {
		return nil
	}
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notif).
		Post(n.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned %s", resp.Status())
	}
	return nil
}
