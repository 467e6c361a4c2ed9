package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging for screener alerts. A client built
// without credentials is a no-op (IsEnabled reports false).
type Client struct {
	client *messaging.Client
}

// NewClient initializes FCM from a service-account credentials file. An
// empty path disables push notifications instead of failing.
func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	if credentialsPath == "" {
		log.Println("No Firebase credentials configured, push notifications disabled")
		return &Client{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting messaging client: %w", err)
	}

	log.Println("Firebase Cloud Messaging initialized")
	return &Client{client: client}, nil
}

// IsEnabled reports whether the client can send.
func (c *Client) IsEnabled() bool { return c.client != nil }

// SendMulticast pushes one alert to every registered device token.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if c.client == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "screener_alerts",
				Priority:  messaging.PriorityHigh,
			},
		},
	}

	resp, err := c.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("sending multicast: %w", err)
	}
	log.Printf("Sent %d notifications (%d failures)", resp.SuccessCount, resp.FailureCount)
	return nil
}
