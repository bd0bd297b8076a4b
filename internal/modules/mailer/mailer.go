// Package mailer is a thin client for the hosted mail function. Templates
// and delivery live behind that endpoint; this side only posts payloads.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Mailer struct {
	baseURL string
	client  *http.Client
}

// New creates a mailer posting to the given mail function base URL.
func New(baseURL string) *Mailer {
	return &Mailer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *Mailer) SendApplicationApproved(ctx context.Context, email, name, storeName, location string) error {
	return m.post(ctx, "/emails/application-approved", map[string]string{
		"email":      email,
		"name":       name,
		"store_name": storeName,
		"location":   location,
		"year":       fmt.Sprintf("%d", time.Now().Year()),
	})
}

func (m *Mailer) SendApplicationRejected(ctx context.Context, email, name, reason string) error {
	return m.post(ctx, "/emails/application-rejected", map[string]string{
		"email":  email,
		"name":   name,
		"reason": reason,
	})
}

func (m *Mailer) SendOrderStatusUpdate(ctx context.Context, email, orderID, status string) error {
	return m.post(ctx, "/emails/order-status", map[string]string{
		"email":    email,
		"order_id": orderID,
		"status":   status,
	})
}

func (m *Mailer) post(ctx context.Context, path string, payload map[string]string) error {
	if m.baseURL == "" {
		return fmt.Errorf("mail function URL is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail function returned %d: %s", resp.StatusCode, msg)
	}

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode mail response: %w", err)
	}
	if !result.Success {
		if result.Error == "" {
			result.Error = "mail function reported failure"
		}
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}
