package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.requestJSON(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the access token with the user record.
// The caller decides whether to adopt the token via SetToken.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.requestJSON(ctx, http.MethodPost, "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the authenticated user's account record.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.requestJSON(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadDocument transfers a file as a multipart form and returns the
// created document record.
func (c *Client) UploadDocument(ctx context.Context, filename, contentType string, data []byte) (*Document, error) {
	var doc Document
	if err := c.requestMultipart(ctx, http.MethodPost, "/documents/upload", filename, contentType, data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments fetches every document record owned by the current user.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := c.requestJSON(ctx, http.MethodGet, "/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument fetches a single document record.
func (c *Client) GetDocument(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	if err := c.requestJSON(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document record and its stored file.
func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	return c.requestJSON(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", id), nil, nil)
}

// ProcessDocument asks the service to start analyzing a stored document.
func (c *Client) ProcessDocument(ctx context.Context, id int64) (*ProcessAck, error) {
	var ack ProcessAck
	if err := c.requestJSON(ctx, http.MethodPost, fmt.Sprintf("/process/%d", id), nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// ProcessingStatusFor fetches the processing state of a document.
func (c *Client) ProcessingStatusFor(ctx context.Context, id int64) (*StatusReport, error) {
	var report StatusReport
	if err := c.requestJSON(ctx, http.MethodGet, fmt.Sprintf("/process/%d/status", id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DocumentInsights fetches the structured analysis output of a processed document.
func (c *Client) DocumentInsights(ctx context.Context, id int64) (*Insights, error) {
	var insights Insights
	if err := c.requestJSON(ctx, http.MethodGet, fmt.Sprintf("/process/%d/insights", id), nil, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}
