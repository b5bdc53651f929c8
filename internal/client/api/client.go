package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"go-registration-portal/internal/delivery/dto"
	"go-registration-portal/pkg/response"
)

// Client talks to the registration API. It is the transport half of the
// client form: lookups, multipart submission and photo retrieval.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var body dto.CitiesResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/cities", &body); err != nil {
		return nil, err
	}
	return body.Cities, nil
}

func (c *Client) Areas(ctx context.Context, city string) ([]string, error) {
	var body dto.AreasResponse
	endpoint := c.baseURL + "/api/areas?city=" + url.QueryEscape(city)
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return body.Areas, nil
}

func (c *Client) LatestProfilePhoto(ctx context.Context) (string, error) {
	var body dto.ProfilePhotoResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/profile-photo", &body); err != nil {
		return "", err
	}
	return body.ProfilePhotoURL, nil
}

// Register submits the form fields and the profile photo as a single
// multipart payload.
func (c *Client) Register(ctx context.Context, fields map[string]string, photoName string, photo io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	part, err := writer.CreateFormFile("ProfilePhoto", photoName)
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return fmt.Errorf("failed to copy photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/register", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body response.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			return fmt.Errorf("registration failed: %s", body.Message)
		}
		return fmt.Errorf("registration failed: status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request to %s failed: status %d", endpoint, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
