package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shashiranjanraj/rabbit/config"
)

// imageHostDisk forwards files to a Cloudinary-style HTTP upload endpoint and
// returns the URL the host assigns. Files are addressable only through that
// URL, so Delete is a no-op and URL echoes the path back.
type imageHostDisk struct {
	client    *resty.Client
	uploadURL string
	apiKey    string
	apiSecret string
}

func newImageHostDisk(cfg config.ImageHostConfig) *imageHostDisk {
	return &imageHostDisk{
		client:    resty.New().SetTimeout(30 * time.Second),
		uploadURL: cfg.UploadURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
	}
}

// uploadResult is the subset of the host's response we care about.
type uploadResult struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Message   string `json:"message"`
}

func (d *imageHostDisk) Put(ctx context.Context, filePath string, r io.Reader) (string, error) {
	folder, name := path.Split(filePath)

	resp, err := d.client.R().
		SetContext(ctx).
		SetFileReader("file", name, r).
		SetFormData(map[string]string{
			"folder":     path.Clean(folder),
			"api_key":    d.apiKey,
			"api_secret": d.apiSecret,
		}).
		Post(d.uploadURL)
	if err != nil {
		return "", fmt.Errorf("storage/imagehost: upload %s: %w", filePath, err)
	}

	var result uploadResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("storage/imagehost: decode response: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("storage/imagehost: upload rejected (%d): %s", resp.StatusCode(), result.Message)
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return "", fmt.Errorf("storage/imagehost: host returned no URL for %s", filePath)
	}
	return url, nil
}

func (d *imageHostDisk) Delete(context.Context, string) error { return nil }

func (d *imageHostDisk) URL(path string) string { return path }
