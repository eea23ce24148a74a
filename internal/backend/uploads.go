package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload is one file to push to the backend's image storage.
type Upload struct {
	FileName string
	Content  io.Reader
}

// UploadImages pushes product gallery images and returns their stored URLs.
func (c *Client) UploadImages(ctx context.Context, files []Upload) ([]string, error) {
	body, contentType, err := multipartBody("images", files)
	if err != nil {
		return nil, err
	}

	var resp struct {
		URLs []string `json:"urls"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload/images", body, contentType, &resp); err != nil {
		return nil, err
	}
	return resp.URLs, nil
}

// UploadHover pushes the hover image and returns its stored URL.
func (c *Client) UploadHover(ctx context.Context, file Upload) (string, error) {
	body, contentType, err := multipartBody("hover", []Upload{file})
	if err != nil {
		return "", err
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload/hover", body, contentType, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func multipartBody(field string, files []Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(field, file.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy upload %s: %w", file.FileName, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
