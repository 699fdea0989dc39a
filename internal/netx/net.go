// Package netx holds small HTTP helpers shared by the client.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// UploadToPresignedURL PUTs the given bytes to a presigned object-storage URL.
func UploadToPresignedURL(ctx context.Context, url string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
