// Package storage wraps the object store that holds student photos.
package storage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Client is a thin wrapper over an OSS bucket. A nil *Client means the
// object store is not configured; callers must treat uploads as
// unavailable rather than panic.
type Client struct {
	bucket    *oss.Bucket
	publicURL string
}

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewFromEnv builds a client from OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET and OSS_BUCKET. It returns (nil, nil) when the
// bucket is not configured, so photo upload degrades instead of failing
// startup.
func NewFromEnv() (*Client, error) {
	endpoint := getenv("OSS_ENDPOINT")
	keyID := getenv("OSS_ACCESS_KEY_ID")
	keySecret := getenv("OSS_ACCESS_KEY_SECRET")
	bucketName := getenv("OSS_BUCKET")
	if endpoint == "" || bucketName == "" {
		return nil, nil
	}

	cli, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", bucketName, err)
	}

	publicURL := getenv("OSS_PUBLIC_URL")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.%s", bucketName, endpoint)
	}
	return &Client{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// UploadPhoto stores the photo bytes under key and returns its public
// URL. Bytes are stored as received; no image processing happens here.
func (c *Client) UploadPhoto(key, contentType string, r io.Reader) (string, error) {
	if err := c.bucket.PutObject(key, r,
		oss.ContentType(contentType),
		oss.ObjectACL(oss.ACLPublicRead),
	); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return c.publicURL + "/" + key, nil
}
