package store

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Copernicus Data Space Ecosystem eodata defaults.
// See https://documentation.dataspace.copernicus.eu/APIs/S3.html
const (
	DefaultEndpoint = "eodata.dataspace.copernicus.eu"
	DefaultRegion   = "default"
)

// Credentials holds the settings needed to open a store connection.
type Credentials struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// withDefaults fills in the eodata endpoint and region when unset.
func (c Credentials) withDefaults() Credentials {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
		c.UseSSL = true
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	return c
}

// Client implements Lister and Getter on top of a minio S3 client.
type Client struct {
	mc *minio.Client
}

// NewClient creates a store client from credentials. The connection is lazy;
// no network traffic happens until the first List or Get.
func NewClient(creds Credentials) (*Client, error) {
	creds = creds.withDefaults()
	mc, err := minio.New(creds.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(creds.AccessKey, creds.SecretKey, ""),
		Secure: creds.UseSSL,
		Region: creds.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}
	return &Client{mc: mc}, nil
}

// List returns every object whose key starts with the locator's prefix.
func (c *Client) List(ctx context.Context, prefix Locator) ([]ObjectInfo, error) {
	var infos []ObjectInfo
	for obj := range c.mc.ListObjects(ctx, prefix.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix.Prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix.URI(), obj.Err)
		}
		infos = append(infos, ObjectInfo{Bucket: prefix.Bucket, Key: obj.Key, Size: obj.Size})
	}
	return infos, nil
}

// Get streams the object addressed by the locator to w.
func (c *Client) Get(ctx context.Context, object Locator, w io.Writer) error {
	obj, err := c.mc.GetObject(ctx, object.Bucket, object.Prefix, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", object.URI(), err)
	}
	defer func() { _ = obj.Close() }()

	if _, err := io.Copy(w, obj); err != nil {
		return fmt.Errorf("failed to read %s: %w", object.URI(), err)
	}
	return nil
}
