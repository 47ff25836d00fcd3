package store

import (
	"strings"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

// Scheme is the URI scheme token for object-store locators.
const Scheme = "s3://"

// Locator addresses one object or one key prefix in the store. It is an
// immutable value type; equality is by (Bucket, Prefix), which makes it
// usable as a deduplication key.
type Locator struct {
	Bucket string
	Prefix string
}

// ParseLocator parses a canonical locator URI of the form
// s3://bucket/key-prefix. The key prefix may be empty, the bucket may not.
// URI() is the exact inverse for every accepted input.
func ParseLocator(uri string) (Locator, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return Locator{}, errors.Wrapf(errors.ErrFormat, "locator %q: expected %q scheme", uri, Scheme)
	}
	bucket, prefix, found := strings.Cut(strings.TrimPrefix(uri, Scheme), "/")
	if !found {
		return Locator{}, errors.Wrapf(errors.ErrFormat, "locator %q: missing key separator after bucket", uri)
	}
	if bucket == "" {
		return Locator{}, errors.Wrapf(errors.ErrFormat, "locator %q: empty bucket", uri)
	}
	return Locator{Bucket: bucket, Prefix: prefix}, nil
}

// URI returns the canonical string form of the locator.
func (l Locator) URI() string {
	return Scheme + l.Bucket + "/" + l.Prefix
}

// Filename returns the last path segment of the key prefix.
func (l Locator) Filename() string {
	segments := strings.Split(l.Prefix, "/")
	return segments[len(segments)-1]
}
