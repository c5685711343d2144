package utils

import (
	"fmt"
	"strings"
)

const gcsURLPrefix = "https://storage.googleapis.com/"

// ExtractObjectPath turns a public storage URL back into the bucket-relative
// object path needed for deletes. Data URLs and foreign hosts are rejected so
// callers simply skip the delete.
func ExtractObjectPath(url string) (string, error) {
	if !strings.HasPrefix(url, gcsURLPrefix) {
		return "", fmt.Errorf("not a storage URL")
	}

	rest := strings.TrimPrefix(url, gcsURLPrefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("malformed storage URL")
	}
	return parts[1], nil
}
