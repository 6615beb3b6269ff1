package helper

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotDataURI = errors.New("payload is not a data URI")

// ParseImageDataURI decodes a "data:image/...;base64," payload into raw bytes
// and its declared content type. Payload size is not capped.
func ParseImageDataURI(payload string) ([]byte, string, error) {
	if !strings.HasPrefix(payload, "data:") {
		return nil, "", ErrNotDataURI
	}

	meta, encoded, found := strings.Cut(payload[len("data:"):], ",")
	if !found {
		return nil, "", errors.New("malformed data URI: missing comma separator")
	}

	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", errors.New("malformed data URI: only base64 encoding is supported")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("unsupported content type %q", contentType)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty image payload")
	}

	return data, contentType, nil
}

func IsDataURI(payload string) bool {
	return strings.HasPrefix(payload, "data:")
}

// GeneratePhotoObjectKey builds a unique object key under the given prefix,
// with an extension derived from the content type.
func GeneratePhotoObjectKey(prefix string, contentType string) string {
	ext := extensionForContentType(contentType)
	name := fmt.Sprintf("%d-%s%s", time.Now().UTC().UnixNano(), uuid.New().String(), ext)
	if prefix == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", strings.Trim(prefix, "/"), name)
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
