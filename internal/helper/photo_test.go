package helper

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestParseImageDataURI(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	data, contentType, err := ParseImageDataURI(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", contentType)
	}
	if len(data) != len(raw) {
		t.Fatalf("expected %d bytes, got %d", len(raw), len(data))
	}
}

func TestParseImageDataURINotDataURI(t *testing.T) {
	_, _, err := ParseImageDataURI("https://example.com/photo.jpg")
	if err != ErrNotDataURI {
		t.Fatalf("expected ErrNotDataURI, got %v", err)
	}
}

func TestParseImageDataURIRejectsNonImage(t *testing.T) {
	payload := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))
	if _, _, err := ParseImageDataURI(payload); err == nil {
		t.Fatal("expected error for non-image content type")
	}
}

func TestParseImageDataURIRejectsBadBase64(t *testing.T) {
	if _, _, err := ParseImageDataURI("data:image/png;base64,%%%"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestParseImageDataURIRejectsMissingComma(t *testing.T) {
	if _, _, err := ParseImageDataURI("data:image/png;base64"); err == nil {
		t.Fatal("expected error for missing separator")
	}
}

func TestGeneratePhotoObjectKey(t *testing.T) {
	key := GeneratePhotoObjectKey("photos/", "image/png")
	if !strings.HasPrefix(key, "photos/") {
		t.Fatalf("expected photos/ prefix, got %s", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("expected .png suffix, got %s", key)
	}

	other := GeneratePhotoObjectKey("photos/", "image/png")
	if key == other {
		t.Fatal("expected unique keys")
	}
}

func TestGeneratePhotoObjectKeyNoPrefix(t *testing.T) {
	key := GeneratePhotoObjectKey("", "image/jpeg")
	if strings.Contains(key, "/") {
		t.Fatalf("expected bare key, got %s", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %s", key)
	}
}
