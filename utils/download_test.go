package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://example.com/assets/icon.png")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}
}

func TestUtils_ShouldRejectNonUrlSources(t *testing.T) {
	for _, src := range []string{"icon.png", "./assets/icon.png", "-"} {
		if IsValidUrl(src) {
			t.Errorf("%q should not be treated as an URL", src)
		}
	}
}

func TestUtils_ShouldDetectPngContentType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create the sample image: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("could not encode the sample image: %v", err)
	}
	f.Close()

	ctype, err := DetectContentType(path)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}
	if !strings.Contains(ctype, "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ctype)
	}
}
