package main

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".webp", ".tga"}

func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage decodes any registered image format.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return img, nil
}

// ListImages returns the images in dir, sorted, skipping companion overlays.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list images %s", dir)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isImage(e.Name()) || isCompanion(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func isCompanion(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, DetectionSuffix) || strings.HasSuffix(stem, DepthSuffix)
}

// CompanionPath finds "<stem><suffix>.<ext>" next to path in any supported
// format, preferring the source's own extension. It returns "" if none exists.
func CompanionPath(path, suffix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	candidates := append([]string{ext}, imageExts...)
	for _, e := range candidates {
		p := stem + suffix + e
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// SaveScreenshot writes img as WebP when the name ends in .webp, PNG otherwise.
func SaveScreenshot(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(filename), ".webp") {
		err = nativewebp.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	return errors.Wrapf(err, "encode %s", filename)
}
