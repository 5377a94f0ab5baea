package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"trailercraft-co/models"
)

const (
	attachmentQuality = 80
	attachmentMaxDim  = 1600
)

// AttachmentService optimizes customer-uploaded inspiration photos and stores
// them on disk so they can ride along on the final quote submission.
type AttachmentService struct {
	dir string
}

// NewAttachmentService creates an AttachmentService storing files under dir
func NewAttachmentService(dir string) *AttachmentService {
	return &AttachmentService{dir: dir}
}

// EnsureDir ensures the attachment directory exists, creates it if it doesn't
func (s *AttachmentService) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return nil
}

// SaveAttachment optimizes an uploaded image and writes it under the session's
// directory. Returns the stored attachment metadata.
func (s *AttachmentService) SaveAttachment(sessionID, fileName string, imageData []byte) (*models.Attachment, error) {
	optimized, err := optimizeImage(imageData)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.dir, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	// Stored as JPEG regardless of the upload format
	base := fileName
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if base == "" {
		base = "attachment"
	}
	storedName := base + ".jpg"
	path := filepath.Join(dir, storedName)

	if err := os.WriteFile(path, optimized, 0644); err != nil {
		return nil, fmt.Errorf("failed to write attachment: %w", err)
	}

	log.Printf("✓ Attachment stored: %s (%d bytes)", path, len(optimized))
	return &models.Attachment{
		FileName: storedName,
		Path:     path,
		Size:     int64(len(optimized)),
	}, nil
}

// optimizeImage converts an uploaded image to JPEG and caps its dimensions
// imageData: raw image bytes (PNG, JPEG, etc.)
func optimizeImage(imageData []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > attachmentMaxDim || height > attachmentMaxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = attachmentMaxDim
			newHeight = int(float64(height) * float64(attachmentMaxDim) / float64(width))
		} else {
			newHeight = attachmentMaxDim
			newWidth = int(float64(width) * float64(attachmentMaxDim) / float64(height))
		}
		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: attachmentQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
