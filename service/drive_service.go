package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations. Generated quote PDFs are
// uploaded to a shared folder the sales team works out of.
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath, folderID string) (*DriveService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadQuotePDF uploads a generated quote PDF to the shared folder and
// returns the Drive file ID
func (ds *DriveService) UploadQuotePDF(ctx context.Context, fileName string, pdf []byte) (string, error) {
	file := &drive.File{
		Name:     fileName,
		MimeType: "application/pdf",
	}
	if ds.folderID != "" {
		file.Parents = []string{ds.folderID}
	}

	created, err := ds.client.Files.Create(file).
		Context(ctx).
		Media(bytes.NewReader(pdf), googleapi.ContentType("application/pdf")).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload quote PDF: %w", err)
	}

	log.Printf("✅ UploadQuotePDF: Uploaded %s as Drive file %s", fileName, created.Id)
	return created.Id, nil
}
