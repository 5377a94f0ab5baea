package service

import "context"

// DriveServiceInterface defines the contract for archiving generated quote
// PDFs to the shared sales folder
type DriveServiceInterface interface {
	UploadQuotePDF(ctx context.Context, fileName string, pdf []byte) (string, error)
}
