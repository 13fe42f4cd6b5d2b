package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"asset-console/config"
)

// ValidateFile checks a file's size and MIME type against the rules for the
// given upload context ("ticket_attachment", "rma_document", ...).
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("internal error: unknown upload context '%s'", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return fmt.Errorf("file size (%.2f MB) exceeds the %d MB limit", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	// Sniff the content instead of trusting the client-supplied type.
	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file")
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to process file")
	}

	mimeType := http.DetectContentType(buffer)

	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return fmt.Errorf("file format not allowed: %s", mimeType)
	}

	return nil
}
