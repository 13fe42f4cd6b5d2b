package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

var UploadContexts = map[string]UploadConfig{
	"ticket_attachment": {
		AllowedMimeTypes: []string{
			"image/jpeg", "image/png", "image/jpg", "image/webp",
			"application/pdf",
			"text/plain; charset=utf-8",
		},
		MaxSizeMB:  20,
		PathPrefix: "tickets",
	},
	"rma_document": {
		AllowedMimeTypes: []string{
			"image/jpeg", "image/png", "image/jpg", "application/pdf",
		},
		MaxSizeMB:  20,
		PathPrefix: "rma",
	},
}
