package dto

type UploadResponse struct {
	ImageUrl string `json:"imageUrl"`
}

// StoredFile is a resolved upload on disk.
type StoredFile struct {
	Name     string
	Path     string
	MimeType string
}
