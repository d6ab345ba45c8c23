package dto

// Request DTOs

type UploadRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type,omitempty" validate:"omitempty,max=100"`
	Folder      string `json:"folder,omitempty" validate:"omitempty,max=100"`
}

// Response DTOs

type UploadResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
