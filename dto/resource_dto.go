package dto

import "github.com/13132klain/ufa-backend/internal/models"

type ResourceRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Type        models.ResourceType `json:"type"`
	Category    string              `json:"category"`
	URL         string              `json:"url"`
	FileName    string              `json:"fileName,omitempty"`
	FileSize    int64               `json:"fileSize,omitempty"`
	MimeType    string              `json:"mimeType,omitempty"`
	UploadedBy  string              `json:"uploadedBy"`
}

type ResourceUpdate struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Type        *models.ResourceType `json:"type,omitempty"`
	Category    *string              `json:"category,omitempty"`
	URL         *string              `json:"url,omitempty"`
	FileName    *string              `json:"fileName,omitempty"`
	FileSize    *int64               `json:"fileSize,omitempty"`
	MimeType    *string              `json:"mimeType,omitempty"`
}
