package models

import "time"

type ResourceType string

const (
	ResourceDocument     ResourceType = "document"
	ResourceVideo        ResourceType = "video"
	ResourceImage        ResourceType = "image"
	ResourceSpreadsheet  ResourceType = "spreadsheet"
	ResourcePresentation ResourceType = "presentation"
	ResourceArticle      ResourceType = "article"
	ResourceReport       ResourceType = "report"
)

type Resource struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Type        ResourceType `bson:"type" json:"type"` // document, video, image, spreadsheet, presentation, article, report
	Category    string       `bson:"category" json:"category"`
	URL         string       `bson:"url" json:"url"`

	FileName string `bson:"file_name,omitempty" json:"fileName,omitempty"`
	FileSize int64  `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	MimeType string `bson:"mime_type,omitempty" json:"mimeType,omitempty"`

	PublishDate   time.Time `bson:"publish_date" json:"publishDate"`
	UploadedBy    string    `bson:"uploaded_by" json:"uploadedBy"`
	DownloadCount int       `bson:"download_count" json:"downloadCount"`
}
