package dto

import "time"

type NewsRequest struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Image       string     `json:"image,omitempty"`
	Category    string     `json:"category"`
}

type NewsUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Author      *string    `json:"author,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Category    *string    `json:"category,omitempty"`
}
