package models

import "time"

type NewsItem struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Author      string    `bson:"author" json:"author"`
	PublishDate time.Time `bson:"publish_date" json:"publishDate"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Category    string    `bson:"category" json:"category"`
}
