package domain

import "time"

// Category groups blog posts by subject
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Author is a post author
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tag labels a post
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Post is a published blog article
type Post struct {
	ID                 string    `json:"id"`
	Slug               string    `json:"slug"`
	Title              string    `json:"title"`
	Excerpt            string    `json:"excerpt"`
	Content            string    `json:"content"`
	FeaturedImage      string    `json:"featured_image,omitempty"`
	Category           Category  `json:"category"`
	Author             Author    `json:"author"`
	Tags               []Tag     `json:"tags,omitempty"`
	PublishedAt        time.Time `json:"published_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	IsFeatured         bool      `json:"is_featured"`
	ReadingTimeMinutes int       `json:"reading_time_minutes"`
}

// Comment is a reader comment on a post
type Comment struct {
	ID         string    `json:"id"`
	PostSlug   string    `json:"post_slug"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
