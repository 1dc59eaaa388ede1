package model

import "time"

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether status is one of the known article statuses.
func ValidStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished || status == StatusArchived
}

// Article represents a blog/news entry managed through the admin panel.
type Article struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Content       string     `json:"content" gorm:"type:longtext;not null"`
	Excerpt       string     `json:"excerpt" gorm:"type:text"`
	FeaturedImage string     `json:"featured_image" gorm:"size:1000"`
	Status        string     `json:"status" gorm:"size:20;default:'draft';index"`
	AuthorID      uint       `json:"author_id" gorm:"not null;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at" gorm:"index"`
	Views         uint       `json:"views" gorm:"default:0"`
}

// ArticleWithAuthor joins author display fields onto an article row.
// Author fields are nullable: the author may have been deleted.
type ArticleWithAuthor struct {
	Article
	AuthorName  *string `json:"author_name"`
	AuthorEmail *string `json:"author_email"`
}

// PublishedArticle is the trimmed projection served on the public news page.
type PublishedArticle struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	PublishedAt   *time.Time `json:"published_at"`
	Views         uint       `json:"views"`
	AuthorName    *string    `json:"author_name"`
}
