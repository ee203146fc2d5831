package storage

import "time"

// LeadModel is the GORM model for the capture session table
type LeadModel struct {
	ContactPhone string    `gorm:"column:contact_phone;not null;default:''"`
	CreatedAt    time.Time
	Email        string    `gorm:"column:email;not null;default:''"`
	FullName     string    `gorm:"column:full_name;not null;default:''"`
	SessionID    string    `gorm:"column:session_id;primaryKey"`
	Source       string    `gorm:"column:source;not null;default:''"`
	Status       string    `gorm:"column:status;not null;default:'partial';check:status IN ('partial','abandoned','completed')"`
	UpdatedAt    time.Time `gorm:"index:idx_leads_updated"`
}

// TableName specifies the table name for GORM
func (LeadModel) TableName() string { return "leads_captura" }

// PostModel is the GORM model for blog posts
type PostModel struct {
	AuthorID           string `gorm:"default:''"`
	AuthorName         string `gorm:"default:''"`
	CategoryID         string `gorm:"index:idx_posts_category;default:''"`
	Content            string `gorm:"default:''"`
	CreatedAt          time.Time
	Excerpt            string `gorm:"default:''"`
	FeaturedImage      string `gorm:"default:''"`
	ID                 string `gorm:"primaryKey"`
	IsFeatured         bool   `gorm:"not null;default:false"`
	PublishedAt        time.Time `gorm:"index:idx_posts_published"`
	ReadingTimeMinutes int    `gorm:"not null;default:5"`
	Slug               string `gorm:"uniqueIndex:idx_posts_slug;not null"`
	Tags               string `gorm:"default:''"` // comma-separated slugs
	Title              string `gorm:"not null;default:''"`
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string { return "posts" }

// CategoryModel is the GORM model for blog categories
type CategoryModel struct {
	CreatedAt   time.Time
	Description string `gorm:"default:''"`
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null;default:''"`
	Slug        string `gorm:"uniqueIndex:idx_categories_slug;not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string { return "categories" }

// CommentModel is the GORM model for reader comments
type CommentModel struct {
	AuthorName string `gorm:"not null;default:''"`
	Content    string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	ID         string `gorm:"primaryKey"`
	PostSlug   string `gorm:"index:idx_comments_post;not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string { return "comments" }

// TenantThemeModel is the GORM model for per-tenant themes
type TenantThemeModel struct {
	BackgroundColor    string `gorm:"default:''"`
	CreatedAt          time.Time
	FontBody           string `gorm:"default:''"`
	FontLogo           string `gorm:"default:''"`
	LogoText           string `gorm:"default:''"`
	PrimaryColor       string `gorm:"default:''"`
	PrimaryHoverColor  string `gorm:"default:''"`
	SecondaryColor     string `gorm:"default:''"`
	SiteDescription    string `gorm:"default:''"`
	SiteName           string `gorm:"default:''"`
	TenantID           string `gorm:"column:tenant_id;primaryKey"`
	TextColor          string `gorm:"default:''"`
	TextSecondaryColor string `gorm:"default:''"`
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (TenantThemeModel) TableName() string { return "tenant_themes" }
