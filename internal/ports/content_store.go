package ports

import (
	"context"

	"captura/internal/domain"
)

// PostReader reads published blog content
type PostReader interface {
	Recent(ctx context.Context, limit int) ([]domain.Post, error)
	BySlug(ctx context.Context, slug string) (*domain.Post, error)
	Related(ctx context.Context, postID, categoryID string, limit int) ([]domain.Post, error)
}

// CategoryReader reads blog categories
type CategoryReader interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CommentRepository creates and lists reader comments
type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	CommentsForPost(ctx context.Context, postSlug string) ([]domain.Comment, error)
}

// TenantReader resolves the per-tenant theme
type TenantReader interface {
	Theme(ctx context.Context, tenantID string) (*domain.TenantTheme, error)
}

// ContentStore is the composite boundary for the presentational
// collaborators (blog, comments, tenant theme). Single-record CRUD, no
// merge semantics.
type ContentStore interface {
	PostReader
	CategoryReader
	CommentRepository
	TenantReader
	Close() error
}
