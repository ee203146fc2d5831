package services

import (
	"context"
	"strings"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// BlogService reads published content for the marketing site. Every read
// falls back to seeded sample content when the store errors or is empty,
// so a broken backing store never blanks the site.
type BlogService struct {
	posts      ports.PostReader
	categories ports.CategoryReader
	comments   ports.CommentRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(posts ports.PostReader, categories ports.CategoryReader, comments ports.CommentRepository) *BlogService {
	return &BlogService{
		posts:      posts,
		categories: categories,
		comments:   comments,
	}
}

// RecentPosts returns the most recently published posts
func (s *BlogService) RecentPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 9
	}

	posts, err := s.posts.Recent(ctx, limit)
	if err != nil || len(posts) == 0 {
		if err != nil {
			logging.Logger.Warn("Post read failed, serving sample content", "error", err)
		}
		sample := samplePosts()
		if limit < len(sample) {
			sample = sample[:limit]
		}
		return sample, nil
	}
	return posts, nil
}

// PostBySlug returns one post, falling back to sample content
func (s *BlogService) PostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.BySlug(ctx, slug)
	if err == nil {
		return post, nil
	}

	for _, p := range samplePosts() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// RelatedPosts returns posts from the same category, excluding the post itself
func (s *BlogService) RelatedPosts(ctx context.Context, postID, categoryID string, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 3
	}

	posts, err := s.posts.Related(ctx, postID, categoryID, limit)
	if err != nil || len(posts) == 0 {
		if err != nil {
			logging.Logger.Warn("Related posts read failed, serving sample content", "error", err)
		}
		var related []domain.Post
		for _, p := range samplePosts() {
			if p.ID != postID && len(related) < limit {
				related = append(related, p)
			}
		}
		return related, nil
	}
	return posts, nil
}

// Categories returns all blog categories
func (s *BlogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.Categories(ctx)
	if err != nil || len(categories) == 0 {
		if err != nil {
			logging.Logger.Warn("Category read failed, serving sample content", "error", err)
		}
		return sampleCategories(), nil
	}
	return categories, nil
}

// AddComment validates and stores one reader comment
func (s *BlogService) AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	if strings.TrimSpace(comment.AuthorName) == "" {
		return nil, &domain.ValidationError{Message: "Please provide your name."}
	}
	if strings.TrimSpace(comment.Content) == "" {
		return nil, &domain.ValidationError{Message: "Comment text is required."}
	}
	return s.comments.AddComment(ctx, comment)
}

// CommentsForPost returns all comments on a post, oldest first
func (s *BlogService) CommentsForPost(ctx context.Context, postSlug string) ([]domain.Comment, error) {
	return s.comments.CommentsForPost(ctx, postSlug)
}
