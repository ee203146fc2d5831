package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captura/internal/domain"
)

// fakeContentStore lets each read be primed with data or an error
type fakeContentStore struct {
	posts      []domain.Post
	categories []domain.Category
	comments   []domain.Comment
	readErr    error
}

func (f *fakeContentStore) Recent(_ context.Context, limit int) ([]domain.Post, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	if limit < len(f.posts) {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

func (f *fakeContentStore) BySlug(_ context.Context, slug string) (*domain.Post, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	for _, p := range f.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (f *fakeContentStore) Related(_ context.Context, postID, categoryID string, limit int) ([]domain.Post, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []domain.Post
	for _, p := range f.posts {
		if p.ID != postID && p.Category.ID == categoryID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeContentStore) Categories(_ context.Context) ([]domain.Category, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.categories, nil
}

func (f *fakeContentStore) AddComment(_ context.Context, comment domain.Comment) (*domain.Comment, error) {
	if f.readErr != nil {
		return nil, &domain.PersistenceError{Op: "comment create", Err: f.readErr}
	}
	comment.ID = "generated"
	f.comments = append(f.comments, comment)
	return &comment, nil
}

func (f *fakeContentStore) CommentsForPost(_ context.Context, postSlug string) ([]domain.Comment, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []domain.Comment
	for _, c := range f.comments {
		if c.PostSlug == postSlug {
			out = append(out, c)
		}
	}
	return out, nil
}

func newBlogService(store *fakeContentStore) *BlogService {
	return NewBlogService(store, store, store)
}

func TestRecentPosts_ServesStoreContent(t *testing.T) {
	store := &fakeContentStore{posts: []domain.Post{{ID: "10", Slug: "real-post"}}}
	service := newBlogService(store)

	posts, err := service.RecentPosts(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "real-post", posts[0].Slug)
}

func TestRecentPosts_FallsBackOnError(t *testing.T) {
	store := &fakeContentStore{readErr: errors.New("store down")}
	service := newBlogService(store)

	posts, err := service.RecentPosts(context.Background(), 2)

	require.NoError(t, err, "read failures are absorbed by the fallback")
	assert.Len(t, posts, 2)
}

func TestRecentPosts_FallsBackWhenEmpty(t *testing.T) {
	service := newBlogService(&fakeContentStore{})

	posts, err := service.RecentPosts(context.Background(), 9)

	require.NoError(t, err)
	assert.NotEmpty(t, posts)
}

func TestPostBySlug_FallsBackToSampleContent(t *testing.T) {
	store := &fakeContentStore{readErr: errors.New("store down")}
	service := newBlogService(store)

	post, err := service.PostBySlug(context.Background(), "erros-comuns-em-reformas")

	require.NoError(t, err)
	assert.Equal(t, "erros-comuns-em-reformas", post.Slug)
}

func TestPostBySlug_NotFoundWhenUnknownEverywhere(t *testing.T) {
	service := newBlogService(&fakeContentStore{})

	_, err := service.PostBySlug(context.Background(), "no-such-post")

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestCategories_FallsBackOnError(t *testing.T) {
	store := &fakeContentStore{readErr: errors.New("store down")}
	service := newBlogService(store)

	categories, err := service.Categories(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, categories)
}

func TestAddComment_RequiresAuthorAndContent(t *testing.T) {
	service := newBlogService(&fakeContentStore{})

	_, err := service.AddComment(context.Background(), domain.Comment{PostSlug: "p", Content: "hi"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = service.AddComment(context.Background(), domain.Comment{PostSlug: "p", AuthorName: "Ana"})
	require.ErrorAs(t, err, &verr)
}

func TestAddComment_StoresValidComment(t *testing.T) {
	store := &fakeContentStore{}
	service := newBlogService(store)

	created, err := service.AddComment(context.Background(), domain.Comment{
		PostSlug:   "real-post",
		AuthorName: "Ana",
		Content:    "Nice article",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestTenantConfig_DefaultTenantSkipsStore(t *testing.T) {
	service := NewTenantService(&fakeTenantReader{err: errors.New("must not be called")}, "default")

	config, err := service.Config(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "default", config.Theme.TenantID)
	assert.NotEmpty(t, config.MenuItems)
}

func TestTenantConfig_UsesStoredTheme(t *testing.T) {
	reader := &fakeTenantReader{theme: &domain.TenantTheme{TenantID: "acme", SiteName: "Acme Reformas"}}
	service := NewTenantService(reader, "acme")

	config, err := service.Config(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Acme Reformas", config.Theme.SiteName)
}

func TestTenantConfig_FallsBackOnLookupFailure(t *testing.T) {
	service := NewTenantService(&fakeTenantReader{err: domain.ErrThemeNotFound}, "acme")

	config, err := service.Config(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "default", config.Theme.TenantID)
}

type fakeTenantReader struct {
	theme *domain.TenantTheme
	err   error
}

func (f *fakeTenantReader) Theme(_ context.Context, _ string) (*domain.TenantTheme, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.theme, nil
}
