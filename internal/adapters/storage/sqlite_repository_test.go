package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captura/internal/domain"
	"captura/internal/ports"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "captura.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestUpsert_CreatesRecordOnFirstWrite(t *testing.T) {
	repo := newTestRepository(t)

	lead, err := repo.Upsert(context.Background(), ports.LeadUpsert{
		SessionID: "rp_test_aaa111",
		Fields:    domain.LeadFields{FullName: "Joao"},
		Status:    domain.StatusPartial,
		Source:    "reforma-pro",
	})

	require.NoError(t, err)
	assert.Equal(t, "rp_test_aaa111", lead.SessionID)
	assert.Equal(t, "Joao", lead.FullName)
	assert.Equal(t, domain.StatusPartial, lead.Status)
	assert.Equal(t, "reforma-pro", lead.Source)
	assert.False(t, lead.UpdatedAt.IsZero())
}

func TestUpsert_LastNonEmptyValueWins(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_bbb222"

	writes := []ports.LeadUpsert{
		{SessionID: sessionID, Fields: domain.LeadFields{FullName: "Maria"}, Status: domain.StatusPartial},
		{SessionID: sessionID, Fields: domain.LeadFields{Email: "m@x.com"}, Status: domain.StatusPartial},
		{SessionID: sessionID, Fields: domain.LeadFields{FullName: "Maria Silva", ContactPhone: "119999"}, Status: domain.StatusPartial},
	}
	for _, w := range writes {
		_, err := repo.Upsert(ctx, w)
		require.NoError(t, err)
	}

	lead, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", lead.FullName, "last non-empty name should win")
	assert.Equal(t, "m@x.com", lead.Email, "email from the middle write should survive")
	assert.Equal(t, "119999", lead.ContactPhone)
}

func TestUpsert_EmptyValueNeverOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_ccc333"

	_, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{Email: "a@b.com"},
		Status:    domain.StatusPartial,
	})
	require.NoError(t, err)

	lead, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{FullName: "Ana Costa"},
		Status:    domain.StatusAbandoned,
	})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", lead.Email, "empty incoming email must not clear the stored value")
	assert.Equal(t, "Ana Costa", lead.FullName)
	assert.Equal(t, domain.StatusAbandoned, lead.Status)
}

func TestUpsert_StatusIsLastWriteWins(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_ddd444"

	for _, status := range []domain.LeadStatus{domain.StatusPartial, domain.StatusAbandoned, domain.StatusPartial} {
		lead, err := repo.Upsert(ctx, ports.LeadUpsert{
			SessionID: sessionID,
			Fields:    domain.LeadFields{FullName: "Joao Souza"},
			Status:    status,
		})
		require.NoError(t, err)
		assert.Equal(t, status, lead.Status)
	}
}

func TestUpsert_CompletedStatusIsSticky(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_eee555"

	_, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{FullName: "Maria Silva", Email: "m@x.com"},
		Status:    domain.StatusCompleted,
	})
	require.NoError(t, err)

	// A stale abandoned write delivered after completion must not downgrade
	// the status, but its field values still merge forward
	lead, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{ContactPhone: "119999"},
		Status:    domain.StatusAbandoned,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, lead.Status)
	assert.Equal(t, "119999", lead.ContactPhone)
	assert.Equal(t, "m@x.com", lead.Email)
}

func TestUpsert_SourceSetOnceNeverOverwritten(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_fff666"

	_, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{FullName: "Joao"},
		Status:    domain.StatusPartial,
		Source:    "reforma-pro",
	})
	require.NoError(t, err)

	lead, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{FullName: "Joao Souza"},
		Status:    domain.StatusCompleted,
		Source:    "other-funnel",
	})
	require.NoError(t, err)

	assert.Equal(t, "reforma-pro", lead.Source)
}

func TestUpsert_RefreshesUpdatedAt(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	sessionID := "rp_test_ggg777"

	first, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{FullName: "Joao"},
		Status:    domain.StatusPartial,
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second, err := repo.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    domain.LeadFields{Email: "j@x.com"},
		Status:    domain.StatusPartial,
	})
	require.NoError(t, err)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updated_at should advance on every write")
}

func TestUpsert_RejectsEmptySessionID(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Upsert(context.Background(), ports.LeadUpsert{
		Fields: domain.LeadFields{FullName: "Joao"},
		Status: domain.StatusPartial,
	})

	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
}

func TestGet_ReturnsNotFoundForUnknownSession(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "rp_missing_000000")

	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestList_FiltersByStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []ports.LeadUpsert{
		{SessionID: "rp_a_111111", Fields: domain.LeadFields{FullName: "A B"}, Status: domain.StatusPartial},
		{SessionID: "rp_b_222222", Fields: domain.LeadFields{FullName: "C D"}, Status: domain.StatusAbandoned},
		{SessionID: "rp_c_333333", Fields: domain.LeadFields{FullName: "E F", Email: "e@f.com"}, Status: domain.StatusCompleted},
	}
	for _, w := range seed {
		_, err := repo.Upsert(ctx, w)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	abandoned, err := repo.List(ctx, domain.StatusAbandoned)
	require.NoError(t, err)
	require.Len(t, abandoned, 1)
	assert.Equal(t, "rp_b_222222", abandoned[0].SessionID)
}

func TestComments_AddAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.AddComment(ctx, domain.Comment{
		PostSlug:   "how-to-plan-a-renovation",
		AuthorName: "Ana",
		Content:    "Great tips!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "comment id should be generated")

	comments, err := repo.CommentsForPost(ctx, "how-to-plan-a-renovation")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ana", comments[0].AuthorName)
}

func TestTheme_NotFoundForUnknownTenant(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Theme(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrThemeNotFound)
}

func TestBySlug_NotFoundForUnknownPost(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.BySlug(context.Background(), "missing-post")

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
