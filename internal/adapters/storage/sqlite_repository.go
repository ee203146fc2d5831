package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// SQLiteRepository implements ports.LeadStore and ports.ContentStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.LeadStore    = (*SQLiteRepository)(nil)
	_ ports.ContentStore = (*SQLiteRepository)(nil)
)

// gormLogger wraps the captura logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CAPTURA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(
		&LeadModel{},
		&PostModel{},
		&CategoryModel{},
		&CommentModel{},
		&TenantThemeModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Upsert implements ports.LeadWriter.Upsert.
//
// The merge runs as one conditional INSERT ... ON CONFLICT statement so two
// near-simultaneous writes for the same session cannot interleave:
//   - each field keeps the incoming value only when it is non-empty
//   - status is last-write-wins unless the row is already completed
//   - source is written on insert only
func (r *SQLiteRepository) Upsert(ctx context.Context, up ports.LeadUpsert) (*domain.Lead, error) {
	if up.SessionID == "" {
		return nil, &domain.PersistenceError{Op: "lead upsert", Err: errors.New("empty session id")}
	}

	now := time.Now().UTC()
	model := LeadModel{
		SessionID:    up.SessionID,
		FullName:     up.Fields.FullName,
		ContactPhone: up.Fields.ContactPhone,
		Email:        up.Fields.Email,
		Status:       string(up.Status),
		Source:       up.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"full_name":     gorm.Expr("CASE WHEN excluded.full_name <> '' THEN excluded.full_name ELSE full_name END"),
				"contact_phone": gorm.Expr("CASE WHEN excluded.contact_phone <> '' THEN excluded.contact_phone ELSE contact_phone END"),
				"email":         gorm.Expr("CASE WHEN excluded.email <> '' THEN excluded.email ELSE email END"),
				"status":        gorm.Expr("CASE WHEN status = 'completed' THEN status ELSE excluded.status END"),
				"updated_at":    now,
			}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "lead upsert", Err: err}
	}

	// Read back the merged row; the model in hand only reflects the insert
	var merged LeadModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", up.SessionID).First(&merged).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "lead upsert readback", Err: err}
	}

	lead := leadModelToDomain(merged)
	return &lead, nil
}

// Get implements ports.LeadReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, sessionID string) (*domain.Lead, error) {
	var model LeadModel
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, &domain.PersistenceError{Op: "lead get", Err: err}
	}

	lead := leadModelToDomain(model)
	return &lead, nil
}

// List implements ports.LeadReader.List
func (r *SQLiteRepository) List(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	var models []LeadModel
	query := r.db.WithContext(ctx).Order("updated_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "lead list", Err: err}
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, leadModelToDomain(m))
	}
	return leads, nil
}

// Recent implements ports.PostReader.Recent
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]domain.Post, error) {
	var models []PostModel
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, &domain.PersistenceError{Op: "post list", Err: err}
	}
	return r.attachCategories(ctx, models)
}

// BySlug implements ports.PostReader.BySlug
func (r *SQLiteRepository) BySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var model PostModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, &domain.PersistenceError{Op: "post get", Err: err}
	}

	posts, err := r.attachCategories(ctx, []PostModel{model})
	if err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// Related implements ports.PostReader.Related
func (r *SQLiteRepository) Related(ctx context.Context, postID, categoryID string, limit int) ([]domain.Post, error) {
	var models []PostModel
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, postID).
		Order("published_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, &domain.PersistenceError{Op: "related posts", Err: err}
	}
	return r.attachCategories(ctx, models)
}

// Categories implements ports.CategoryReader.Categories
func (r *SQLiteRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "category list", Err: err}
	}

	categories := make([]domain.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, categoryModelToDomain(m))
	}
	return categories, nil
}

// AddComment implements ports.CommentRepository.AddComment
func (r *SQLiteRepository) AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	model := CommentModel{
		ID:         comment.ID,
		PostSlug:   comment.PostSlug,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  time.Now().UTC(),
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "comment create", Err: err}
	}

	created := commentModelToDomain(model)
	return &created, nil
}

// CommentsForPost implements ports.CommentRepository.CommentsForPost
func (r *SQLiteRepository) CommentsForPost(ctx context.Context, postSlug string) ([]domain.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("post_slug = ?", postSlug).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, &domain.PersistenceError{Op: "comment list", Err: err}
	}

	comments := make([]domain.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, commentModelToDomain(m))
	}
	return comments, nil
}

// Theme implements ports.TenantReader.Theme
func (r *SQLiteRepository) Theme(ctx context.Context, tenantID string) (*domain.TenantTheme, error) {
	var model TenantThemeModel
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, &domain.PersistenceError{Op: "theme get", Err: err}
	}

	theme := themeModelToDomain(model)
	return &theme, nil
}

// attachCategories resolves the category rows referenced by posts
func (r *SQLiteRepository) attachCategories(ctx context.Context, models []PostModel) ([]domain.Post, error) {
	ids := make([]string, 0, len(models))
	for _, m := range models {
		if m.CategoryID != "" {
			ids = append(ids, m.CategoryID)
		}
	}

	byID := make(map[string]CategoryModel, len(ids))
	if len(ids) > 0 {
		var categories []CategoryModel
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
			return nil, &domain.PersistenceError{Op: "category lookup", Err: err}
		}
		for _, c := range categories {
			byID[c.ID] = c
		}
	}

	posts := make([]domain.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, postModelToDomain(m, byID[m.CategoryID]))
	}
	return posts, nil
}

// withRetry retries transient sqlite busy/locked failures with backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
