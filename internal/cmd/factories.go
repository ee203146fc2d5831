package cmd

import (
	adapterstorage "captura/internal/adapters/storage"
	"captura/internal/config"
	"captura/internal/logging"
	"captura/internal/ports"
	"captura/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BlogService    *services.BlogService
	CaptureService *services.CaptureService
	TenantService  *services.TenantService

	ListenAddr string

	// Internal - for cleanup only
	leadStore   ports.LeadStore
	contentRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired. Content
// always lives in the local sqlite file; leads move to Postgres when a
// DATABASE_URL is configured.
func NewContainer(settings *config.Settings) (*Container, error) {
	contentRepo, err := adapterstorage.NewSQLiteRepository(settings.ResolveDBPath())
	if err != nil {
		return nil, err
	}

	var leadStore ports.LeadStore = contentRepo
	if dsn := settings.ResolveDatabaseURL(); dsn != "" {
		pgStore, err := adapterstorage.NewPostgresLeadStore(dsn)
		if err != nil {
			contentRepo.Close()
			return nil, err
		}
		leadStore = pgStore
		logging.Logger.Info("Lead store backed by Postgres")
	}

	return &Container{
		BlogService:    services.NewBlogService(contentRepo, contentRepo, contentRepo),
		CaptureService: services.NewCaptureService(leadStore, settings.ResolveSourceTag()),
		TenantService:  services.NewTenantService(contentRepo, settings.ResolveTenantID()),
		ListenAddr:     settings.ResolveListenAddr(),
		leadStore:      leadStore,
		contentRepo:    contentRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var firstErr error
	if c.leadStore != nil {
		if err := c.leadStore.Close(); err != nil {
			firstErr = err
		}
	}
	if c.contentRepo != nil && ports.LeadStore(c.contentRepo) != c.leadStore {
		if err := c.contentRepo.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
