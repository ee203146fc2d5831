package services

import (
	"context"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// TenantService resolves the per-tenant presentation bundle, falling back
// to the hardcoded default when no tenant row exists.
type TenantService struct {
	tenants  ports.TenantReader
	tenantID string
}

// NewTenantService creates a new TenantService bound to the active tenant
func NewTenantService(tenants ports.TenantReader, tenantID string) *TenantService {
	if tenantID == "" {
		tenantID = "default"
	}
	return &TenantService{
		tenants:  tenants,
		tenantID: tenantID,
	}
}

// Config returns the tenant configuration for the active tenant
func (s *TenantService) Config(ctx context.Context) (*domain.TenantConfig, error) {
	config := domain.DefaultTenantConfig()

	if s.tenantID == "default" {
		return &config, nil
	}

	theme, err := s.tenants.Theme(ctx, s.tenantID)
	if err != nil {
		logging.Logger.Warn("Tenant theme lookup failed, using default",
			"tenant_id", s.tenantID,
			"error", err)
		return &config, nil
	}

	config.Theme = *theme
	config.Copyright = theme.SiteName + ". All rights reserved."
	return &config, nil
}
