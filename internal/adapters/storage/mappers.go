package storage

import (
	"strings"

	"captura/internal/domain"
)

// leadModelToDomain converts a LeadModel (GORM) to domain.Lead
func leadModelToDomain(m LeadModel) domain.Lead {
	return domain.Lead{
		SessionID: m.SessionID,
		LeadFields: domain.LeadFields{
			FullName:     m.FullName,
			ContactPhone: m.ContactPhone,
			Email:        m.Email,
		},
		Status:    domain.LeadStatus(m.Status),
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// postModelToDomain converts a PostModel plus its category to domain.Post
func postModelToDomain(m PostModel, category CategoryModel) domain.Post {
	return domain.Post{
		ID:            m.ID,
		Slug:          m.Slug,
		Title:         m.Title,
		Excerpt:       m.Excerpt,
		Content:       m.Content,
		FeaturedImage: m.FeaturedImage,
		Category:      categoryModelToDomain(category),
		Author: domain.Author{
			ID:   m.AuthorID,
			Name: m.AuthorName,
		},
		Tags:               parseTags(m.Tags),
		PublishedAt:        m.PublishedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		IsFeatured:         m.IsFeatured,
		ReadingTimeMinutes: m.ReadingTimeMinutes,
	}
}

func categoryModelToDomain(m CategoryModel) domain.Category {
	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
	}
}

func commentModelToDomain(m CommentModel) domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		PostSlug:   m.PostSlug,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func themeModelToDomain(m TenantThemeModel) domain.TenantTheme {
	return domain.TenantTheme{
		ID:                 m.TenantID,
		TenantID:           m.TenantID,
		LogoText:           m.LogoText,
		PrimaryColor:       m.PrimaryColor,
		PrimaryHoverColor:  m.PrimaryHoverColor,
		SecondaryColor:     m.SecondaryColor,
		TextColor:          m.TextColor,
		TextSecondaryColor: m.TextSecondaryColor,
		BackgroundColor:    m.BackgroundColor,
		FontLogo:           m.FontLogo,
		FontBody:           m.FontBody,
		SiteName:           m.SiteName,
		SiteDescription:    m.SiteDescription,
	}
}

// parseTags expands the comma-separated tag column into domain tags
func parseTags(raw string) []domain.Tag {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]domain.Tag, 0, len(parts))
	for _, p := range parts {
		slug := strings.TrimSpace(p)
		if slug == "" {
			continue
		}
		tags = append(tags, domain.Tag{
			ID:   slug,
			Name: strings.ReplaceAll(slug, "-", " "),
			Slug: slug,
		})
	}
	return tags
}
