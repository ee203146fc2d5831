package services

import (
	"time"

	"captura/internal/domain"
)

// Sample content served when the backing store is empty or unreachable,
// so the site never renders blank sections.

func sampleCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Renovations", Slug: "reformas", Description: "Apartment renovation tips"},
		{ID: "2", Name: "Materials", Slug: "materiais", Description: "How to pick the best materials"},
		{ID: "3", Name: "Planning", Slug: "planejamento", Description: "Organize your renovation"},
	}
}

func samplePosts() []domain.Post {
	now := time.Now().UTC()
	categories := sampleCategories()
	author := domain.Author{ID: "1", Name: "Robson Cleyton"}

	return []domain.Post{
		{
			ID:      "1",
			Slug:    "como-planejar-reforma-apartamento",
			Title:   "How to Plan an Apartment Renovation from Scratch",
			Excerpt: "The complete step-by-step guide to planning your renovation without headaches and within budget.",
			Content: "<p>Planning an apartment renovation can feel daunting, but with the right guidance you can keep everything organized...</p><h2>1. Set your budget</h2><p>The first step is knowing how much you can spend...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
			Category:      categories[2],
			Author:        author,
			Tags: []domain.Tag{
				{ID: "1", Name: "planning", Slug: "planejamento"},
				{ID: "2", Name: "budget", Slug: "orcamento"},
			},
			PublishedAt:        now,
			CreatedAt:          now,
			UpdatedAt:          now,
			IsFeatured:         true,
			ReadingTimeMinutes: 8,
		},
		{
			ID:      "2",
			Slug:    "melhores-materiais-para-banheiro",
			Title:   "The Best Materials for a Bathroom Renovation",
			Excerpt: "Learn to choose tiles, fittings, and fixtures that combine quality and fair pricing.",
			Content: "<p>Choosing the right materials makes all the difference in the final result of your bathroom renovation...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=800",
			Category:      categories[1],
			Author:        author,
			Tags: []domain.Tag{
				{ID: "3", Name: "bathroom", Slug: "banheiro"},
				{ID: "4", Name: "materials", Slug: "materiais"},
			},
			PublishedAt:        now,
			CreatedAt:          now,
			UpdatedAt:          now,
			IsFeatured:         true,
			ReadingTimeMinutes: 6,
		},
		{
			ID:      "3",
			Slug:    "erros-comuns-em-reformas",
			Title:   "10 Common Renovation Mistakes and How to Avoid Them",
			Excerpt: "Know the main mistakes people make when renovating and learn how not to repeat them.",
			Content: "<p>Renovating an apartment involves many decisions and it is normal to make mistakes along the way...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1581858726788-75bc0f6a952d?w=800",
			Category:      categories[0],
			Author:        author,
			Tags: []domain.Tag{
				{ID: "5", Name: "tips", Slug: "dicas"},
				{ID: "6", Name: "mistakes", Slug: "erros"},
			},
			PublishedAt:        now,
			CreatedAt:          now,
			UpdatedAt:          now,
			IsFeatured:         false,
			ReadingTimeMinutes: 10,
		},
	}
}
