package blog

import (
	"context"

	"github.com/nabeelsyed11/Kimia/internal/models"
)

// Filter selects posts for a listing. Category is an exact match; when
// PublishedOnly is set, drafts are excluded before the category filter runs.
type Filter struct {
	Category      string
	PublishedOnly bool
}

// Matches reports whether p satisfies the filter.
func (f Filter) Matches(p *models.BlogPost) bool {
	if f.PublishedOnly && !p.Published {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

// Store is the persistence contract for blog posts, mirroring the property
// store contract. List order is insertion order; no sort is applied.
type Store interface {
	List(ctx context.Context, f Filter) ([]models.BlogPost, error)
	// Get returns (nil, nil) when the id is unknown.
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, p *models.BlogPost) error
	// Update applies the supplied fields and returns the updated entity,
	// or (nil, nil) when the id is unknown.
	Update(ctx context.Context, id string, patch *UpdateBlogPostDTO) (*models.BlogPost, error)
	// Delete reports whether an entity was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
