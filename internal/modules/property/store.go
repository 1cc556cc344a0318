package property

import (
	"context"
	"strings"

	"github.com/nabeelsyed11/Kimia/internal/models"
)

// Filter is the predicate set applied to listings. All supplied parts
// combine with logical AND; substring matches are case-insensitive.
type Filter struct {
	Search       string // matches title OR description OR location
	PropertyType string
	Location     string
	MinPrice     *float64 // inclusive
	MaxPrice     *float64 // inclusive
}

// Matches reports whether p satisfies every supplied predicate.
func (f Filter) Matches(p *models.Property) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			return false
		}
	}
	if f.PropertyType != "" && !strings.Contains(strings.ToLower(p.PropertyType), strings.ToLower(f.PropertyType)) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Store is the persistence contract for listings. Two implementations
// exist: a Mongo collection store and a seeded in-memory store. List order
// is the insertion order of the underlying collection; no sort is applied.
type Store interface {
	List(ctx context.Context, f Filter) ([]models.Property, error)
	// Get returns (nil, nil) when the id is unknown.
	Get(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	// Update applies the supplied fields and returns the updated entity,
	// or (nil, nil) when the id is unknown.
	Update(ctx context.Context, id string, patch *UpdatePropertyDTO) (*models.Property, error)
	// Delete reports whether an entity was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
