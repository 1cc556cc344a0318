package property

import (
	"context"
	"sync"
	"time"

	"github.com/nabeelsyed11/Kimia/internal/models"
)

// MemoryStore keeps listings in an in-process slice, in insertion order.
// It backs demo deployments without a database and the test suite.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.Property
}

func NewMemoryStore(seed ...models.Property) *MemoryStore {
	s := &MemoryStore{items: make([]models.Property, 0, len(seed))}
	s.items = append(s.items, seed...)
	return s
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, 0, len(s.items))
	for i := range s.items {
		if f.Matches(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) Create(_ context.Context, p *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *p)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id string, patch *UpdatePropertyDTO) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.apply(&s.items[i])
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// DemoSeed returns the demo listings served when no database is configured.
func DemoSeed() []models.Property {
	return []models.Property{
		{
			Base: models.Base{
				ID:        "1",
				CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			},
			Title:        "Luxury Modern Villa",
			Description:  "A stunning modern villa with panoramic views and premium amenities.",
			Price:        1250000,
			Location:     "Beverly Hills, CA",
			Bedrooms:     5,
			Bathrooms:    4,
			Area:         3500,
			PropertyType: "villa",
			Images:       []string{"https://images.unsplash.com/photo-1580587771525-78b9dba3b914"},
			Features:     []string{"Pool", "Garage", "Garden", "Fireplace"},
			Status:       models.PropertyStatusAvailable,
		},
		{
			Base: models.Base{
				ID:        "2",
				CreatedAt: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
			},
			Title:        "Contemporary Downtown Apartment",
			Description:  "Sleek apartment in the heart of downtown with city views.",
			Price:        750000,
			Location:     "Manhattan, NY",
			Bedrooms:     3,
			Bathrooms:    2,
			Area:         1800,
			PropertyType: "apartment",
			Images:       []string{"https://images.unsplash.com/photo-1613490493576-7fde63acd811"},
			Features:     []string{"City View", "Gym", "Concierge"},
			Status:       models.PropertyStatusAvailable,
		},
	}
}
