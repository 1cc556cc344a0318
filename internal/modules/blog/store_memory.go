package blog

import (
	"context"
	"sync"
	"time"

	"github.com/nabeelsyed11/Kimia/internal/models"
)

// MemoryStore keeps posts in an in-process slice, in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.BlogPost
}

func NewMemoryStore(seed ...models.BlogPost) *MemoryStore {
	s := &MemoryStore{items: make([]models.BlogPost, 0, len(seed))}
	s.items = append(s.items, seed...)
	return s
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogPost, 0, len(s.items))
	for i := range s.items {
		if f.Matches(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.BlogPost, error) {
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

func (s *MemoryStore) Create(_ context.Context, p *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *p)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id string, patch *UpdateBlogPostDTO) (*models.BlogPost, error) {
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

// DemoSeed returns the demo post served when no database is configured.
func DemoSeed() []models.BlogPost {
	return []models.BlogPost{
		{
			Base: models.Base{
				ID:        "1",
				CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			},
			Title:     "First-Time Home Buyer's Guide",
			Content:   "Buying your first home is an exciting milestone, but it can also be overwhelming. Here's a comprehensive guide to help you navigate the process...",
			Excerpt:   "Everything you need to know about buying your first home",
			Category:  "guides",
			Author:    models.DefaultBlogAuthor,
			Image:     "https://images.unsplash.com/photo-1560518883-ce09059eeffa",
			Published: true,
		},
	}
}
