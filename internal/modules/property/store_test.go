package property

import (
	"context"
	"testing"

	"github.com/nabeelsyed11/Kimia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestFilterMatches(t *testing.T) {
	condo := models.Property{
		Base:         models.Base{ID: "c1"},
		Title:        "Cozy Condo",
		Description:  "Bright two-bedroom near the waterfront.",
		Price:        500000,
		Location:     "Seattle, WA",
		PropertyType: "condo",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter matches everything", Filter{}, true},
		{"search hits title case-insensitively", Filter{Search: "cozy"}, true},
		{"search hits description", Filter{Search: "waterfront"}, true},
		{"search hits location", Filter{Search: "seattle"}, true},
		{"search miss", Filter{Search: "penthouse"}, false},
		{"type substring", Filter{PropertyType: "Condo"}, true},
		{"type miss", Filter{PropertyType: "villa"}, false},
		{"location substring", Filter{Location: "wa"}, true},
		{"min price inclusive", Filter{MinPrice: fptr(500000)}, true},
		{"min price excludes cheaper", Filter{MinPrice: fptr(500001)}, false},
		{"max price inclusive", Filter{MaxPrice: fptr(500000)}, true},
		{"max price excludes pricier", Filter{MaxPrice: fptr(499999)}, false},
		{
			"all predicates AND together",
			Filter{MinPrice: fptr(400000), MaxPrice: fptr(600000), PropertyType: "condo"},
			true,
		},
		{
			"one failing predicate fails the whole filter",
			Filter{MinPrice: fptr(400000), MaxPrice: fptr(600000), PropertyType: "villa"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&condo))
		})
	}
}

func TestMemoryStoreListPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore(DemoSeed()...)
	ctx := context.Background()

	third := models.Property{Base: models.NewBase(), Title: "Third", PropertyType: "house"}
	require.NoError(t, store.Create(ctx, &third))

	items, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, third.ID, items[2].ID)
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemoryStore(DemoSeed()...)

	p, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreUpdatePartial(t *testing.T) {
	store := NewMemoryStore(DemoSeed()...)
	ctx := context.Background()

	before, err := store.Get(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, before)

	price := 999000.0
	updated, err := store.Update(ctx, "1", &UpdatePropertyDTO{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 999000.0, updated.Price)
	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestMemoryStoreUpdateClearsListWithEmptyArray(t *testing.T) {
	store := NewMemoryStore(DemoSeed()...)

	updated, err := store.Update(context.Background(), "1", &UpdatePropertyDTO{Features: []string{}})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Empty(t, updated.Features)
	assert.NotEmpty(t, updated.Images)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(DemoSeed()...)
	ctx := context.Background()

	found, err := store.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, found)

	p, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, p)

	found, err = store.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, found)
}
