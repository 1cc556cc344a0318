package property

import "github.com/nabeelsyed11/Kimia/internal/models"

// CreatePropertyDTO is the request body for creating a listing.
type CreatePropertyDTO struct {
	Title        string   `json:"title"         binding:"required"`
	Description  string   `json:"description"   binding:"required"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"      binding:"required"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         float64  `json:"area"`
	PropertyType string   `json:"property_type" binding:"required"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Status       string   `json:"status"`
}

func (dto *CreatePropertyDTO) toModel() models.Property {
	status := dto.Status
	if status == "" {
		status = models.PropertyStatusAvailable
	}
	images := dto.Images
	if images == nil {
		images = []string{}
	}
	features := dto.Features
	if features == nil {
		features = []string{}
	}
	return models.Property{
		Base:         models.NewBase(),
		Title:        dto.Title,
		Description:  dto.Description,
		Price:        dto.Price,
		Location:     dto.Location,
		Bedrooms:     dto.Bedrooms,
		Bathrooms:    dto.Bathrooms,
		Area:         dto.Area,
		PropertyType: dto.PropertyType,
		Images:       images,
		Features:     features,
		Status:       status,
	}
}

// UpdatePropertyDTO is the request body for a partial update. Every field is
// optional; absent fields (nil pointers, nil slices) leave the stored value
// untouched. Supplying an empty array clears a list field.
type UpdatePropertyDTO struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Location     *string  `json:"location"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Area         *float64 `json:"area"`
	PropertyType *string  `json:"property_type"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Status       *string  `json:"status"`
}

// apply copies the supplied fields onto p and advances its updated_at.
// ID and created_at are never written.
func (dto *UpdatePropertyDTO) apply(p *models.Property) {
	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Price != nil {
		p.Price = *dto.Price
	}
	if dto.Location != nil {
		p.Location = *dto.Location
	}
	if dto.Bedrooms != nil {
		p.Bedrooms = *dto.Bedrooms
	}
	if dto.Bathrooms != nil {
		p.Bathrooms = *dto.Bathrooms
	}
	if dto.Area != nil {
		p.Area = *dto.Area
	}
	if dto.PropertyType != nil {
		p.PropertyType = *dto.PropertyType
	}
	if dto.Images != nil {
		p.Images = dto.Images
	}
	if dto.Features != nil {
		p.Features = dto.Features
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	p.Touch()
}

// ListQuery holds the query params accepted by the public listing route.
type ListQuery struct {
	Search       string   `form:"search"`
	PropertyType string   `form:"property_type"`
	Location     string   `form:"location"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
}

func (q *ListQuery) toFilter() Filter {
	return Filter{
		Search:       q.Search,
		PropertyType: q.PropertyType,
		Location:     q.Location,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
	}
}
