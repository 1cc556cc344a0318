package blog

import "github.com/nabeelsyed11/Kimia/internal/models"

// CreateBlogPostDTO is the request body for creating a post. Published
// defaults to true when absent; author defaults to the fixed site author.
type CreateBlogPostDTO struct {
	Title     string `json:"title"    binding:"required"`
	Content   string `json:"content"  binding:"required"`
	Excerpt   string `json:"excerpt"  binding:"required"`
	Category  string `json:"category" binding:"required"`
	Author    string `json:"author"`
	Image     string `json:"image"`
	Published *bool  `json:"published"`
}

func (dto *CreateBlogPostDTO) toModel() models.BlogPost {
	author := dto.Author
	if author == "" {
		author = models.DefaultBlogAuthor
	}
	published := true
	if dto.Published != nil {
		published = *dto.Published
	}
	return models.BlogPost{
		Base:      models.NewBase(),
		Title:     dto.Title,
		Content:   dto.Content,
		Excerpt:   dto.Excerpt,
		Category:  dto.Category,
		Author:    author,
		Image:     dto.Image,
		Published: published,
	}
}

// UpdateBlogPostDTO is the request body for a partial update; absent fields
// are no-ops.
type UpdateBlogPostDTO struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	Image     *string `json:"image"`
	Published *bool   `json:"published"`
}

// apply copies the supplied fields onto p and advances its updated_at.
func (dto *UpdateBlogPostDTO) apply(p *models.BlogPost) {
	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Content != nil {
		p.Content = *dto.Content
	}
	if dto.Excerpt != nil {
		p.Excerpt = *dto.Excerpt
	}
	if dto.Category != nil {
		p.Category = *dto.Category
	}
	if dto.Author != nil {
		p.Author = *dto.Author
	}
	if dto.Image != nil {
		p.Image = *dto.Image
	}
	if dto.Published != nil {
		p.Published = *dto.Published
	}
	p.Touch()
}

// postResponse is the single-post response shape: the stored post plus the
// rendered HTML of its markdown content.
type postResponse struct {
	models.BlogPost
	ContentHTML string `json:"content_html,omitempty"`
}
