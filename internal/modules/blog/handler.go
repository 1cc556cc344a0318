package blog

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/models"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
	"github.com/yuin/goldmark"
)

// Handler handles blog HTTP requests. Public routes only ever see
// published posts; the admin routes see everything including drafts.
type Handler struct {
	store Store
	md    goldmark.Markdown
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, md: goldmark.New()}
}

// RegisterRoutes mounts the public read routes and the admin CRUD routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/blog", h.list)
	rg.GET("/blog/:id", h.get)

	admin := rg.Group("/admin/blog", authMW, adminMW)
	admin.GET("", h.adminList)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /blog — published posts only.
func (h *Handler) list(c *gin.Context) {
	posts, err := h.store.List(c.Request.Context(), Filter{
		Category:      c.Query("category"),
		PublishedOnly: true,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// get GET /blog/:id — drafts are invisible here, so an unpublished id
// answers exactly like an unknown one.
func (h *Handler) get(c *gin.Context) {
	post, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil || !post.Published {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, h.toResponse(post))
}

// adminList GET /admin/blog  [admin] — all posts including drafts.
func (h *Handler) adminList(c *gin.Context) {
	posts, err := h.store.List(c.Request.Context(), Filter{
		Category: c.Query("category"),
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// create POST /admin/blog  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post := dto.toModel()
	if err := h.store.Create(c.Request.Context(), &post); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, post)
}

// update PUT /admin/blog/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.store.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, post)
}

// delete DELETE /admin/blog/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	found, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.Message(c, "Blog post deleted successfully")
}

func (h *Handler) toResponse(post *models.BlogPost) postResponse {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(post.Content), &buf); err != nil {
		// fall back to the raw content; rendering is a convenience
		return postResponse{BlogPost: *post}
	}
	return postResponse{BlogPost: *post, ContentHTML: buf.String()}
}
