package property

import (
	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/models"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
)

// Handler handles property HTTP requests.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the public listing routes and the admin write
// routes. The admin group runs the auth middleware (401) before the role
// check (403), so an unauthenticated write never reaches the store.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/properties", h.list)
	rg.GET("/properties/:id", h.get)

	admin := rg.Group("/admin/properties", authMW, adminMW)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /properties
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, err := h.store.List(c.Request.Context(), q.toFilter())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	for i := range items {
		ensureSlices(&items[i])
	}
	response.OK(c, items)
}

// get GET /properties/:id
func (h *Handler) get(c *gin.Context) {
	p, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "Property not found")
		return
	}
	ensureSlices(p)
	response.OK(c, p)
}

// create POST /admin/properties  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePropertyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p := dto.toModel()
	if err := h.store.Create(c.Request.Context(), &p); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, p)
}

// update PUT /admin/properties/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePropertyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.store.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "Property not found")
		return
	}
	ensureSlices(p)
	response.OK(c, p)
}

// delete DELETE /admin/properties/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	found, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Property not found")
		return
	}
	response.Message(c, "Property deleted successfully")
}

// ensureSlices keeps list fields marshaling as [] instead of null for
// documents that predate either field.
func ensureSlices(p *models.Property) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}
