package upload

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
)

// imagePrefix is the data-URI prefix a payload must carry. Only the prefix
// is validated; the payload is never decoded, sized, or stored.
const imagePrefix = "data:image"

// ImageUploadDTO is the request body for the upload endpoint.
type ImageUploadDTO struct {
	Image    string `json:"image"    binding:"required"`
	Filename string `json:"filename" binding:"required"`
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

// Handler echoes embedded images back as their own URL. A real deployment
// would hand the payload to object storage; that integration is an
// external collaborator, not part of this service.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/admin/upload-image", authMW, adminMW, h.upload)
}

// upload POST /admin/upload-image  [admin]
func (h *Handler) upload(c *gin.Context) {
	var dto ImageUploadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !strings.HasPrefix(dto.Image, imagePrefix) {
		response.BadRequest(c, "Invalid image format")
		return
	}

	response.OK(c, uploadResponse{ImageURL: dto.Image, Filename: dto.Filename})
}
