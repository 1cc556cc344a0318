package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
)

// Handler handles admin authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the login route. It sits under /admin but takes no
// auth middleware: it is the route that mints the token.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)
}

// login POST /admin/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tok, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, loginResponse{AccessToken: tok, TokenType: "bearer"})
}
