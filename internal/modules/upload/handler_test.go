package upload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/middleware"
	"github.com/nabeelsyed11/Kimia/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

func newTestRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("test-secret")
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api"), middleware.Auth(tokens), middleware.RequireAdmin())
	return r, tokens
}

func postUpload(r *gin.Engine, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadEchoesDataURI(t *testing.T) {
	r, tokens := newTestRouter(t)
	tok, err := tokens.Sign(token.RoleAdmin, token.RoleAdmin)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]string{"image": tinyPNG, "filename": "pixel.png"})
	require.NoError(t, err)

	w := postUpload(r, string(body), tok)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ImageURL string `json:"image_url"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, tinyPNG, resp.ImageURL)
	assert.Equal(t, "pixel.png", resp.Filename)
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	r, tokens := newTestRouter(t)
	tok, err := tokens.Sign(token.RoleAdmin, token.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"plain url", `{"image":"https://example.com/cat.png","filename":"cat.png"}`},
		{"wrong data uri type", `{"image":"data:text/plain;base64,aGk=","filename":"note.txt"}`},
		{"missing image", `{"filename":"cat.png"}`},
		{"missing filename", `{"image":"` + tinyPNG + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postUpload(r, tt.body, tok)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUploadRequiresAdmin(t *testing.T) {
	r, tokens := newTestRouter(t)
	body := `{"image":"` + tinyPNG + `","filename":"pixel.png"}`

	w := postUpload(r, body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	visitor, err := tokens.Sign("visitor", "viewer")
	require.NoError(t, err)
	w = postUpload(r, body, visitor)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
