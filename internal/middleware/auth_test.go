package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthTestRouter(captured *identity.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithAuth(testSecret))
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		ident, _ := IdentityFromContext(c)
		*captured = ident
		c.Status(http.StatusOK)
	})
	r.GET("/open", func(c *gin.Context) {
		_, ok := IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return r
}

func TestAuthAttachesIdentity(t *testing.T) {
	var ident identity.Identity
	router := newAuthTestRouter(&ident)

	token, err := SignToken(testSecret, "idp_user_1", "comp_a", "manager", "vu@acme.example.com", "Morgan Vu", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idp_user_1", ident.UserID)
	assert.Equal(t, "comp_a", ident.CompanyID)
	assert.Equal(t, "manager", ident.Role)
	assert.Equal(t, "vu@acme.example.com", ident.Email)
	assert.Equal(t, "Morgan Vu", ident.Name)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	var ident identity.Identity
	router := newAuthTestRouter(&ident)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	var ident identity.Identity
	router := newAuthTestRouter(&ident)

	for _, header := range []string{
		"Bearer not-a-token",
		"Basic abc123",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}

	// Token signed with a different key is not trusted.
	forged, err := SignToken("other-secret", "idp_user_1", "comp_a", "manager", "", "", time.Hour)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	var ident identity.Identity
	router := newAuthTestRouter(&ident)

	token, err := SignToken(testSecret, "idp_user_1", "comp_a", "employee", "", "", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthNeverRejects(t *testing.T) {
	var ident identity.Identity
	router := newAuthTestRouter(&ident)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
