package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"la-blog/api/handlers"
	"la-blog/auth"
	"la-blog/config"
)

func loginEngine(t *testing.T) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	creds, err := auth.NewCredentialsFromConfig(config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	})
	require.NoError(t, err)
	jwtMgr, err := auth.NewJWTManagerFromConfig(config.AuthConfig{JWTSecret: "login-test-secret"})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", handlers.LoginHandler(creds, jwtMgr))
	return r, jwtMgr
}

func TestLoginIssuesAdminToken(t *testing.T) {
	r, jwtMgr := loginEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	username, role, err := jwtMgr.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := loginEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())
}
