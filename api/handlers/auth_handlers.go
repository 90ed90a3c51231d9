package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"la-blog/auth"
	"la-blog/dto"
	"la-blog/internal/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler godoc
// @Summary      Admin login
// @Description  Verifies the admin credentials and issues a bearer JWT for the mutating blog routes
// @Tags         auth
// @Accept       json
// @Param        body  body  loginRequest  true  "Login payload"
// @Produce      json
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /auth/login [post]
func LoginHandler(creds *auth.Credentials, jwtMgr *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Request body must be valid JSON"})
			return
		}

		if err := creds.Verify(req.Username, req.Password); err != nil {
			logger.Log.Warnf("failed admin login attempt for user %q", req.Username)
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid username or password"})
			return
		}

		token, err := jwtMgr.Sign(req.Username, auth.RoleAdmin)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{Token: token})
	}
}
