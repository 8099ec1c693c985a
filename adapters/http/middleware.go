package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/auth"
)

const (
	GinContextKeyAgentID = "agentID"
	GinContextKeyTeamID  = "teamID"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAgentID, claims.AgentID)
		c.Set(GinContextKeyTeamID, claims.TeamID)

		c.Next()
	}
}

func GetAgentIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	agentID, ok := c.Get(GinContextKeyAgentID)
	if !ok {
		return uuid.Nil, false
	}
	agentIDUUID, ok := agentID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return agentIDUUID, true
}

func GetTeamIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	teamID, ok := c.Get(GinContextKeyTeamID)
	if !ok {
		return uuid.Nil, false
	}
	teamIDUUID, ok := teamID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return teamIDUUID, true
}

// respondError maps application errors onto HTTP statuses. Anything that is
// not an AppError is an internal fault and its details stay out of the body.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.ToHTTPStatus(err), appErr.ToJSON())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
