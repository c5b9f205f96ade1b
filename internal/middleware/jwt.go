package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/pkg/response"
)

const (
	// ContextUserID is the key for user ID in gin context.
	ContextUserID = auth.ContextUserID
	// ContextUserRole is the key for user role in gin context.
	ContextUserRole = auth.ContextUserRole
	// ContextOrgID is the key for the caller's organization (tenant) ID in gin context.
	ContextOrgID = auth.ContextOrgID
	// ContextTokenID is the key for the JWT jti, used for logout revocation.
	ContextTokenID = auth.ContextTokenID
	// ContextTokenExpiry is the key for the token's expiry time.
	ContextTokenExpiry = auth.ContextTokenExpiry
)

// JWT returns a middleware that validates JWT and sets user claims in context.
// If revoked is non-nil, tokens whose jti appears in the revocation store are rejected.
func JWT(jwtService *auth.JWTService, revoked auth.RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil || isRevoked {
				response.Unauthorized(c, "invalid or expired token")
				c.Abort()
				return
			}
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextOrgID, claims.OrganizationID)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExpiry, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}
