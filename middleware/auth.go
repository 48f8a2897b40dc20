package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/models"
	"kaalchakra-cms/workflow"
)

var HTTPHelper = &helper.HTTPHelper{}

const (
	UserIDKey = "user_id"
	NameKey   = "name"
	RoleKey   = "role"
)

type Claims struct {
	UserID uint            `json:"user_id"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware accepts an HS256 bearer token signed with secret and puts
// the caller's id, name and role on the context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Invalid or expired token", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		if claims.UserID == 0 || !claims.Role.Valid() {
			HTTPHelper.SendUnauthorizedError(c, "Token is missing user claims", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(NameKey, claims.Name)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// ActorFrom returns the authenticated caller. The zero Actor is returned
// when AuthMiddleware did not run, which the authorizer rejects as
// unauthenticated.
func ActorFrom(c *gin.Context) workflow.Actor {
	id, _ := c.Get(UserIDKey)
	role, _ := c.Get(RoleKey)
	uid, _ := id.(uint)
	r, _ := role.(models.UserRole)
	return workflow.Actor{ID: uid, Role: r}
}

// RequireRole short-circuits routes reserved for some roles. Per-record
// rules are still decided by the workflow authorizer.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.ID == 0 {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		HTTPHelper.SendAppError(c, models.ErrForbidden("insufficient permissions"))
		c.Abort()
	}
}
