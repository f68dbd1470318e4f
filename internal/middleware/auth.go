package middleware

import (
	"net/http"
	"strings"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey      = "claims"
	CurrentUserKey = "current_user"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewUnauthorized(msg))
}

// JWTAuth validates the Bearer token on every protected route and resolves
// the claims' email to exactly one active account, stored in the context.
func JWTAuth(secret string, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Autenticacion requerida")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Token invalido o expirado")
			return
		}

		user, err := usuarios.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			unauthorized(c, "No se pudieron validar las credenciales")
			return
		}
		if !user.Activo {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("Usuario inactivo"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers whose resolved account is not an administrator.
// Runs after JWTAuth, so a failure here is a permission error, not an
// authentication error.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil || !user.EsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.NewForbidden("No tienes permisos de administrador"))
			return
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the resolved account from the Gin context.
func GetCurrentUser(c *gin.Context) *model.Usuario {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.Usuario)
	return user
}
