package middleware

import (
	"errors"
	"strings"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/auth/token"
	"go-hrm/internal/identity"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AccessTokenParser is satisfied by *token.Manager.
type AccessTokenParser interface {
	Parse(raw string, want token.Type) (*token.Claims, error)
}

func AuthMiddleware(tokens AccessTokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := tokens.Parse(tokenString, token.TypeAccess)
		if err != nil {
			abortWith(c, err)
			return
		}

		p, err := claims.Principal()
		if err != nil {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		setPrincipal(c, p)
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p *identity.Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.UserID.String())
	c.Set("user_id_validated", p.UserID.String())
	c.Set("username", p.Username)
	c.Set("role", string(p.Role))

	ctx := contextutil.WithUserID(c.Request.Context(), p.UserID.String())
	ctx = contextutil.WithRole(ctx, string(p.Role))
	c.Request = c.Request.WithContext(ctx)
}

// Principal returns the authenticated caller set by AuthMiddleware.
func Principal(c *gin.Context) (*identity.Principal, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, identity.ErrUnauthenticated
	}
	p, ok := v.(*identity.Principal)
	if !ok || p == nil {
		return nil, identity.ErrUnauthenticated
	}
	return p, nil
}

// SetPrincipal is exposed for handler tests that skip token parsing.
func SetPrincipal(c *gin.Context, p *identity.Principal) {
	setPrincipal(c, p)
}

func RoleMiddleware(allowedRoles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := Principal(c)
		if err != nil {
			abortWith(c, err)
			return
		}

		if !identity.HasRole(p, allowedRoles...) {
			abortWith(c, identity.ErrForbidden)
			return
		}

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		err = autherrors.ErrInvalidToken
	}
	httpErr := apperror.ToHTTP(err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
