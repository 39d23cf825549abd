package middleware

import (
	"go-hrm/internal/identity"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal, dipenuhi oleh rbac.Service.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := Principal(c)
		if err != nil {
			abortWith(c, err)
			return
		}

		allowed, err := service.Enforce(string(p.Role), resource, action)
		if err != nil {
			e := apperror.ErrInternal
			response.Abort(c, e.HTTPStatus, e.Code, e.Message)
			return
		}

		if !allowed {
			abortWith(c, identity.ErrForbidden)
			return
		}
		c.Next()
	}
}
