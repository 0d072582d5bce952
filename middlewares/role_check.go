package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alesxandro/barfesta-app/utils"
)

var errForbidden = errors.New("Acesso não autorizado.")

// CheckRole libera a rota apenas para os cargos da allow-list. Precisa rodar
// depois do AuthMiddleware, que popula o cargo no contexto.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errLoginRequired)
			c.Abort()
			return
		}

		role, _ := roleInterface.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, errForbidden)
		c.Abort()
	}
}
