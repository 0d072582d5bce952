package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/utils"
)

var errDBUnavailable = errors.New("Erro de conexão com o banco de dados")

// DBCheck sonda a conexão com o banco antes de cada requisição e devolve
// 500 quando o banco está inacessível, em vez de deixar o erro estourar
// dentro de um handler.
func DBCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.ErrorLogger.Printf("Banco de dados inacessível: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errDBUnavailable)
			c.Abort()
			return
		}
		c.Next()
	}
}
