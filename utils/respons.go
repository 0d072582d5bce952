package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse é o corpo padrão de erro: só a mensagem da taxonomia chega
// ao cliente, o detalhe do driver fica no log do servidor.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// FormatCurrency formata um valor no padrão brasileiro (1.234,56).
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return "R$ " + strings.Join(result, ".") + "," + decimalPart
}
