package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FinanceController concentra os relatórios financeiros de locação. Todas as
// consultas degradam para zero/vazio quando a tabela ainda não existe.
type FinanceController struct {
	DB *gorm.DB
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{DB: db}
}

// monthExpr devolve a expressão de agrupamento ano-mês do dialeto em uso
// (MySQL em produção, SQLite nos testes).
func (fc *FinanceController) monthExpr() string {
	if fc.DB.Dialector.Name() == "mysql" {
		return "DATE_FORMAT(event_date, '%Y-%m')"
	}
	return "strftime('%Y-%m', event_date)"
}

type financeSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingRevenue float64 `json:"pendingRevenue"`
	TotalContracts int64   `json:"totalContracts"`
	PaidContracts  int64   `json:"paidContracts"`
}

// GetSummary -> receita recebida/pendente e contagem de contratos.
func (fc *FinanceController) GetSummary(c *gin.Context) {
	var summary financeSummary

	var paid, pending struct{ Total float64 }
	scanAggregate(fc.DB, &paid, "SELECT COALESCE(SUM(total), 0) AS total FROM rentals WHERE payment_status = ?", "pago")
	scanAggregate(fc.DB, &pending, "SELECT COALESCE(SUM(total), 0) AS total FROM rentals WHERE payment_status <> ?", "pago")
	summary.TotalRevenue = paid.Total
	summary.PendingRevenue = pending.Total

	scanAggregate(fc.DB, &summary.TotalContracts, "SELECT COUNT(*) FROM rentals")
	scanAggregate(fc.DB, &summary.PaidContracts, "SELECT COUNT(*) FROM rentals WHERE payment_status = ?", "pago")

	c.JSON(http.StatusOK, summary)
}

type monthlyRevenueRow struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// GetMonthly -> receita paga por ano-mês, últimos 12 meses com movimento,
// em ordem cronológica ascendente.
func (fc *FinanceController) GetMonthly(c *gin.Context) {
	rows := []monthlyRevenueRow{}
	scanAggregate(fc.DB, &rows, `
		SELECT `+fc.monthExpr()+` AS month, COALESCE(SUM(total), 0) AS revenue
		FROM rentals
		WHERE payment_status = ?
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12`, "pago")

	// A consulta pega os mais recentes; o gráfico espera ordem ascendente.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	c.JSON(http.StatusOK, rows)
}

type eventTypeRow struct {
	EventType *string `json:"eventType"`
	Revenue   float64 `json:"revenue"`
	Count     int64   `json:"count"`
}

// GetByEventType -> receita agrupada pelo tipo de evento (campo notes, texto
// livre).
func (fc *FinanceController) GetByEventType(c *gin.Context) {
	rows := []eventTypeRow{}
	scanAggregate(fc.DB, &rows, `
		SELECT notes AS event_type, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS count
		FROM rentals
		GROUP BY notes
		ORDER BY revenue DESC`)
	c.JSON(http.StatusOK, rows)
}

type transactionRow struct {
	ID            uint      `json:"id"`
	Client        *string   `json:"client"`
	Date          time.Time `json:"date"`
	TotalValue    float64   `json:"totalValue"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	EventType     *string   `json:"eventType"`
}

// GetTransactions -> extrato de locações com cliente, mais recente primeiro.
func (fc *FinanceController) GetTransactions(c *gin.Context) {
	rows := []transactionRow{}
	scanAggregate(fc.DB, &rows, `
		SELECT r.id, c.name AS client, r.event_date AS date, r.total AS total_value,
		       r.status, r.payment_status, r.notes AS event_type
		FROM rentals r
		LEFT JOIN customers c ON r.customer_id = c.id
		ORDER BY r.event_date DESC`)
	c.JSON(http.StatusOK, rows)
}
