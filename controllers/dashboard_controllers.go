package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// scanAggregate roda uma consulta de agregado e, se a tabela ainda não
// existir ou a consulta falhar, loga e deixa o destino zerado. Dashboards
// degradam para zero em vez de devolver 500.
func scanAggregate(db *gorm.DB, dest interface{}, query string, args ...interface{}) {
	if err := db.Raw(query, args...).Scan(dest).Error; err != nil {
		utils.ErrorLogger.Printf("Consulta de agregado falhou, devolvendo zero: %v", err)
	}
}

type dashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalRentals   int64   `json:"totalRentals"`
	TotalCustomers int64   `json:"totalCustomers"`
}

// GetStats -> números do painel: receita (pedidos entregues + locações
// pagas) e contagens gerais.
func (dc *DashboardController) GetStats(c *gin.Context) {
	var stats dashboardStats

	var delivered, paid struct{ Total float64 }
	scanAggregate(dc.DB, &delivered, "SELECT COALESCE(SUM(total), 0) AS total FROM orders WHERE status = ?", "entregue")
	scanAggregate(dc.DB, &paid, "SELECT COALESCE(SUM(total), 0) AS total FROM rentals WHERE payment_status = ?", "pago")
	stats.TotalRevenue = delivered.Total + paid.Total

	scanAggregate(dc.DB, &stats.TotalOrders, "SELECT COUNT(*) FROM orders")
	scanAggregate(dc.DB, &stats.TotalRentals, "SELECT COUNT(*) FROM rentals")
	scanAggregate(dc.DB, &stats.TotalCustomers, "SELECT COUNT(*) FROM customers")

	c.JSON(http.StatusOK, stats)
}

type recentOrderRow struct {
	ID        uint      `json:"id"`
	Table     *uint     `json:"table"`
	Customer  *string   `json:"customer"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetRecentOrders -> últimos 10 pedidos com nome do cliente.
func (dc *DashboardController) GetRecentOrders(c *gin.Context) {
	rows := []recentOrderRow{}
	scanAggregate(dc.DB, &rows, `
		SELECT o.id, o.table_id AS `+"`table`"+`, c.name AS customer, o.total, o.status, o.created_at
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		ORDER BY o.created_at DESC
		LIMIT 10`)
	c.JSON(http.StatusOK, rows)
}

type recentRentalRow struct {
	ID         uint      `json:"id"`
	Client     *string   `json:"client"`
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"totalValue"`
	Status     string    `json:"status"`
	EventType  *string   `json:"eventType"`
}

// GetRecentRentals -> últimas 10 locações com nome do cliente.
func (dc *DashboardController) GetRecentRentals(c *gin.Context) {
	rows := []recentRentalRow{}
	scanAggregate(dc.DB, &rows, `
		SELECT r.id, c.name AS client, r.event_date AS date, r.total AS total_value,
		       r.status, r.notes AS event_type
		FROM rentals r
		LEFT JOIN customers c ON r.customer_id = c.id
		ORDER BY r.event_date DESC
		LIMIT 10`)
	c.JSON(http.StatusOK, rows)
}
