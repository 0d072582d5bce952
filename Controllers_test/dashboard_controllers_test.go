package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/controllers"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

func setupTestDBForDashboard() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Unit{},
		&models.Customer{},
		&models.Order{},
		&models.Rental{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

func setupDashboardRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	dashboardCtrl := controllers.NewDashboardController(db)
	financeCtrl := controllers.NewFinanceController(db)
	router.GET("/api/dashboard/stats", dashboardCtrl.GetStats)
	router.GET("/api/dashboard/recent-orders", dashboardCtrl.GetRecentOrders)
	router.GET("/api/rental/finance/summary", financeCtrl.GetSummary)
	router.GET("/api/rental/finance/monthly", financeCtrl.GetMonthly)
	router.GET("/api/rental/finance/event-type", financeCtrl.GetByEventType)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, url string, dest interface{}) {
	req, err := http.NewRequest("GET", url, nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// Banco vazio devolve zeros e listas vazias, nunca 500.
func TestDashboardEmptyDatabase(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDashboard()
	router := setupDashboardRouter(db)

	var stats map[string]interface{}
	getJSON(t, router, "/api/dashboard/stats", &stats)
	assert.Equal(t, float64(0), stats["totalRevenue"])
	assert.Equal(t, float64(0), stats["totalOrders"])
	assert.Equal(t, float64(0), stats["totalCustomers"])

	req, err := http.NewRequest("GET", "/api/dashboard/recent-orders", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// Banco sem nenhuma tabela migrada (instalação recém-provisionada) também
// degrada para zeros, nunca 500.
func TestDashboardMissingTablesDegrade(t *testing.T) {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	router := setupDashboardRouter(db)

	var stats map[string]interface{}
	getJSON(t, router, "/api/dashboard/stats", &stats)
	assert.Equal(t, float64(0), stats["totalRevenue"])
	assert.Equal(t, float64(0), stats["totalOrders"])
	assert.Equal(t, float64(0), stats["totalRentals"])
	assert.Equal(t, float64(0), stats["totalCustomers"])

	var summary map[string]interface{}
	getJSON(t, router, "/api/rental/finance/summary", &summary)
	assert.Equal(t, float64(0), summary["totalRevenue"])
	assert.Equal(t, float64(0), summary["pendingRevenue"])
	assert.Equal(t, float64(0), summary["totalContracts"])

	req, err := http.NewRequest("GET", "/api/rental/finance/monthly", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// Receita = pedidos entregues + locações pagas; pendências ficam de fora.
func TestDashboardRevenueComposition(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDashboard()
	router := setupDashboardRouter(db)

	db.Create(&models.Unit{Name: "Matriz", Address: "Rua Principal, 100", Active: true})
	db.Create(&models.Customer{Name: "Cliente A"})

	db.Create(&models.Order{UnitID: 1, UserID: 1, Status: models.OrderDelivered, Total: 120.00, PaymentStatus: models.PaymentPaid})
	db.Create(&models.Order{UnitID: 1, UserID: 1, Status: models.OrderPreparing, Total: 55.00, PaymentStatus: models.PaymentPending})

	eventDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 800.00, Status: "confirmado", PaymentStatus: "pago"})
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 500.00, Status: "pendente", PaymentStatus: "pendente"})

	var stats map[string]interface{}
	getJSON(t, router, "/api/dashboard/stats", &stats)
	assert.InDelta(t, 120.00+800.00, stats["totalRevenue"].(float64), 0.001)
	assert.Equal(t, float64(2), stats["totalOrders"])
	assert.Equal(t, float64(2), stats["totalRentals"])
	assert.Equal(t, float64(1), stats["totalCustomers"])
}

func TestFinanceSummary(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDashboard()
	router := setupDashboardRouter(db)

	db.Create(&models.Customer{Name: "Cliente A"})
	eventDate := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 1000.00, Status: "concluído", PaymentStatus: "pago"})
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 400.00, Status: "pendente", PaymentStatus: "pendente"})
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 300.00, Status: "confirmado", PaymentStatus: "parcial"})

	var summary map[string]interface{}
	getJSON(t, router, "/api/rental/finance/summary", &summary)
	assert.InDelta(t, 1000.00, summary["totalRevenue"].(float64), 0.001)
	assert.InDelta(t, 700.00, summary["pendingRevenue"].(float64), 0.001)
	assert.Equal(t, float64(3), summary["totalContracts"])
	assert.Equal(t, float64(1), summary["paidContracts"])
}

// O gráfico mensal sai em ordem cronológica ascendente.
func TestFinanceMonthlyAscending(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDashboard()
	router := setupDashboardRouter(db)

	db.Create(&models.Customer{Name: "Cliente A"})
	months := []time.Time{
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
	}
	for i, m := range months {
		db.Create(&models.Rental{CustomerID: 1, EventDate: m, Total: float64(100 * (i + 1)), Status: "concluído", PaymentStatus: "pago"})
	}
	// Pendente não entra no gráfico de receita.
	db.Create(&models.Rental{CustomerID: 1, EventDate: months[0], Total: 999.00, Status: "pendente", PaymentStatus: "pendente"})

	var rows []map[string]interface{}
	getJSON(t, router, "/api/rental/finance/monthly", &rows)
	assert.Len(t, rows, 3)
	assert.Equal(t, "2026-01", rows[0]["month"])
	assert.Equal(t, "2026-02", rows[1]["month"])
	assert.Equal(t, "2026-03", rows[2]["month"])
	assert.InDelta(t, 100.00, rows[2]["revenue"].(float64), 0.001)
}

func TestFinanceByEventType(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDashboard()
	router := setupDashboardRouter(db)

	db.Create(&models.Customer{Name: "Cliente A"})
	eventDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	casamento := "Casamento"
	aniversario := "Aniversário"
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 2000.00, Status: "concluído", PaymentStatus: "pago", Notes: &casamento})
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 1500.00, Status: "concluído", PaymentStatus: "pago", Notes: &casamento})
	db.Create(&models.Rental{CustomerID: 1, EventDate: eventDate, Total: 600.00, Status: "pendente", PaymentStatus: "pendente", Notes: &aniversario})

	var rows []map[string]interface{}
	getJSON(t, router, "/api/rental/finance/event-type", &rows)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Casamento", rows[0]["eventType"])
	assert.InDelta(t, 3500.00, rows[0]["revenue"].(float64), 0.001)
	assert.Equal(t, float64(2), rows[0]["count"])
}
