package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func setupTestDBForRentals() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Rental{}); err != nil {
		panic(err)
	}
	db.Create(&models.Customer{Name: "Cliente Teste"})
	return db
}

func setupRentalRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	rentalCtrl := controllers.NewRentalController(db)
	router.GET("/api/rentals", rentalCtrl.ListRentals)
	router.POST("/api/rentals", rentalCtrl.CreateRental)
	router.PUT("/api/rentals/:rentalId", rentalCtrl.UpdateRental)
	router.DELETE("/api/rentals/:rentalId", rentalCtrl.DeleteRental)
	return router
}

func postRental(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/rentals", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Sem status no corpo, o contrato nasce pendente nos dois campos.
func TestCreateRentalDefaults(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRentals()
	router := setupRentalRouter(db)

	w := postRental(t, router, map[string]interface{}{
		"customer_id": 1,
		"event_date":  "2026-10-20",
		"total":       1500.00,
		"notes":       "Casamento",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var rental models.Rental
	err := json.Unmarshal(w.Body.Bytes(), &rental)
	assert.NoError(t, err)
	assert.Equal(t, models.RentalPending, rental.Status)
	assert.Equal(t, models.PaymentPending, rental.PaymentStatus)
	assert.Equal(t, time.October, rental.EventDate.Month())
}

func TestCreateRentalInvalidTotal(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRentals()
	router := setupRentalRouter(db)

	w := postRental(t, router, map[string]interface{}{
		"customer_id": 1,
		"event_date":  "2026-10-20",
		"total":       -10.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Valor deve ser positivo", response["error"])
}

func TestCreateRentalUnknownCustomer(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRentals()
	router := setupRentalRouter(db)

	w := postRental(t, router, map[string]interface{}{
		"customer_id": 42,
		"event_date":  "2026-10-20",
		"total":       500.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Cliente não encontrado", response["error"])
}

// A listagem traduz o contrato para o formato da tela: cliente por nome e
// notes como tipo de evento.
func TestListRentalsRowFormat(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRentals()
	router := setupRentalRouter(db)

	w := postRental(t, router, map[string]interface{}{
		"customer_id":    1,
		"event_date":     "2026-10-20",
		"total":          1500.00,
		"status":         "confirmado",
		"payment_status": "pago",
		"notes":          "Formatura",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	req, err := http.NewRequest("GET", "/api/rentals", nil)
	assert.NoError(t, err)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var rows []map[string]interface{}
	err = json.Unmarshal(w2.Body.Bytes(), &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Cliente Teste", rows[0]["client"])
	assert.Equal(t, "Formatura", rows[0]["eventType"])
	assert.InDelta(t, 1500.00, rows[0]["totalValue"].(float64), 0.001)
}

func TestDeleteRental(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRentals()
	router := setupRentalRouter(db)

	w := postRental(t, router, map[string]interface{}{
		"customer_id": 1,
		"event_date":  "2026-10-20",
		"total":       1500.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var rental models.Rental
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rental))

	url := fmt.Sprintf("/api/rentals/%d", rental.ID)
	req, err := http.NewRequest("DELETE", url, nil)
	assert.NoError(t, err)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var count int64
	db.Model(&models.Rental{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
