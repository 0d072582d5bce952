package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/controllers"
	"github.com/alesxandro/barfesta-app/middlewares"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

func setupTestDBForTables() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Unit{}, &models.Table{}); err != nil {
		panic(err)
	}
	db.Create(&models.Unit{Name: "Matriz", Address: "Rua Principal, 100", Active: true})
	return db
}

// setupTableRouter injeta o cargo no contexto e aplica o mesmo gate de
// admin/manager das rotas reais.
func setupTableRouter(db *gorm.DB, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("role", role)
	})

	manageOnly := middlewares.CheckRole(models.RoleAdmin, models.RoleManager)
	tableCtrl := controllers.NewTableController(db)
	router.GET("/api/units/:unitId/tables", tableCtrl.ListTables)
	router.POST("/api/units/:unitId/tables", manageOnly, tableCtrl.CreateTable)
	router.PATCH("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.UpdateTableStatus)
	router.PUT("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.UpdateTable)
	router.DELETE("/api/units/:unitId/tables/:tableId", manageOnly, tableCtrl.DeleteTable)
	return router
}

func postTable(t *testing.T, router *gin.Engine, number, seats int) *httptest.ResponseRecorder {
	payload, err := json.Marshal(map[string]int{"number": number, "seats": seats})
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/units/1/tables", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleAdmin)

	w := postTable(t, router, 7, 4)
	assert.Equal(t, http.StatusCreated, w.Code)

	var table models.Table
	err := json.Unmarshal(w.Body.Bytes(), &table)
	assert.NoError(t, err)
	assert.Equal(t, 7, table.Number)
	assert.Equal(t, models.TableAvailable, table.Status)
}

func TestCreateDuplicateTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleAdmin)

	w := postTable(t, router, 7, 4)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postTable(t, router, 7, 2)
	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Mesa já cadastrada nesta unidade", response["error"])
}

// Mesa desativada libera o número para um novo cadastro.
func TestCreateTableAfterDeactivation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleAdmin)

	w := postTable(t, router, 7, 4)
	assert.Equal(t, http.StatusCreated, w.Code)

	var table models.Table
	err := json.Unmarshal(w.Body.Bytes(), &table)
	assert.NoError(t, err)

	url := fmt.Sprintf("/api/units/1/tables/%d", table.ID)
	req, err := http.NewRequest("DELETE", url, nil)
	assert.NoError(t, err)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	w3 := postTable(t, router, 7, 6)
	assert.Equal(t, http.StatusCreated, w3.Code)
}

func TestUpdateTableStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleManager)

	table := models.Table{UnitID: 1, Number: 3, Seats: 2, Status: models.TableAvailable, Active: true}
	db.Create(&table)

	payload, _ := json.Marshal(map[string]string{"status": models.TableOccupied})
	url := fmt.Sprintf("/api/units/1/tables/%d", table.ID)
	req, err := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Table
	err = json.Unmarshal(w.Body.Bytes(), &updated)
	assert.NoError(t, err)
	assert.Equal(t, models.TableOccupied, updated.Status)
}

func TestUpdateTableStatusInvalid(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleAdmin)

	table := models.Table{UnitID: 1, Number: 3, Seats: 2, Status: models.TableAvailable, Active: true}
	db.Create(&table)

	payload, _ := json.Marshal(map[string]string{"status": "quebrada"})
	url := fmt.Sprintf("/api/units/1/tables/%d", table.ID)
	req, err := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Status de mesa inválido", response["error"])
}

// Garçom não cadastra mesa; a tentativa não altera o banco.
func TestCreateTableForbiddenForWaiter(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db, models.RoleWaiter)

	w := postTable(t, router, 9, 4)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Acesso não autorizado.", response["error"])

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
