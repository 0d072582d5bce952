package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/controllers"
	"github.com/alesxandro/barfesta-app/database"
	"github.com/alesxandro/barfesta-app/middlewares"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

// setupTestDBForAuth usa SQLite em memória com o admin já criado pelo seed.
func setupTestDBForAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic(err)
	}
	if err := database.SeedAdminUser(db); err != nil {
		panic(err)
	}
	return db
}

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	authCtrl := controllers.NewAuthController(db)
	router.POST("/api/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(db))
	auth.GET("/api/test", authCtrl.TestConnection)
	return router
}

func doLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	payload := map[string]string{"email": email, "password": password}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/login", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	w := doLogin(t, router, database.SeedAdminEmail, database.SeedAdminPassword)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, database.SeedAdminEmail, user["email"])

	token := response["token"].(string)
	assert.NotEmpty(t, token)

	// O token emitido deve passar pelo middleware de autenticação.
	req, err := http.NewRequest("GET", "/api/test", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	w := doLogin(t, router, database.SeedAdminEmail, "senha-errada")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Senha incorreta", response["error"])
}

func TestLoginInvalidEmail(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	w := doLogin(t, router, "nao-e-um-email", "admin123")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Email inválido", response["error"])
}

func TestLoginShortPassword(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	w := doLogin(t, router, database.SeedAdminEmail, "123")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Senha deve ter no mínimo 6 caracteres", response["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	w := doLogin(t, router, "alguem@exemplo.com", "admin123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Usuário não encontrado", response["error"])
}

// Token dentro da validade deixa de funcionar quando o usuário é desativado.
func TestDeactivatedUserTokenRejected(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")
	db := setupTestDBForAuth()
	router := setupAuthRouter(db)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("garcom123"), bcrypt.DefaultCost)
	user := models.User{
		Name:     "Garçom Teste",
		Email:    "garcom@exemplo.com",
		Password: string(hashed),
		Role:     models.RoleWaiter,
		Active:   true,
	}
	db.Create(&user)

	token, err := utils.GenerateToken(user.ID)
	assert.NoError(t, err)

	db.Model(&user).Update("active", false)

	req, err := http.NewRequest("GET", "/api/test", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Por favor, faça login.", response["error"])
}
