package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var errBadRequest = errors.New("Requisição inválida")

// Login valida credenciais e emite token com validade de 24h.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}

	// Validação antes de tocar no banco, como no schema de login.
	if !emailPattern.MatchString(req.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email inválido"))
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Senha deve ter no mínimo 6 caracteres"))
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ? AND active = ?", req.Email, true).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Usuário não encontrado"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Senha incorreta"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.ErrorLogger.Printf("Erro ao gerar token para %s: %v", user.Email, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro interno do servidor"))
		return
	}

	utils.InfoLogger.Printf("Login: %s (cargo=%s)", user.Email, user.Role)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// TestConnection -> verificação autenticada de conectividade com o banco.
func (ac *AuthController) TestConnection(c *gin.Context) {
	sqlDB, err := ac.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Falha na conexão com o banco de dados"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conexão com o banco de dados estabelecida com sucesso!"})
}
