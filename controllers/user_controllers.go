package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ListUsers -> funcionários ativos (senha nunca sai no JSON).
func (uc *UserController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Where("active = ?", true).Order("name ASC").Find(&users).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar usuários: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar usuários"))
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID -> detalhe de um funcionário ativo.
func (uc *UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if err := uc.DB.Where("active = ?", true).First(&user, c.Param("userId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Usuário não encontrado"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser -> cadastra funcionário (admin/manager).
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Nome é obrigatório"))
		return
	}
	if !emailPattern.MatchString(req.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email inválido"))
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Senha deve ter no mínimo 6 caracteres"))
		return
	}
	if !models.ValidRole(req.Role) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Cargo inválido"))
		return
	}

	var count int64
	uc.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("E-mail já cadastrado"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Erro ao gerar hash de senha: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro interno do servidor"))
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Active:   true,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar usuário: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar usuário"))
		return
	}

	utils.InfoLogger.Printf("Funcionário cadastrado: %s (cargo=%s)", user.Email, user.Role)
	c.JSON(http.StatusCreated, user)
}

// UpdateUser -> atualiza funcionário (admin/manager); senha só muda se vier
// no corpo.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.Where("active = ?", true).First(&user, c.Param("userId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Usuário não encontrado"))
		return
	}

	var req struct {
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Password *string `json:"password"`
		Role     string  `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Nome é obrigatório"))
		return
	}
	if !emailPattern.MatchString(req.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email inválido"))
		return
	}
	if !models.ValidRole(req.Role) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Cargo inválido"))
		return
	}

	if req.Email != user.Email {
		var count int64
		uc.DB.Model(&models.User{}).Where("email = ? AND id <> ?", req.Email, user.ID).Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("E-mail já cadastrado"))
			return
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Password != nil {
		if len(*req.Password) < 6 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Senha deve ter no mínimo 6 caracteres"))
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Printf("Erro ao gerar hash de senha: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro interno do servidor"))
			return
		}
		user.Password = string(hashed)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar usuário %d: %v", user.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar usuário"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser -> desativa o funcionário; tokens dele passam a ser rejeitados
// na releitura do middleware de autenticação.
func (uc *UserController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.Where("active = ?", true).First(&user, c.Param("userId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Usuário não encontrado"))
		return
	}

	user.Active = false
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao desativar usuário %d: %v", user.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover usuário"))
		return
	}

	utils.InfoLogger.Printf("Funcionário %d desativado", user.ID)
	c.JSON(http.StatusOK, gin.H{"id": user.ID})
}
