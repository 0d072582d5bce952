package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

type unitRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
}

func (r *unitRequest) validate() error {
	if len(r.Name) < 3 {
		return errors.New("Nome deve ter no mínimo 3 caracteres")
	}
	if len(r.Address) < 5 {
		return errors.New("Endereço deve ter no mínimo 5 caracteres")
	}
	return nil
}

// ListUnits -> unidades ativas.
func (uc *UnitController) ListUnits(c *gin.Context) {
	var units []models.Unit
	if err := uc.DB.Where("active = ?", true).Find(&units).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar unidades: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar unidades"))
		return
	}
	c.JSON(http.StatusOK, units)
}

// CreateUnit -> cadastra um estabelecimento (admin/manager).
func (uc *UnitController) CreateUnit(c *gin.Context) {
	var req unitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	unit := models.Unit{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  true,
	}
	if err := uc.DB.Create(&unit).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar unidade: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar unidade"))
		return
	}

	utils.InfoLogger.Printf("Unidade criada: %s (id=%d)", unit.Name, unit.ID)
	c.JSON(http.StatusCreated, unit)
}

// UpdateUnit -> atualiza dados da unidade (admin/manager).
func (uc *UnitController) UpdateUnit(c *gin.Context) {
	var unit models.Unit
	if err := uc.DB.Where("active = ?", true).First(&unit, c.Param("unitId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Unidade não encontrada"))
		return
	}

	var req unitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	unit.Name = req.Name
	unit.Address = req.Address
	unit.Phone = req.Phone
	if err := uc.DB.Save(&unit).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar unidade %d: %v", unit.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar unidade"))
		return
	}
	c.JSON(http.StatusOK, unit)
}

// DeleteUnit -> desativa a unidade; nada é removido fisicamente.
func (uc *UnitController) DeleteUnit(c *gin.Context) {
	var unit models.Unit
	if err := uc.DB.Where("active = ?", true).First(&unit, c.Param("unitId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Unidade não encontrada"))
		return
	}

	unit.Active = false
	if err := uc.DB.Save(&unit).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao desativar unidade %d: %v", unit.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover unidade"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": unit.ID})
}
