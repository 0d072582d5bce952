package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/kds"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

type tableRequest struct {
	Number int `json:"number"`
	Seats  int `json:"seats"`
}

func (r *tableRequest) validate() error {
	if r.Number <= 0 {
		return errors.New("Número da mesa deve ser positivo")
	}
	if r.Seats < 1 {
		return errors.New("Mesa deve ter pelo menos 1 lugar")
	}
	return nil
}

// ListTables -> mesas ativas de uma unidade.
func (tc *TableController) ListTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Where("unit_id = ? AND active = ?", c.Param("unitId"), true).Find(&tables).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar mesas: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar mesas"))
		return
	}
	c.JSON(http.StatusOK, tables)
}

// CreateTable -> cadastra mesa na unidade (admin/manager). O número precisa
// ser único entre as mesas ativas da unidade.
func (tc *TableController) CreateTable(c *gin.Context) {
	var unit models.Unit
	if err := tc.DB.Where("active = ?", true).First(&unit, c.Param("unitId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Unidade não encontrada"))
		return
	}

	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	tc.DB.Model(&models.Table{}).
		Where("unit_id = ? AND number = ? AND active = ?", unit.ID, req.Number, true).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("Mesa já cadastrada nesta unidade"))
		return
	}

	table := models.Table{
		UnitID: unit.ID,
		Number: req.Number,
		Seats:  req.Seats,
		Status: models.TableAvailable,
		Active: true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar mesa: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar mesa"))
		return
	}

	utils.InfoLogger.Printf("Mesa %d criada na unidade %d", table.Number, unit.ID)
	c.JSON(http.StatusCreated, table)
}

// UpdateTableStatus -> operação explícita de mudança de status; status de
// mesa nunca muda como efeito colateral do ciclo de pedidos.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if !models.ValidTableStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Status de mesa inválido"))
		return
	}

	var table models.Table
	if err := tc.DB.Where("unit_id = ? AND active = ?", c.Param("unitId"), true).
		First(&table, c.Param("tableId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Mesa não encontrada"))
		return
	}

	table.Status = body.Status
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar mesa %d: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar mesa"))
		return
	}

	kds.BroadcastTableUpdate(table)
	c.JSON(http.StatusOK, table)
}

// UpdateTable -> atualiza número e lugares (admin/manager).
func (tc *TableController) UpdateTable(c *gin.Context) {
	var table models.Table
	if err := tc.DB.Where("unit_id = ? AND active = ?", c.Param("unitId"), true).
		First(&table, c.Param("tableId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Mesa não encontrada"))
		return
	}

	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Number != table.Number {
		var count int64
		tc.DB.Model(&models.Table{}).
			Where("unit_id = ? AND number = ? AND active = ? AND id <> ?", table.UnitID, req.Number, true, table.ID).
			Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusConflict, errors.New("Mesa já cadastrada nesta unidade"))
			return
		}
	}

	table.Number = req.Number
	table.Seats = req.Seats
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar mesa %d: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar mesa"))
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTable -> desativa a mesa (admin/manager).
func (tc *TableController) DeleteTable(c *gin.Context) {
	var table models.Table
	if err := tc.DB.Where("unit_id = ? AND active = ?", c.Param("unitId"), true).
		First(&table, c.Param("tableId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Mesa não encontrada"))
		return
	}

	table.Active = false
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao desativar mesa %d: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover mesa"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": table.ID})
}
