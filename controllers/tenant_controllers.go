package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alesxandro/barfesta-app/services"
	"github.com/alesxandro/barfesta-app/utils"
)

type TenantController struct {
	Provisioner *services.TenantProvisioner
}

func NewTenantController(provisioner *services.TenantProvisioner) *TenantController {
	return &TenantController{Provisioner: provisioner}
}

// CreateTenant -> bootstrap administrativo de uma nova instalação: cria o
// banco isolado, aplica o esquema e grava as coordenadas no registro mestre.
func (tc *TenantController) CreateTenant(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		DBName     string `json:"db_name"`
		DBUser     string `json:"db_user"`
		DBPassword string `json:"db_password"`
		DBHost     string `json:"db_host"`
		DBPort     int    `json:"db_port"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if len(req.Name) < 3 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Nome deve ter no mínimo 3 caracteres"))
		return
	}
	if req.DBUser == "" || req.DBHost == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Credenciais do banco são obrigatórias"))
		return
	}
	if req.DBPort == 0 {
		req.DBPort = 3306
	}

	tenant, err := tc.Provisioner.Provision(services.TenantConfig{
		Name:       req.Name,
		DBName:     req.DBName,
		DBUser:     req.DBUser,
		DBPassword: req.DBPassword,
		DBHost:     req.DBHost,
		DBPort:     req.DBPort,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDBName), errors.Is(err, services.ErrTenantExists):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusCreated, tenant)
}
