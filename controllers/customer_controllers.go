package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

type customerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Document *string `json:"document"`
	Notes    *string `json:"notes"`
	Type     *string `json:"type"`
}

func (r *customerRequest) validate() error {
	if r.Name == "" {
		return errors.New("Nome é obrigatório")
	}
	return nil
}

func (cc *CustomerController) ListCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("name ASC").Find(&customers).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar clientes: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar clientes"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("customerId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Cliente não encontrado"))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Document: req.Document,
		Notes:    req.Notes,
		Type:     req.Type,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar cliente: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar cliente"))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("customerId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Cliente não encontrado"))
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.Document = req.Document
	customer.Notes = req.Notes
	customer.Type = req.Type
	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar cliente %d: %v", customer.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar cliente"))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, c.Param("customerId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Cliente não encontrado"))
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao remover cliente %d: %v", customer.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover cliente"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": customer.ID})
}
