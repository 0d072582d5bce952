package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type productRequest struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	IsRental    bool    `json:"is_rental"`
}

func (r *productRequest) validate() error {
	if r.CategoryID == 0 {
		return errors.New("Categoria inválida")
	}
	if len(r.Name) < 3 {
		return errors.New("Nome deve ter no mínimo 3 caracteres")
	}
	if r.Price <= 0 {
		return errors.New("Preço deve ser positivo")
	}
	if r.Cost <= 0 {
		return errors.New("Custo deve ser positivo")
	}
	return nil
}

// ListProducts -> produtos ativos; ?is_rental separa estoque do restaurante
// do inventário de locação.
func (pc *ProductController) ListProducts(c *gin.Context) {
	query := pc.DB.Where("active = ?", true)
	if isRental := c.Query("is_rental"); isRental != "" {
		query = query.Where("is_rental = ?", isRental == "true")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar produtos: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar produtos"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct -> cadastra produto (admin/manager).
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		IsRental:    req.IsRental,
		Active:      true,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar produto: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar produto"))
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct -> atualiza produto (admin/manager).
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.Where("active = ?", true).First(&product, c.Param("productId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Produto não encontrado"))
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Cost = req.Cost
	product.IsRental = req.IsRental
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar produto %d: %v", product.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar produto"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct -> desativa o produto (admin/manager).
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.Where("active = ?", true).First(&product, c.Param("productId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Produto não encontrado"))
		return
	}

	product.Active = false
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao desativar produto %d: %v", product.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover produto"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": product.ID})
}
