package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type RentalController struct {
	DB *gorm.DB
}

func NewRentalController(db *gorm.DB) *RentalController {
	return &RentalController{DB: db}
}

// rentalRow segue o formato consumido pela tela de locações: cliente,
// data do evento e tipo de evento (campo notes).
type rentalRow struct {
	ID         uint      `json:"id"`
	Client     *string   `json:"client"`
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"totalValue"`
	Status     string    `json:"status"`
	EventType  *string   `json:"eventType"`
}

type rentalRequest struct {
	CustomerID    uint    `json:"customer_id"`
	EventDate     string  `json:"event_date"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes"`
}

func (r *rentalRequest) validate() (time.Time, error) {
	if r.CustomerID == 0 {
		return time.Time{}, errors.New("Cliente é obrigatório")
	}
	date, err := time.Parse("2006-01-02", r.EventDate)
	if err != nil {
		return time.Time{}, errors.New("Data do evento inválida")
	}
	if r.Total <= 0 {
		return time.Time{}, errors.New("Valor deve ser positivo")
	}
	if r.Status == "" {
		r.Status = models.RentalPending
	}
	if !models.ValidRentalStatus(r.Status) {
		return time.Time{}, errors.New("Status de locação inválido")
	}
	if r.PaymentStatus == "" {
		r.PaymentStatus = models.PaymentPending
	}
	if !models.ValidPaymentStatus(r.PaymentStatus) {
		return time.Time{}, errors.New("Status de pagamento inválido")
	}
	return date, nil
}

// ListRentals -> contratos de locação com nome do cliente, evento mais
// recente primeiro.
func (rc *RentalController) ListRentals(c *gin.Context) {
	rows := []rentalRow{}
	err := rc.DB.Raw(`
		SELECT r.id, c.name AS client, r.event_date AS date, r.total AS total_value,
		       r.status, r.notes AS event_type
		FROM rentals r
		LEFT JOIN customers c ON r.customer_id = c.id
		ORDER BY r.event_date DESC`).Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar locações: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar locações"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rc *RentalController) CreateRental(c *gin.Context) {
	var req rentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	date, err := req.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := rc.DB.First(&customer, req.CustomerID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Cliente não encontrado"))
		return
	}

	rental := models.Rental{
		CustomerID:    req.CustomerID,
		EventDate:     date,
		Total:         req.Total,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}
	if err := rc.DB.Create(&rental).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar locação: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar locação"))
		return
	}
	c.JSON(http.StatusCreated, rental)
}

func (rc *RentalController) UpdateRental(c *gin.Context) {
	var rental models.Rental
	if err := rc.DB.First(&rental, c.Param("rentalId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Locação não encontrada"))
		return
	}

	var req rentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	date, err := req.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rental.CustomerID = req.CustomerID
	rental.EventDate = date
	rental.Total = req.Total
	rental.Status = req.Status
	rental.PaymentStatus = req.PaymentStatus
	rental.Notes = req.Notes
	if err := rc.DB.Save(&rental).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar locação %d: %v", rental.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar locação"))
		return
	}
	c.JSON(http.StatusOK, rental)
}

func (rc *RentalController) DeleteRental(c *gin.Context) {
	var rental models.Rental
	if err := rc.DB.First(&rental, c.Param("rentalId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Locação não encontrada"))
		return
	}

	if err := rc.DB.Delete(&rental).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao remover locação %d: %v", rental.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover locação"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": rental.ID})
}
