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

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// reservationRow é a linha da listagem, já com nome do cliente e número da
// mesa resolvidos.
type reservationRow struct {
	ID        uint      `json:"id"`
	Name      *string   `json:"name"`
	Date      time.Time `json:"date"`
	TimeStart string    `json:"time_start"`
	TimeEnd   string    `json:"time_end"`
	People    int       `json:"people"`
	Status    string    `json:"status"`
	Table     *int      `json:"table"`
	Contact   *string   `json:"contact"`
}

type reservationRequest struct {
	CustomerID uint    `json:"customer_id"`
	Date       string  `json:"date"`
	TimeStart  string  `json:"time_start"`
	TimeEnd    string  `json:"time_end"`
	People     int     `json:"people"`
	Status     string  `json:"status"`
	TableID    *uint   `json:"table_id"`
	Contact    *string `json:"contact"`
}

func (r *reservationRequest) validate() (time.Time, error) {
	if r.CustomerID == 0 {
		return time.Time{}, errors.New("Cliente é obrigatório")
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, errors.New("Data inválida")
	}
	if r.TimeStart == "" || r.TimeEnd == "" {
		return time.Time{}, errors.New("Horário é obrigatório")
	}
	if r.People < 1 {
		return time.Time{}, errors.New("Reserva deve ter pelo menos 1 pessoa")
	}
	if r.Status == "" {
		r.Status = models.ReservationPending
	}
	if !models.ValidReservationStatus(r.Status) {
		return time.Time{}, errors.New("Status de reserva inválido")
	}
	return date, nil
}

// ListReservations -> reservas com cliente e mesa, mais recentes primeiro.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	rows := []reservationRow{}
	err := rc.DB.Raw(`
		SELECT r.id, c.name, r.date, r.time_start, r.time_end, r.people, r.status,
		       t.number AS ` + "`table`" + `, r.contact
		FROM reservations r
		LEFT JOIN customers c ON r.customer_id = c.id
		LEFT JOIN tables t ON r.table_id = t.id
		ORDER BY r.date DESC, r.time_start DESC`).Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar reservas: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar reservas"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
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

	reservation := models.Reservation{
		CustomerID: req.CustomerID,
		Date:       date,
		TimeStart:  req.TimeStart,
		TimeEnd:    req.TimeEnd,
		People:     req.People,
		Status:     req.Status,
		TableID:    req.TableID,
		Contact:    req.Contact,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao criar reserva: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar reserva"))
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservationId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Reserva não encontrada"))
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	date, err := req.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation.CustomerID = req.CustomerID
	reservation.Date = date
	reservation.TimeStart = req.TimeStart
	reservation.TimeEnd = req.TimeEnd
	reservation.People = req.People
	reservation.Status = req.Status
	reservation.TableID = req.TableID
	reservation.Contact = req.Contact
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar reserva %d: %v", reservation.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar reserva"))
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservationId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Reserva não encontrada"))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao remover reserva %d: %v", reservation.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao remover reserva"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": reservation.ID})
}
