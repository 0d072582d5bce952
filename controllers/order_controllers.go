package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/kds"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// ListOrders -> pedidos com itens e cliente; ?status filtra (a cozinha usa
// status=preparando).
func (oc *OrderController) ListOrders(c *gin.Context) {
	query := oc.DB.Preload("Items").Preload("Items.Product").Preload("Customer").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Status inválido"))
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao buscar pedidos: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao buscar pedidos"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID -> detalhe de um pedido.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items").Preload("Items.Product").Preload("Customer").
		First(&order, c.Param("orderId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Pedido não encontrado"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder -> cria pedido com itens. O total é recalculado aqui a partir
// dos preços vigentes dos produtos; totais enviados pelo cliente são
// ignorados.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Por favor, faça login."))
		return
	}
	userID := userIDInterface.(uint)

	type itemReq struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	var req struct {
		UnitID        uint      `json:"unit_id"`
		TableID       *uint     `json:"table_id"`
		CustomerID    *uint     `json:"customer_id"`
		PaymentMethod *string   `json:"payment_method"`
		Notes         *string   `json:"notes"`
		Items         []itemReq `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Pedido deve ter pelo menos um item"))
		return
	}

	var unit models.Unit
	if err := oc.DB.Where("active = ?", true).First(&unit, req.UnitID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Unidade não encontrada"))
		return
	}

	order := models.Order{
		UnitID:        req.UnitID,
		TableID:       req.TableID,
		CustomerID:    req.CustomerID,
		UserID:        userID,
		Status:        models.OrderNew,
		PaymentStatus: models.PaymentPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return errors.New("Quantidade deve ser positiva")
			}
			var product models.Product
			if err := tx.Where("active = ?", true).First(&product, item.ProductID).Error; err != nil {
				return errors.New("Produto não encontrado")
			}

			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			total += float64(item.Quantity) * product.Price
		}

		order.Total = total
		return tx.Save(&order).Error
	})
	if err != nil {
		if err.Error() == "Produto não encontrado" || err.Error() == "Quantidade deve ser positiva" {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Erro ao criar pedido: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao criar pedido"))
		return
	}

	if err := oc.DB.Preload("Items").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao recarregar pedido %d: %v", order.ID, err)
	}

	kds.BroadcastOrderUpdate(order)
	utils.InfoLogger.Printf("Pedido %d criado (unidade=%d, total=%s)", order.ID, order.UnitID, utils.FormatCurrency(order.Total))
	c.JSON(http.StatusCreated, order)
}

// AdvanceOrder -> avanço estrito no pipeline (botão da cozinha). Falha com
// 400 quando o pedido já está entregue ou cancelado.
func (oc *OrderController) AdvanceOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("orderId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Pedido não encontrado"))
		return
	}

	next, err := models.NextOrderStatus(order.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order.Status = next
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao avançar pedido %d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar pedido"))
		return
	}

	oc.broadcastStatusChange(order)
	c.JSON(http.StatusOK, order)
}

// SetOrderStatus -> reatribuição arbitrária usada pelo kanban; aceita
// qualquer status do conjunto, inclusive retrocessos e cancelamento. Corpo
// sem status vale como avanço estrito, que é como o balcão dispara a
// transição.
func (oc *OrderController) SetOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errBadRequest)
		return
	}
	if body.Status != "" && !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Status inválido"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, c.Param("orderId")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Pedido não encontrado"))
		return
	}

	if body.Status == "" {
		next, err := models.NextOrderStatus(order.Status)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		body.Status = next
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.ErrorLogger.Printf("Erro ao atualizar pedido %d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Erro ao atualizar pedido"))
		return
	}

	oc.broadcastStatusChange(order)
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) broadcastStatusChange(order models.Order) {
	kds.BroadcastOrderUpdate(order)

	switch order.Status {
	case models.OrderPreparing:
		kds.BroadcastKitchenUpdate(order)
	case models.OrderReady:
		kds.BroadcastStaffNotification(fmt.Sprintf("Pedido #%d pronto para entrega", order.ID))
	case models.OrderDelivered:
		kds.BroadcastStaffNotification(fmt.Sprintf("Pedido #%d entregue: %s", order.ID, utils.FormatCurrency(order.Total)))
	}

	utils.InfoLogger.Printf("Pedido %d agora em %s", order.ID, order.Status)
}
