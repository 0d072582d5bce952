package models

import "errors"

// Pipeline de preparo: novo -> preparando -> pronto -> entregue.
// "cancelado" é terminal e só é alcançado via reatribuição direta (kanban).
const (
	OrderNew       = "novo"
	OrderPreparing = "preparando"
	OrderReady     = "pronto"
	OrderDelivered = "entregue"
	OrderCancelled = "cancelado"
)

var orderPipeline = []string{OrderNew, OrderPreparing, OrderReady, OrderDelivered}

var (
	ErrOrderDelivered    = errors.New("pedido já foi entregue")
	ErrOrderCancelled    = errors.New("pedido cancelado não pode avançar")
	ErrUnknownOrderState = errors.New("status de pedido desconhecido")
)

// ValidOrderStatus aceita qualquer status do conjunto fixo, incluindo
// cancelado (usado pela reatribuição do kanban).
func ValidOrderStatus(status string) bool {
	if status == OrderCancelled {
		return true
	}
	for _, s := range orderPipeline {
		if s == status {
			return true
		}
	}
	return false
}

// NextOrderStatus calcula o sucessor estrito no pipeline. Pedidos entregues
// ou cancelados não avançam.
func NextOrderStatus(current string) (string, error) {
	if current == OrderCancelled {
		return "", ErrOrderCancelled
	}
	for i, s := range orderPipeline {
		if s != current {
			continue
		}
		if i == len(orderPipeline)-1 {
			return "", ErrOrderDelivered
		}
		return orderPipeline[i+1], nil
	}
	return "", ErrUnknownOrderState
}
