package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/utils"
)

// Eventos emitidos para o kanban e para a tela da cozinha.
const (
	EventOrderUpdate   = "order_update"
	EventKitchenUpdate = "kitchen_update"
	EventTableUpdate   = "table_update"
	EventStaffNotif    = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub guarda as conexões do kanban/cozinha (conn -> cargo).
type KDSHub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adiciona uma conexão ao hub com o cargo do usuário.
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = role
}

// UnregisterClient remove e fecha a conexão.
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate avisa o kanban que um pedido mudou de status.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastKitchenUpdate avisa a cozinha (pedidos entrando em preparo).
func BroadcastKitchenUpdate(order models.Order) {
	broadcast(Message{
		Event: EventKitchenUpdate,
		Data:  order,
	})
}

// BroadcastTableUpdate avisa mudança de status de mesa.
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  table,
	})
}

// BroadcastStaffNotification envia um aviso em texto para o salão.
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Erro ao serializar evento %s: %v", msg.Event, err)
		return
	}

	for conn := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Erro ao enviar evento para cliente: %v", err)
		}
	}
}
