// Package ws difunde en vivo los eventos RFID confirmados a los clientes
// WebSocket del dashboard de administración.
package ws

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
)

// EventMessage payload que reciben los suscriptores por cada evento RFID.
type EventMessage struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	EventType   string    `json:"eventType"`
	Location    string    `json:"location"`
	Esp32ID     string    `json:"esp32Id"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Hub mantiene los suscriptores y reparte cada evento publicado a todos.
// Toda la coordinación pasa por canales; el estado vive en Run.
type Hub struct {
	register   chan chan EventMessage
	unregister chan chan EventMessage
	broadcast  chan EventMessage
}

// NewHub construye el hub. Llamar a Run en una goroutine antes de usarlo.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan chan EventMessage),
		unregister: make(chan chan EventMessage),
		broadcast:  make(chan EventMessage, 64),
	}
}

// Run atiende altas, bajas y difusión. Corre durante toda la vida del proceso.
func (h *Hub) Run() {
	subs := make(map[chan EventMessage]struct{})
	for {
		select {
		case ch := <-h.register:
			subs[ch] = struct{}{}
		case ch := <-h.unregister:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}
		case msg := <-h.broadcast:
			for ch := range subs {
				select {
				case ch <- msg:
				default:
					// Suscriptor saturado: pierde este mensaje, no frena al resto.
				}
			}
		}
	}
}

// Subscribe da de alta un suscriptor y devuelve su canal de mensajes.
func (h *Hub) Subscribe() chan EventMessage {
	ch := make(chan EventMessage, 16)
	h.register <- ch
	return ch
}

// Unsubscribe da de baja al suscriptor; el hub cierra su canal.
func (h *Hub) Unsubscribe(ch chan EventMessage) {
	h.unregister <- ch
}

// PublishEvent publica un evento RFID confirmado. Nunca bloquea: si el hub
// está saturado el mensaje se descarta (el feed es best-effort, el log
// persistente vive en rfid_events).
func (h *Hub) PublishEvent(event *entity.RfidEvent, productName string) {
	msg := EventMessage{
		ID:          event.ID,
		ProductID:   event.ProductID,
		ProductName: productName,
		EventType:   event.EventType,
		Location:    event.Location,
		Esp32ID:     event.Esp32ID,
		CreatedAt:   event.CreatedAt,
	}
	select {
	case h.broadcast <- msg:
	default:
	}
}

// UpgradeRequired middleware: solo deja pasar peticiones de upgrade WebSocket.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler atiende una conexión WebSocket: reenvía cada evento difundido como
// JSON hasta que el cliente cierra o la escritura falla.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		sub := h.Subscribe()
		defer h.Unsubscribe(sub)

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				if err := c.WriteJSON(msg); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	})
}
