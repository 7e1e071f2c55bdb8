package hub

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// EventSource, oda olaylarının okunduğu pub/sub kaynağı.
type EventSource interface {
	Subscribe(ctx context.Context, roomName string) *redis.PubSub
}

// Hub, websocket istemcilerini oda bazında tutar ve redis kanalından gelen
// olayları odadaki bütün bağlantılara iletir. Olaylar hub'a yalnızca redis
// üzerinden girer; böylece birden fazla servis örneğinde de tek akış vardır.
type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]bool
	subscribers map[string]*redis.PubSub

	events EventSource
}

func NewHub(events EventSource) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]bool),
		subscribers: make(map[string]*redis.PubSub),
		events:      events,
	}
}

// Register, bağlantıyı odaya ekler. Odanın ilk istemcisi redis aboneliğini
// başlatır.
func (h *Hub) Register(roomName string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomName]
	if !ok {
		clients = make(map[*websocket.Conn]bool)
		h.rooms[roomName] = clients
		h.startSubscriberLocked(roomName)
	}
	clients[conn] = true
}

// Unregister, bağlantıyı odadan düşürür. Son istemci ayrıldığında redis
// aboneliği de kapanır.
func (h *Hub) Unregister(roomName string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomName]
	if !ok {
		return
	}
	delete(clients, conn)
	if len(clients) == 0 {
		delete(h.rooms, roomName)
		if pubsub, ok := h.subscribers[roomName]; ok {
			pubsub.Close()
			delete(h.subscribers, roomName)
		}
	}
}

// ClientCount, odadaki bağlı istemci sayısını döndürür.
func (h *Hub) ClientCount(roomName string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomName])
}

func (h *Hub) startSubscriberLocked(roomName string) {
	if h.events == nil {
		return
	}
	if _, ok := h.subscribers[roomName]; ok {
		return
	}

	pubsub := h.events.Subscribe(context.Background(), roomName)
	h.subscribers[roomName] = pubsub

	go func() {
		log.Printf("Subscribed to events for room '%s'", roomName)
		for msg := range pubsub.Channel() {
			h.broadcast(roomName, []byte(msg.Payload))
		}
		log.Printf("Unsubscribed from events for room '%s'", roomName)
	}()
}

// broadcast, ham olay yükünü odadaki bütün bağlantılara yazar. Yazılamayan
// bağlantı kopmuş sayılır ve düşürülür.
func (h *Hub) broadcast(roomName string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[roomName] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Dropping dead connection in room '%s': %v", roomName, err)
			conn.Close()
			delete(h.rooms[roomName], conn)
		}
	}
}
