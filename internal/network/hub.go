package network

import (
	"sync"

	"github.com/Logta/aco-simulation/pkg/api"
)

// Broadcaster занимается только рассылкой снимков подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ViewerID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для зрителя
func (b *Broadcaster) Register(viewerID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем (повторное подключение той же вкладки)
	if old, ok := b.subscribers[viewerID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[viewerID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(viewerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[viewerID]; ok {
		close(ch)
		delete(b.subscribers, viewerID)
	}
}

// SendTo отправляет снимок конкретному зрителю (Unicast)
func (b *Broadcaster) SendTo(viewerID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[viewerID]; ok {
		select {
		case ch <- msg:
		default:
			// Медленный клиент: кадр дропаем, следующий снимок все
			// равно полный
		}
	}
}

// HasSubscriber проверяет, подключен ли зритель
func (b *Broadcaster) HasSubscriber(viewerID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[viewerID]
	return ok
}

// ViewerIDs возвращает список активных подписчиков.
func (b *Broadcaster) ViewerIDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.subscribers))
	for id := range b.subscribers {
		ids = append(ids, id)
	}
	return ids
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
