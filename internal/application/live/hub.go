package live

import (
	"context"
	"sync"

	"github.com/partes-app/partes-api/pkg/logger"
)

// Snapshot es el resultado completo actual de una colección para un dueño.
type Snapshot struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
}

// Loader consulta el resultado completo de una colección para un dueño.
// Se cablea en main con los repositorios reales.
type Loader func(ctx context.Context, ownerID, collection string) (any, error)

// Subscriber recibe snapshots de las colecciones a las que está suscrito.
type Subscriber struct {
	ownerID     string
	collections map[string]struct{}
	ch          chan Snapshot
}

// C devuelve el canal de snapshots del suscriptor.
func (s *Subscriber) C() <-chan Snapshot { return s.ch }

// Hub mantiene los suscriptores de vistas en vivo y reenvía, en cada cambio,
// el resultado completo de la colección afectada. Implementa Broadcaster.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscriber]struct{}
	loader Loader
	log    *logger.Logger
}

var _ Broadcaster = (*Hub)(nil)

// NewHub construye el hub con el loader de colecciones.
func NewHub(loader Loader, log *logger.Logger) *Hub {
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		loader: loader,
		log:    log,
	}
}

// Subscribe registra un suscriptor para las colecciones dadas y le envía el
// snapshot inicial de cada una.
func (h *Hub) Subscribe(ctx context.Context, ownerID string, collections []string) *Subscriber {
	sub := &Subscriber{
		ownerID:     ownerID,
		collections: make(map[string]struct{}, len(collections)),
		ch:          make(chan Snapshot, 16),
	}
	for _, c := range collections {
		sub.collections[c] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	for c := range sub.collections {
		data, err := h.loader(ctx, ownerID, c)
		if err != nil {
			h.log.Error().Err(err).Str("collection", c).Msg("snapshot inicial de vista en vivo")
			continue
		}
		sub.ch <- Snapshot{Collection: c, Data: data}
	}
	return sub
}

// Unsubscribe retira el suscriptor y cierra su canal.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// Publish recarga la colección del dueño y la reparte a sus suscriptores.
// El envío es no bloqueante: si el buffer de un suscriptor está lleno se
// descarta este snapshot; uno posterior lo dejará igualmente al día.
func (h *Hub) Publish(ownerID, collection string) {
	go h.push(ownerID, collection)
}

func (h *Hub) push(ownerID, collection string) {
	h.mu.RLock()
	interested := make([]*Subscriber, 0)
	for sub := range h.subs {
		if sub.ownerID != ownerID {
			continue
		}
		if _, ok := sub.collections[collection]; ok {
			interested = append(interested, sub)
		}
	}
	h.mu.RUnlock()

	if len(interested) == 0 {
		return
	}

	data, err := h.loader(context.Background(), ownerID, collection)
	if err != nil {
		h.log.Error().Err(err).Str("collection", collection).Msg("recargar colección para vistas en vivo")
		return
	}

	// Los envíos van bajo RLock para que Unsubscribe (que cierra el canal
	// bajo Lock) no pueda correr en paralelo con un envío.
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range interested {
		if _, ok := h.subs[sub]; !ok {
			continue
		}
		select {
		case sub.ch <- Snapshot{Collection: collection, Data: data}:
		default:
		}
	}
}
