package live_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/pkg/logger"
)

const testOwner = "00000000-0000-0000-0000-000000000001"

func testHub(loads *atomic.Int64) *live.Hub {
	loader := func(_ context.Context, ownerID, collection string) (any, error) {
		if loads != nil {
			loads.Add(1)
		}
		return map[string]string{"owner": ownerID, "collection": collection}, nil
	}
	return live.NewHub(loader, logger.New(logger.Config{Env: "development", Level: "error"}))
}

func receive(t *testing.T, sub *live.Subscriber) live.Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.C():
		require.True(t, ok, "el canal no debe estar cerrado")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no llegó ningún snapshot")
		return live.Snapshot{}
	}
}

func TestHub_SubscribeEntregaSnapshotInicial(t *testing.T) {
	hub := testHub(nil)
	sub := hub.Subscribe(context.Background(), testOwner, []string{live.CollectionItems})
	defer hub.Unsubscribe(sub)

	snap := receive(t, sub)
	assert.Equal(t, live.CollectionItems, snap.Collection)
	assert.NotNil(t, snap.Data)
}

func TestHub_PublishReenviaLaColeccion(t *testing.T) {
	hub := testHub(nil)
	sub := hub.Subscribe(context.Background(), testOwner, []string{live.CollectionMovements})
	defer hub.Unsubscribe(sub)

	receive(t, sub) // snapshot inicial

	hub.Publish(testOwner, live.CollectionMovements)
	snap := receive(t, sub)
	assert.Equal(t, live.CollectionMovements, snap.Collection)
}

func TestHub_PublishFiltraPorDuenoYColeccion(t *testing.T) {
	var loads atomic.Int64
	hub := testHub(&loads)
	sub := hub.Subscribe(context.Background(), testOwner, []string{live.CollectionItems})
	defer hub.Unsubscribe(sub)

	receive(t, sub)
	initial := loads.Load()

	// Otro dueño y otra colección: el suscriptor no debe recibir nada y el
	// loader no debe ejecutarse (sin interesados no se recarga).
	hub.Publish("otro-dueno", live.CollectionItems)
	hub.Publish(testOwner, live.CollectionPartners)

	select {
	case snap := <-sub.C():
		t.Fatalf("snapshot inesperado de %s", snap.Collection)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Equal(t, initial, loads.Load())
}

func TestHub_UnsubscribeCierraElCanal(t *testing.T) {
	hub := testHub(nil)
	sub := hub.Subscribe(context.Background(), testOwner, []string{live.CollectionItems})
	receive(t, sub)

	hub.Unsubscribe(sub)

	_, ok := <-sub.C()
	assert.False(t, ok, "tras Unsubscribe el canal queda cerrado")

	// Publicar después de la baja no debe entrar en pánico
	hub.Publish(testOwner, live.CollectionItems)
	time.Sleep(50 * time.Millisecond)
}
