package live

// Colecciones observables por las vistas en vivo.
const (
	CollectionItems     = "items"
	CollectionMovements = "movements"
	CollectionSerials   = "serials"
	CollectionPartners  = "partners"
)

// Broadcaster es el puerto que los casos de uso invocan tras cada escritura
// persistida para que las vistas suscritas se refresquen. El contrato de
// consumo es "vista eventualmente consistente": el hub reenvía el resultado
// completo de la colección, no cada escritura individual.
type Broadcaster interface {
	Publish(ownerID, collection string)
}

// NopBroadcaster implementación nula para tests y arranques sin vistas en vivo.
type NopBroadcaster struct{}

// Publish no hace nada.
func (NopBroadcaster) Publish(string, string) {}
