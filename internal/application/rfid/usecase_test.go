package rfid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/rfid"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

const (
	tagConocido   = "E200-TEST-0001"
	productoID    = "00000000-0000-0000-0000-0000000000aa"
	estanteID     = "00000000-0000-0000-0000-0000000000bb"
	lectorEntrada = "esp32-puerta-1"
)

// memState estado "commiteado" de la base en memoria.
type memState struct {
	events     []*entity.RfidEvent
	stock      map[string]int    // productID -> qty
	storeStock map[[2]string]int // (productID, shelfID) -> qty
}

func newMemState() *memState {
	return &memState{
		stock:      make(map[string]int),
		storeStock: make(map[[2]string]int),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	c.events = append(c.events, s.events...)
	for k, v := range s.stock {
		c.stock[k] = v
	}
	for k, v := range s.storeStock {
		c.storeStock[k] = v
	}
	return c
}

// memEventRepo, memStockRepo y memStoreStockRepo operan sobre un memState
// (el clonado de la tx o el commiteado, según quién los construya).
type memEventRepo struct{ s *memState }

func (r *memEventRepo) Create(event *entity.RfidEvent) error {
	r.s.events = append(r.s.events, event)
	return nil
}
func (r *memEventRepo) ListRecent(limit int) ([]*entity.RfidEvent, error) {
	if limit > len(r.s.events) {
		limit = len(r.s.events)
	}
	out := make([]*entity.RfidEvent, 0, limit)
	for i := len(r.s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.events[i])
	}
	return out, nil
}
func (r *memEventRepo) ListRecentWithProduct(limit int) ([]*entity.RfidEventWithProduct, error) {
	return nil, nil
}

type memStockRepo struct{ s *memState }

func (r *memStockRepo) Get(productID string) (*entity.Stock, error) {
	qty, ok := r.s.stock[productID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, Quantity: qty}, nil
}
func (r *memStockRepo) IncrementBy(productID string, qty int) error {
	r.s.stock[productID] += qty
	return nil
}
func (r *memStockRepo) DecrementIfEnough(productID string, qty int) (bool, error) {
	if r.s.stock[productID] < qty {
		return false, nil
	}
	r.s.stock[productID] -= qty
	return true, nil
}

type memStoreStockRepo struct{ s *memState }

func (r *memStoreStockRepo) IncrementBy(productID, shelfID string, qty int) error {
	r.s.storeStock[[2]string{productID, shelfID}] += qty
	return nil
}
func (r *memStoreStockRepo) ListByShelf(shelfID string) ([]*entity.StoreStock, error) {
	var out []*entity.StoreStock
	for k, v := range r.s.storeStock {
		if k[1] == shelfID {
			out = append(out, &entity.StoreStock{ProductID: k[0], ShelfID: k[1], Quantity: v})
		}
	}
	return out, nil
}

// memTxRunner imita Commit/Rollback: la función recibe repos sobre un clon
// del estado; solo si retorna nil el clon reemplaza al estado commiteado.
type memTxRunner struct{ s *memState }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	eventRepo repository.RfidEventRepository,
	stockRepo repository.StockRepository,
	storeStockRepo repository.StoreStockRepository,
) error) error {
	work := t.s.clone()
	err := fn(&memEventRepo{s: work}, &memStockRepo{s: work}, &memStoreStockRepo{s: work})
	if err != nil {
		return err
	}
	*t.s = *work
	return nil
}

// memProductRepo catálogo fijo: un solo producto con tag conocido.
type memProductRepo struct{}

func (r *memProductRepo) Create(*entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if id == productoID {
		return &entity.Product{ID: productoID}, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetByRfidTag(tag string) (*entity.Product, error) {
	if tag == tagConocido {
		return &entity.Product{ID: productoID, Barcode: "123", Name: "Producto test"}, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (r *memProductRepo) ListWithStock(int, int) ([]*entity.ProductWithStock, error) {
	return nil, nil
}

// memPublisher registra lo difundido al feed en vivo.
type memPublisher struct {
	events  []*entity.RfidEvent
	nombres []string
}

func (p *memPublisher) PublishEvent(event *entity.RfidEvent, productName string) {
	p.events = append(p.events, event)
	p.nombres = append(p.nombres, productName)
}

func newTestUseCase() (*rfid.EventUseCase, *memState) {
	state := newMemState()
	uc := rfid.NewEventUseCase(&memTxRunner{s: state}, &memProductRepo{}, nil)
	return uc, state
}

func newTestUseCaseConFeed() (*rfid.EventUseCase, *memState, *memPublisher) {
	state := newMemState()
	pub := &memPublisher{}
	uc := rfid.NewEventUseCase(&memTxRunner{s: state}, &memProductRepo{}, pub)
	return uc, state, pub
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada a bodega
// ──────────────────────────────────────────────────────────────────────────────

// La primera entrada crea la fila de stock con la cantidad leída.
func TestStockEntry_PrimeraEntradaCreaStock(t *testing.T) {
	uc, state := newTestUseCase()

	err := uc.StockEntry(context.Background(), rfid.StockInput{
		RfidTag: tagConocido, Esp32ID: lectorEntrada, Qty: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, state.stock[productoID], "la primera entrada debe crear la cantidad")
	require.Len(t, state.events, 1, "debe registrarse exactamente un evento")
	assert.Equal(t, entity.EventTypeEntry, state.events[0].EventType)
	assert.Equal(t, entity.EventLocationStock, state.events[0].Location)
	assert.Equal(t, lectorEntrada, state.events[0].Esp32ID)
}

// Entradas sucesivas acumulan: qty final = suma de los deltas.
func TestStockEntry_EntradasSucesivasAcumulan(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()

	for _, qty := range []int{1, 5, 2} {
		require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: qty}))
	}

	assert.Equal(t, 8, state.stock[productoID])
	assert.Len(t, state.events, 3, "cada lectura deja su evento en el log")
}

// Tag sin producto registrado: ErrNotFound y nada persiste.
func TestStockEntry_TagDesconocidoRetornaNotFound(t *testing.T) {
	uc, state := newTestUseCase()

	err := uc.StockEntry(context.Background(), rfid.StockInput{RfidTag: "tag-desconocido", Qty: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, state.events, "sin producto no debe registrarse evento")
	assert.Empty(t, state.stock)
}

func TestStockEntry_QtyInvalidaRetornaInvalidInput(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.StockEntry(context.Background(), rfid.StockInput{RfidTag: tagConocido, Qty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.StockEntry(context.Background(), rfid.StockInput{RfidTag: tagConocido, Qty: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salida de bodega
// ──────────────────────────────────────────────────────────────────────────────

func TestStockExit_DecrementaYRegistraEvento(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 5}))

	err := uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Esp32ID: "esp32-salida", Qty: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, state.stock[productoID])
	require.Len(t, state.events, 2)
	assert.Equal(t, entity.EventTypeExit, state.events[1].EventType)
	assert.Equal(t, entity.EventLocationStock, state.events[1].Location)
}

// Stock insuficiente: ErrInsufficientStock, la cantidad queda intacta y el
// evento insertado dentro de la tx se descarta con el rollback.
func TestStockExit_InsuficienteRevierteEventoYStock(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 2}))

	err := uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 5})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, state.stock[productoID], "la cantidad no debe cambiar")
	assert.Len(t, state.events, 1, "el evento de la salida fallida no debe sobrevivir al rollback")
}

// Salida exacta: qty disponible == qty pedida deja el stock en cero.
func TestStockExit_CantidadExactaDejaCero(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 4}))

	require.NoError(t, uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 4}))
	assert.Equal(t, 0, state.stock[productoID])

	// La siguiente salida ya no tiene de dónde descontar.
	err := uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencia bodega -> estante
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreEntry_MueveCantidadEntreLibros(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 10}))

	err := uc.StoreEntry(ctx, rfid.StoreEntryInput{
		RfidTag: tagConocido, ShelfID: estanteID, Qty: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, state.stock[productoID], "la bodega pierde lo transferido")
	assert.Equal(t, 4, state.storeStock[[2]string{productoID, estanteID}], "el estante gana lo transferido")

	// Invariante de conservación: bodega + estantes == total ingresado.
	total := state.stock[productoID]
	for _, v := range state.storeStock {
		total += v
	}
	assert.Equal(t, 10, total)

	require.Len(t, state.events, 2)
	assert.Equal(t, entity.EventTypeEntry, state.events[1].EventType)
	assert.Equal(t, entity.EventLocationStore, state.events[1].Location)
}

// Bodega insuficiente: ninguno de los dos libros cambia y el evento se descarta.
func TestStoreEntry_InsuficienteEsTodoONada(t *testing.T) {
	uc, state := newTestUseCase()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 2}))

	err := uc.StoreEntry(ctx, rfid.StoreEntryInput{
		RfidTag: tagConocido, ShelfID: estanteID, Qty: 3,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, state.stock[productoID], "la bodega debe quedar intacta")
	assert.Empty(t, state.storeStock, "el estante no debe recibir nada")
	assert.Len(t, state.events, 1, "el evento de la transferencia fallida se revierte")
}

func TestStoreEntry_SinEstanteRetornaInvalidInput(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.StoreEntry(context.Background(), rfid.StoreEntryInput{
		RfidTag: tagConocido, ShelfID: "", Qty: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoreEntry_TagDesconocidoRetornaNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.StoreEntry(context.Background(), rfid.StoreEntryInput{
		RfidTag: "otro-tag", ShelfID: estanteID, Qty: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Feed en vivo
// ──────────────────────────────────────────────────────────────────────────────

// Cada lectura confirmada se difunde al feed con el nombre del producto.
func TestFeed_LecturaConfirmadaSeDifunde(t *testing.T) {
	uc, _, pub := newTestUseCaseConFeed()
	ctx := context.Background()

	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Esp32ID: lectorEntrada, Qty: 3}))
	require.NoError(t, uc.StoreEntry(ctx, rfid.StoreEntryInput{RfidTag: tagConocido, ShelfID: estanteID, Qty: 1}))
	require.NoError(t, uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 1}))

	require.Len(t, pub.events, 3)
	assert.Equal(t, entity.EventTypeEntry, pub.events[0].EventType)
	assert.Equal(t, entity.EventLocationStore, pub.events[1].Location)
	assert.Equal(t, entity.EventTypeExit, pub.events[2].EventType)
	assert.Equal(t, "Producto test", pub.nombres[0])
}

// Una transacción revertida no llega al feed: solo se difunde tras commit.
func TestFeed_RollbackNoSeDifunde(t *testing.T) {
	uc, state, pub := newTestUseCaseConFeed()
	ctx := context.Background()
	require.NoError(t, uc.StockEntry(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 2}))

	err := uc.StockExit(ctx, rfid.StockInput{RfidTag: tagConocido, Qty: 5})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, state.events, 1)
	assert.Len(t, pub.events, 1, "la salida revertida no debe difundirse")
}
