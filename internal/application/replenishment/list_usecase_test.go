package replenishment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/application/replenishment"
	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes adicionales para listas
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	unitsByProduct map[int]int
	lastByProduct  map[int]time.Time
}

func (f *fakeSalesRepo) UnitsSoldByProductSince(_ context.Context, _ int, _ time.Time) (map[int]int, error) {
	return f.unitsByProduct, nil
}

func (f *fakeSalesRepo) LastSaleAtByProduct(_ context.Context, _ int) (map[int]time.Time, error) {
	return f.lastByProduct, nil
}

type fakeStoreRepo struct {
	stores map[int]*entity.Store
}

func (f *fakeStoreRepo) GetByID(_ context.Context, storeID int) (*entity.Store, error) {
	if s, ok := f.stores[storeID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

type fakeListRepo struct {
	lists      map[int]*entity.ReplenishmentList
	items      map[int]*entity.ReplenishmentListItem
	nextListID int
	nextItemID int
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists: make(map[int]*entity.ReplenishmentList),
		items: make(map[int]*entity.ReplenishmentListItem),
	}
}

func (f *fakeListRepo) CreateList(_ context.Context, list *entity.ReplenishmentList) error {
	for _, l := range f.lists {
		if l.StoreID == list.StoreID && sameDate(l.ListDate, list.ListDate) {
			return domain.ErrDuplicate
		}
	}
	f.nextListID++
	list.ID = f.nextListID
	cp := *list
	f.lists[list.ID] = &cp
	return nil
}

func (f *fakeListRepo) GetListByStoreDate(_ context.Context, storeID int, listDate time.Time) (*entity.ReplenishmentList, error) {
	for _, l := range f.lists {
		if l.StoreID == storeID && sameDate(l.ListDate, listDate) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeListRepo) AddItem(_ context.Context, item *entity.ReplenishmentListItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeListRepo) ItemsByList(_ context.Context, listID int) ([]*entity.ReplenishmentListItem, error) {
	var out []*entity.ReplenishmentListItem
	for id := 1; id <= f.nextItemID; id++ {
		if it, ok := f.items[id]; ok && it.ListID == listID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeListRepo) GetItem(_ context.Context, itemID int) (*entity.ReplenishmentListItem, error) {
	if it, ok := f.items[itemID]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeListRepo) UpdateItem(_ context.Context, item *entity.ReplenishmentListItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: producto 10 quebrado con cadencia vencida, producto 20 saludable,
// producto 30 quebrado sin cadencia, producto 40 con cadencia vencida pero
// sin filas de stock, producto 50 con cadencia huérfana (sin catálogo)
// ──────────────────────────────────────────────────────────────────────────────

type listFixture struct {
	stock   *fakeStockRepo
	cad     *fakeCadenceRepo
	lists   *fakeListRepo
	catalog *fakeProductRepo
	uc      *replenishment.ListUseCase
}

func newListFixture(t *testing.T) *listFixture {
	t.Helper()
	batches := map[int]*entity.Batch{
		1: {ID: 1, ProductID: 10, BatchCode: "B-010"},
		2: {ID: 2, ProductID: 20, BatchCode: "B-020"},
		3: {ID: 3, ProductID: 30, BatchCode: "B-030"},
	}
	products := map[int]*entity.Product{
		10: {ID: 10, Name: "Arroz 1kg", IsActive: true},
		20: {ID: 20, Name: "Frijol 500g", IsActive: true},
		30: {ID: 30, Name: "Café molido", IsActive: true},
		40: {ID: 40, Name: "Aceite 1L", IsActive: true},
	}
	stock := &fakeStockRepo{
		batches:  batches,
		products: products,
		levels: map[pairKey]*entity.StockLevel{
			{testStoreID, 1}: {StoreID: testStoreID, BatchID: 1, Quantity: 0, ReorderLevel: 10},
			{testStoreID, 2}: {StoreID: testStoreID, BatchID: 2, Quantity: 40, ReorderLevel: 10},
			{testStoreID, 3}: {StoreID: testStoreID, BatchID: 3, Quantity: 0, ReorderLevel: 5},
		},
	}
	lastWeek := time.Now().AddDate(0, 0, -7)
	yesterday := time.Now().AddDate(0, 0, -1)
	cad := &fakeCadenceRepo{cadences: map[pairKey]*entity.ReplenishmentCadence{
		{10, testStoreID}: {ID: 1, ProductID: 10, StoreID: testStoreID, FrequencyDays: 2, LastReplenishmentDate: &lastWeek},
		{20, testStoreID}: {ID: 2, ProductID: 20, StoreID: testStoreID, FrequencyDays: 3, LastReplenishmentDate: &yesterday},
		{40, testStoreID}: {ID: 3, ProductID: 40, StoreID: testStoreID, FrequencyDays: 1, LastReplenishmentDate: &lastWeek},
		{50, testStoreID}: {ID: 4, ProductID: 50, StoreID: testStoreID, FrequencyDays: 1, LastReplenishmentDate: &lastWeek},
	}}
	lists := newFakeListRepo()
	stores := &fakeStoreRepo{stores: map[int]*entity.Store{testStoreID: {ID: testStoreID, Name: "Tienda Centro"}}}
	sales := &fakeSalesRepo{unitsByProduct: map[int]int{10: 60, 30: 30}} // 2/día y 1/día en W=30
	catalog := &fakeProductRepo{products: products}

	uc := replenishment.NewListUseCase(stock, sales, cad, lists, catalog, stores, domstock.DefaultPolicy())
	return &listFixture{stock: stock, cad: cad, lists: lists, catalog: catalog, uc: uc}
}

func findDailyItem(items []dto.DailyListItem, productID int) *dto.DailyListItem {
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i]
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Lista diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestDailyList_QuebradoYVencido(t *testing.T) {
	f := newListFixture(t)

	items, err := f.uc.DailyList(context.Background(), testStoreID)
	require.NoError(t, err)

	item := findDailyItem(items, 10)
	require.NotNil(t, item, "el producto quebrado con cadencia vencida debe aparecer")
	assert.Equal(t, "Out of stock & Frequency due", item.Reason)
	assert.Equal(t, string(domstock.PriorityHigh), item.Priority)
	require.NotNil(t, item.Quantity)
	// avg 2/día * 2 días de frecuencia - 0 en stock = 4.
	assert.Equal(t, 4, *item.Quantity)
}

func TestDailyList_SaludableDentroDeCadencia_NoAparece(t *testing.T) {
	f := newListFixture(t)

	items, err := f.uc.DailyList(context.Background(), testStoreID)
	require.NoError(t, err)

	assert.Nil(t, findDailyItem(items, 20),
		"con stock y cadencia al día el producto no entra en la lista")
}

// Un producto quebrado sin cadencia configurada también entra, estimado con
// la frecuencia máxima.
func TestDailyList_QuebradoSinCadencia_Incluido(t *testing.T) {
	f := newListFixture(t)

	items, err := f.uc.DailyList(context.Background(), testStoreID)
	require.NoError(t, err)

	item := findDailyItem(items, 30)
	require.NotNil(t, item)
	assert.Equal(t, "Out of stock", item.Reason)
	assert.Equal(t, string(domstock.PriorityHigh), item.Priority)
	assert.Nil(t, item.FrequencyDays)
	require.NotNil(t, item.Quantity)
	// avg 1/día * 3 (frecuencia máxima) - 0 = 3.
	assert.Equal(t, 3, *item.Quantity)
}

// Una cadencia de un producto sin filas de stock en la tienda resuelve el
// nombre desde el catálogo; si el producto no existe, el renglón se omite.
func TestDailyList_CadenciaSinFilasDeStock_NombreDelCatalogo(t *testing.T) {
	f := newListFixture(t)

	items, err := f.uc.DailyList(context.Background(), testStoreID)
	require.NoError(t, err)

	item := findDailyItem(items, 40)
	require.NotNil(t, item, "la cadencia vencida sin stock debe aparecer")
	assert.Equal(t, "Aceite 1L", item.ProductName)
	assert.Equal(t, 0, item.CurrentStock)

	assert.Nil(t, findDailyItem(items, 50),
		"una cadencia de un producto fuera del catálogo se omite")
}

// Sin historial de ventas la cantidad queda en null, nunca un error.
func TestDailyList_SinVentas_CantidadNula(t *testing.T) {
	f := newListFixture(t)
	sales := &fakeSalesRepo{unitsByProduct: map[int]int{}}
	stores := &fakeStoreRepo{stores: map[int]*entity.Store{testStoreID: {ID: testStoreID}}}
	uc := replenishment.NewListUseCase(f.stock, sales, f.cad, f.lists, f.catalog, stores, domstock.DefaultPolicy())

	items, err := uc.DailyList(context.Background(), testStoreID)
	require.NoError(t, err)

	item := findDailyItem(items, 10)
	require.NotNil(t, item)
	assert.Nil(t, item.Quantity, "sin ventas no hay estimación de cantidad")
}

func TestDailyList_TiendaInexistente_NotFound(t *testing.T) {
	f := newListFixture(t)

	_, err := f.uc.DailyList(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listas gestionadas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_MaterializaLaListaDiaria(t *testing.T) {
	f := newListFixture(t)
	listDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	out, err := f.uc.Generate(context.Background(), testStoreID, listDate)
	require.NoError(t, err)

	assert.Equal(t, entity.ListStatusDraft, out.Status)
	assert.Len(t, out.Items, 3, "productos 10, 30 y 40; el 50 se omite")
}

func TestGenerate_Duplicada_ErrDuplicate(t *testing.T) {
	f := newListFixture(t)
	ctx := context.Background()
	listDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Generate(ctx, testStoreID, listDate)
	require.NoError(t, err)

	_, err = f.uc.Generate(ctx, testStoreID, listDate)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGet_ListaInexistente_NotFound(t *testing.T) {
	f := newListFixture(t)

	_, err := f.uc.Get(context.Background(), testStoreID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Override de renglón: autorización por rol
// ──────────────────────────────────────────────────────────────────────────────

func overrideFixtureItem(t *testing.T, f *listFixture) int {
	t.Helper()
	out, err := f.uc.Generate(context.Background(), testStoreID, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out.Items)
	return out.Items[0].ItemID
}

func TestOverrideItem_EmployeeRechazado(t *testing.T) {
	f := newListFixture(t)
	itemID := overrideFixtureItem(t, f)
	before, err := f.lists.GetItem(context.Background(), itemID)
	require.NoError(t, err)

	_, err = f.uc.OverrideItem(context.Background(), employee, itemID, dto.OverrideItemRequest{
		Quantity: 99, Reason: "Manual", Priority: "High",
	})
	assert.ErrorIs(t, err, domain.ErrAuthorization)

	after, err := f.lists.GetItem(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, before.Quantity, after.Quantity, "el renglón no debe mutar")
}

func TestOverrideItem_ManagerConJustificacion(t *testing.T) {
	f := newListFixture(t)
	itemID := overrideFixtureItem(t, f)

	out, err := f.uc.OverrideItem(context.Background(), manager, itemID, dto.OverrideItemRequest{
		Quantity: 25, Reason: "Promoción de fin de semana", Priority: "High", Notes: "confirmado con el proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, out.Quantity)
	assert.Equal(t, "Promoción de fin de semana", out.Reason)
	assert.Equal(t, "High", out.Priority)
}

func TestOverrideItem_ManagerSinJustificacion_InvalidInput(t *testing.T) {
	f := newListFixture(t)
	itemID := overrideFixtureItem(t, f)

	_, err := f.uc.OverrideItem(context.Background(), manager, itemID, dto.OverrideItemRequest{Quantity: 25})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.OverrideItem(context.Background(), manager, itemID, dto.OverrideItemRequest{
		Quantity: -1, Reason: "x", Priority: "High",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa no es válida")
}

func TestOverrideItem_RenglonInexistente_NotFound(t *testing.T) {
	f := newListFixture(t)

	_, err := f.uc.OverrideItem(context.Background(), manager, 999, dto.OverrideItemRequest{
		Quantity: 1, Reason: "x", Priority: "Low",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
