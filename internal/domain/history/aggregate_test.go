package history_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/history"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func product(id, name, category, unit string, opening float64, createdAt time.Time) history.Product {
	return history.Product{
		ID:           id,
		Name:         name,
		CategoryName: category,
		Unit:         unit,
		OpeningStock: dec(opening),
		CreatedAt:    createdAt,
	}
}

func movement(productID, typ string, qty float64, at time.Time) history.Movement {
	return history.Movement{
		ProductID: productID,
		Type:      typ,
		Quantity:  dec(qty),
		CreatedAt: at,
	}
}

// findWeek localiza una semana por etiqueta dentro de un mes.
func findWeek(t *testing.T, m history.MonthHistory, label string) *history.WeekHistory {
	t.Helper()
	for _, w := range m.Weeks {
		if w.Week == label {
			return w
		}
	}
	require.Failf(t, "semana no encontrada", "%s no está en %s", label, m.Month)
	return nil
}

// findProduct localiza la celda de un producto dentro de una semana, por nombre
// de categoría y id de producto.
func findProduct(t *testing.T, w *history.WeekHistory, category, productID string) *history.ProductSummary {
	t.Helper()
	for _, c := range w.Categories {
		if c.Name != category {
			continue
		}
		for _, p := range c.Products {
			if p.ID == productID {
				return p
			}
		}
	}
	require.Failf(t, "producto no encontrado", "%s/%s no está en %s", category, productID, w.Week)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: Flour, diciembre 2024
//
// Apertura 10kg el 3 dic, entrada 5kg el 5 dic, salida 3kg el 10 dic.
// Semana 1 (días 1–7):  added=15 (10 apertura + 5 entrada), cleared=0, balance 15.
// Semana 2 (días 8–14): added=0, cleared=3, balance 12.
// ──────────────────────────────────────────────────────────────────────────────

func flourScenario() ([]history.Product, []history.Movement) {
	products := []history.Product{
		product("p-flour", "Flour", "Flour", "kg", 10, day(2024, time.December, 3)),
	}
	movements := []history.Movement{
		movement("p-flour", entity.MovementTypeIN, 5, day(2024, time.December, 5)),
		movement("p-flour", entity.MovementTypeOUT, 3, day(2024, time.December, 10)),
	}
	return products, movements
}

func TestAggregate_EscenarioFlour(t *testing.T) {
	result := history.Aggregate(flourScenario())

	require.Len(t, result, 1)
	month := result[0]
	assert.Equal(t, "December 2024", month.Month)

	// Semanas del mes invertidas: la más reciente primero.
	require.Len(t, month.Weeks, 2)
	assert.Equal(t, "Week 2", month.Weeks[0].Week)
	assert.Equal(t, "Week 1", month.Weeks[1].Week)

	week1 := findWeek(t, month, "Week 1")
	cell1 := findProduct(t, week1, "Flour", "p-flour")
	assert.True(t, cell1.Added.Equal(dec(15)), "added semana 1: %s", cell1.Added)
	assert.True(t, cell1.Cleared.Equal(decimal.Zero), "cleared semana 1: %s", cell1.Cleared)
	assert.True(t, cell1.EndBalance.Equal(dec(15)), "balance semana 1: %s", cell1.EndBalance)
	assert.Equal(t, "kg", cell1.Unit)

	week2 := findWeek(t, month, "Week 2")
	cell2 := findProduct(t, week2, "Flour", "p-flour")
	assert.True(t, cell2.Added.Equal(decimal.Zero), "added semana 2: %s", cell2.Added)
	assert.True(t, cell2.Cleared.Equal(dec(3)), "cleared semana 2: %s", cell2.Cleared)
	assert.True(t, cell2.EndBalance.Equal(dec(12)), "balance semana 2: %s", cell2.EndBalance)
}

// El motor es una función pura: mismas entradas, mismo reporte, siempre.
func TestAggregate_Determinista(t *testing.T) {
	products, movements := flourScenario()

	first := history.Aggregate(products, movements)
	second := history.Aggregate(products, movements)

	assert.Equal(t, first, second, "dos llamadas con el mismo input deben producir el mismo reporte")
}

func TestAggregate_SinDatos_ReporteVacio(t *testing.T) {
	result := history.Aggregate(nil, nil)
	assert.Empty(t, result)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de construcción de la línea de tiempo
// ──────────────────────────────────────────────────────────────────────────────

// Los movimientos ADJUSTMENT no entran al histórico: ni a added, ni a cleared,
// ni al balance. Comportamiento heredado del sistema; este test lo fija para
// que un cambio futuro sea deliberado.
func TestAggregate_AdjustmentExcluidoDelHistorico(t *testing.T) {
	products := []history.Product{
		product("p1", "Rice", "Grains", "kg", 10, day(2025, time.March, 2)),
	}
	movements := []history.Movement{
		movement("p1", entity.MovementTypeADJUSTMENT, 99, day(2025, time.March, 3)),
	}

	result := history.Aggregate(products, movements)

	require.Len(t, result, 1)
	week := findWeek(t, result[0], "Week 1")
	cell := findProduct(t, week, "Grains", "p1")
	assert.True(t, cell.Added.Equal(dec(10)), "solo la apertura debe contar: %s", cell.Added)
	assert.True(t, cell.Cleared.Equal(decimal.Zero))
	assert.True(t, cell.EndBalance.Equal(dec(10)), "el ajuste no debe tocar el balance: %s", cell.EndBalance)
}

// Un movimiento cuyo producto ya no existe se descarta en silencio: el reporte
// degradado es preferible a fallar una consulta de revisión humana.
func TestAggregate_MovimientoHuerfanoDescartado(t *testing.T) {
	products := []history.Product{
		product("p1", "Rice", "Grains", "kg", 10, day(2025, time.March, 2)),
	}
	movements := []history.Movement{
		movement("p-borrado", entity.MovementTypeIN, 50, day(2025, time.March, 3)),
	}

	result := history.Aggregate(products, movements)

	require.Len(t, result, 1)
	week := findWeek(t, result[0], "Week 1")
	require.Len(t, week.Categories, 1)
	require.Len(t, week.Categories[0].Products, 1)
	cell := week.Categories[0].Products[0]
	assert.Equal(t, "p1", cell.ID)
	assert.True(t, cell.EndBalance.Equal(dec(10)))
}

// Producto sin categoría resuelta → agrupa bajo "Uncategorized".
func TestAggregate_SinCategoria_Uncategorized(t *testing.T) {
	products := []history.Product{
		product("p1", "Mystery", "", "unit", 4, day(2025, time.January, 15)),
	}

	result := history.Aggregate(products, nil)

	require.Len(t, result, 1)
	week := findWeek(t, result[0], "Week 3")
	cell := findProduct(t, week, history.UncategorizedLabel, "p1")
	assert.True(t, cell.Added.Equal(dec(4)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Bucketing calendario: semana = ceil(día/7), nunca semanas ISO
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_LimitesDeSemana(t *testing.T) {
	cases := []struct {
		dayOfMonth int
		week       string
	}{
		{1, "Week 1"},
		{7, "Week 1"},
		{8, "Week 2"},
		{14, "Week 2"},
		{15, "Week 3"},
		{28, "Week 4"},
		{29, "Week 5"},
		{31, "Week 5"},
	}
	for _, tc := range cases {
		products := []history.Product{
			product("p1", "Sugar", "Others", "kg", 1, day(2025, time.January, tc.dayOfMonth)),
		}
		result := history.Aggregate(products, nil)
		require.Len(t, result, 1)
		require.Len(t, result[0].Weeks, 1)
		assert.Equal(t, tc.week, result[0].Weeks[0].Week,
			"día %d debe caer en %s", tc.dayOfMonth, tc.week)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance acumulado y deltas por celda
// ──────────────────────────────────────────────────────────────────────────────

// Varios eventos del mismo producto en la misma semana: added/cleared acumulan
// los deltas de la celda y EndBalance queda en el valor del último evento.
func TestAggregate_DeltasDeCeldaAcumulan(t *testing.T) {
	products := []history.Product{
		product("p1", "Oil", "Others", "litre", 20, day(2025, time.May, 1)),
	}
	movements := []history.Movement{
		movement("p1", entity.MovementTypeIN, 5, day(2025, time.May, 2)),
		movement("p1", entity.MovementTypeIN, 2, day(2025, time.May, 3)),
		movement("p1", entity.MovementTypeOUT, 1, day(2025, time.May, 4)),
	}

	result := history.Aggregate(products, movements)

	week := findWeek(t, result[0], "Week 1")
	cell := findProduct(t, week, "Others", "p1")
	assert.True(t, cell.Added.Equal(dec(27)), "20 apertura + 5 + 2: %s", cell.Added)
	assert.True(t, cell.Cleared.Equal(dec(1)))
	assert.True(t, cell.EndBalance.Equal(dec(26)))
}

// EndBalance es un snapshot que arrastra el acumulado entre buckets: la celda
// de un mes posterior parte del balance que dejó el anterior, y reproducir los
// eventos en orden con sumas firmadas da exactamente el EndBalance del bucket
// que contiene el último evento.
func TestAggregate_BalanceContinuaEntreMeses(t *testing.T) {
	products := []history.Product{
		product("p1", "Flour", "Flour", "kg", 100, day(2024, time.November, 20)),
	}
	movements := []history.Movement{
		movement("p1", entity.MovementTypeOUT, 30, day(2024, time.November, 25)),
		movement("p1", entity.MovementTypeIN, 10, day(2024, time.December, 2)),
		movement("p1", entity.MovementTypeOUT, 5, day(2024, time.December, 9)),
	}

	result := history.Aggregate(products, movements)

	// Más reciente primero.
	require.Len(t, result, 2)
	assert.Equal(t, "December 2024", result[0].Month)
	assert.Equal(t, "November 2024", result[1].Month)

	nov4 := findProduct(t, findWeek(t, result[1], "Week 4"), "Flour", "p1")
	assert.True(t, nov4.EndBalance.Equal(dec(70)), "nov: 100 - 30: %s", nov4.EndBalance)

	dec1 := findProduct(t, findWeek(t, result[0], "Week 1"), "Flour", "p1")
	assert.True(t, dec1.Added.Equal(dec(10)))
	assert.True(t, dec1.EndBalance.Equal(dec(80)), "dic sem 1: 70 + 10: %s", dec1.EndBalance)

	dec2 := findProduct(t, findWeek(t, result[0], "Week 2"), "Flour", "p1")
	assert.True(t, dec2.Cleared.Equal(dec(5)))
	assert.True(t, dec2.EndBalance.Equal(dec(75)), "dic sem 2: 80 - 5: %s", dec2.EndBalance)
}

// Empate exacto de timestamps: la apertura se aplica antes que el movimiento
// del mismo instante (sort estable + aperturas emitidas primero).
func TestAggregate_EmpateDeFechas_AperturaPrimero(t *testing.T) {
	at := day(2025, time.April, 1)
	products := []history.Product{
		product("p1", "Milk", "Dairy", "litre", 10, at),
	}
	movements := []history.Movement{
		movement("p1", entity.MovementTypeOUT, 10, at),
	}

	result := history.Aggregate(products, movements)

	cell := findProduct(t, findWeek(t, result[0], "Week 1"), "Dairy", "p1")
	assert.True(t, cell.Added.Equal(dec(10)))
	assert.True(t, cell.Cleared.Equal(dec(10)))
	assert.True(t, cell.EndBalance.Equal(decimal.Zero),
		"la apertura debe sumar antes de restar la salida: %s", cell.EndBalance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de presentación
// ──────────────────────────────────────────────────────────────────────────────

// Categorías y productos dentro de una semana conservan el orden de primera
// aparición en el recorrido cronológico (estable entre llamadas).
func TestAggregate_OrdenDePrimeraAparicion(t *testing.T) {
	products := []history.Product{
		product("p-a", "Apples", "Fruits", "kg", 1, day(2025, time.June, 2)),
		product("p-b", "Bread", "Bakery", "unit", 1, day(2025, time.June, 3)),
		product("p-c", "Cherries", "Fruits", "kg", 1, day(2025, time.June, 4)),
	}

	result := history.Aggregate(products, nil)

	week := findWeek(t, result[0], "Week 1")
	require.Len(t, week.Categories, 2)
	assert.Equal(t, "Fruits", week.Categories[0].Name)
	assert.Equal(t, "Bakery", week.Categories[1].Name)

	fruits := week.Categories[0]
	require.Len(t, fruits.Products, 2)
	assert.Equal(t, "p-a", fruits.Products[0].ID)
	assert.Equal(t, "p-c", fruits.Products[1].ID)
}

// Meses en orden de primera aparición del recorrido ascendente, luego la lista
// completa invertida; las semanas de cada mes también quedan invertidas.
func TestAggregate_MesesYSemanasMasRecientesPrimero(t *testing.T) {
	products := []history.Product{
		product("p1", "Flour", "Flour", "kg", 5, day(2024, time.October, 10)),
	}
	movements := []history.Movement{
		movement("p1", entity.MovementTypeIN, 1, day(2024, time.November, 1)),
		movement("p1", entity.MovementTypeIN, 1, day(2024, time.November, 20)),
		movement("p1", entity.MovementTypeIN, 1, day(2024, time.December, 25)),
	}

	result := history.Aggregate(products, movements)

	require.Len(t, result, 3)
	assert.Equal(t, "December 2024", result[0].Month)
	assert.Equal(t, "November 2024", result[1].Month)
	assert.Equal(t, "October 2024", result[2].Month)

	nov := result[1]
	require.Len(t, nov.Weeks, 2)
	assert.Equal(t, "Week 3", nov.Weeks[0].Week)
	assert.Equal(t, "Week 1", nov.Weeks[1].Week)
}

// El orden de los movimientos de entrada no altera el resultado: el motor
// re-ordena por fecha (con sort estable para los empates).
func TestAggregate_EntradaDesordenada_MismoReporte(t *testing.T) {
	products, movements := flourScenario()
	shuffled := []history.Movement{movements[1], movements[0]}

	assert.Equal(t,
		history.Aggregate(products, movements),
		history.Aggregate(products, shuffled),
	)
}
