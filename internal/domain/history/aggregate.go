// Package history implementa el motor de agregación del histórico de stock
// (servicio de dominio puro, sin I/O). Reconstruye en cada llamada, desde cero,
// el resumen jerárquico mes → semana → categoría → producto con balances
// acumulados; no existe vista materializada ni caché.
package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// UncategorizedLabel etiqueta usada cuando la categoría del producto no resuelve.
const UncategorizedLabel = "Uncategorized"

// Product es el snapshot de lectura que consume el motor. CreatedAt es la fecha
// efectiva del stock de apertura (ver entity.Product).
type Product struct {
	ID           string
	Name         string
	CategoryName string // vacío => UncategorizedLabel
	Unit         string
	OpeningStock decimal.Decimal
	CreatedAt    time.Time
}

// Movement es el snapshot de lectura de un movimiento. El motor re-ordena, así
// que el orden de entrada solo importa como desempate en fechas idénticas.
type Movement struct {
	ProductID string
	Type      string // IN, OUT, ADJUSTMENT
	Quantity  decimal.Decimal
	CreatedAt time.Time
}

// ProductSummary es la celda (mes, semana, categoría, producto) del reporte.
// Added y Cleared son deltas locales a la celda; EndBalance es un snapshot: el
// balance acumulado del producto al momento del último evento dentro de esa
// celda, no el neto de la celda.
type ProductSummary struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Added      decimal.Decimal `json:"added"`
	Cleared    decimal.Decimal `json:"cleared"`
	EndBalance decimal.Decimal `json:"endBalance"`
}

// CategoryHistory agrupa los productos de una categoría dentro de una semana.
type CategoryHistory struct {
	Name     string            `json:"name"`
	Products []*ProductSummary `json:"products"`
}

// WeekHistory agrupa las categorías de una semana calendario del mes.
type WeekHistory struct {
	Week       string             `json:"week"`
	Categories []*CategoryHistory `json:"categories"`
}

// MonthHistory agrupa las semanas de un mes.
type MonthHistory struct {
	Month string         `json:"month"`
	Weeks []*WeekHistory `json:"weeks"`
}

// Tipos de evento de la línea de tiempo. OPENING es sintético: el stock de
// apertura del producto tratado como primera entrada.
const (
	eventOpening = "OPENING"
	eventIn      = entity.MovementTypeIN
	eventOut     = entity.MovementTypeOUT
)

type event struct {
	date         time.Time
	kind         string
	quantity     decimal.Decimal
	productID    string
	productName  string
	categoryName string
	unit         string
}

// Claves compuestas del mapa intermedio de celdas. Se construye en una sola
// pasada cronológica y después se proyecta a la estructura anidada; el orden
// nunca depende del orden de iteración de un map.
type weekKey struct {
	month string
	week  string
}

type categoryKey struct {
	weekKey
	category string
}

type cellKey struct {
	categoryKey
	productID string
}

// Aggregate reconstruye el histórico completo a partir de los snapshots de
// productos y movimientos. Pura y determinista: mismas entradas, mismo reporte.
//
// Reglas:
//   - cada producto aporta un evento OPENING en su CreatedAt;
//   - cada movimiento IN/OUT aporta un evento en su CreatedAt; un movimiento
//     cuyo producto no resuelve se descarta en silencio;
//   - los movimientos ADJUSTMENT se excluyen por completo de la línea de
//     tiempo (comportamiento heredado, fijado por test);
//   - semana calendario = "Week N" con N = ceil(día_del_mes / 7); días 1–7 →
//     Week 1, 8–14 → Week 2, ... 29–31 → Week 5. No son semanas ISO;
//   - el balance acumulado por producto avanza en orden cronológico global,
//     nunca por celda;
//   - presentación: meses y semanas del más reciente al más antiguo;
//     categorías y productos en orden de primera aparición (estable).
func Aggregate(products []Product, movements []Movement) []MonthHistory {
	events := buildTimeline(products, movements)

	// Orden cronológico ascendente. Sort estable: en empates de fecha gana el
	// orden de entrada, y los OPENING van antes que los movimientos del mismo
	// instante porque se emiten primero en buildTimeline.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].date.Before(events[j].date)
	})

	cells := make(map[cellKey]*ProductSummary)
	running := make(map[string]decimal.Decimal)

	// Orden de primera aparición para la proyección.
	var monthOrder []string
	weeksByMonth := make(map[string]map[string]struct{})
	categoryOrder := make(map[weekKey][]string)
	productOrder := make(map[categoryKey][]string)

	for _, e := range events {
		month := monthLabel(e.date)
		week := weekLabel(e.date)

		wk := weekKey{month: month, week: week}
		ck := categoryKey{weekKey: wk, category: e.categoryName}
		key := cellKey{categoryKey: ck, productID: e.productID}

		if _, seen := weeksByMonth[month]; !seen {
			weeksByMonth[month] = make(map[string]struct{})
			monthOrder = append(monthOrder, month)
		}
		if _, seen := weeksByMonth[month][week]; !seen {
			weeksByMonth[month][week] = struct{}{}
		}

		cell, ok := cells[key]
		if !ok {
			if !containsString(categoryOrder[wk], e.categoryName) {
				categoryOrder[wk] = append(categoryOrder[wk], e.categoryName)
			}
			productOrder[ck] = append(productOrder[ck], e.productID)
			cell = &ProductSummary{
				ID:         e.productID,
				Name:       e.productName,
				Unit:       e.unit,
				Added:      decimal.Zero,
				Cleared:    decimal.Zero,
				EndBalance: decimal.Zero,
			}
			cells[key] = cell
		}

		switch e.kind {
		case eventOpening, eventIn:
			running[e.productID] = running[e.productID].Add(e.quantity)
			cell.Added = cell.Added.Add(e.quantity)
		case eventOut:
			running[e.productID] = running[e.productID].Sub(e.quantity)
			cell.Cleared = cell.Cleared.Add(e.quantity)
		}
		// El último evento del producto dentro de la celda deja el snapshot.
		cell.EndBalance = running[e.productID]
	}

	return project(monthOrder, weeksByMonth, categoryOrder, productOrder, cells)
}

// buildTimeline emite los eventos OPENING de todos los productos y después los
// eventos IN/OUT de los movimientos que resuelven a un producto conocido.
func buildTimeline(products []Product, movements []Movement) []event {
	byID := make(map[string]Product, len(products))
	events := make([]event, 0, len(products)+len(movements))

	for _, p := range products {
		byID[p.ID] = p
		events = append(events, event{
			date:         p.CreatedAt,
			kind:         eventOpening,
			quantity:     p.OpeningStock,
			productID:    p.ID,
			productName:  p.Name,
			categoryName: categoryLabel(p.CategoryName),
			unit:         p.Unit,
		})
	}

	for _, m := range movements {
		if m.Type != eventIn && m.Type != eventOut {
			// ADJUSTMENT (y cualquier tipo desconocido) queda fuera del histórico.
			continue
		}
		p, ok := byID[m.ProductID]
		if !ok {
			// Movimiento huérfano: reporte degradado antes que reporte fallido.
			continue
		}
		events = append(events, event{
			date:         m.CreatedAt,
			kind:         m.Type,
			quantity:     m.Quantity,
			productID:    p.ID,
			productName:  p.Name,
			categoryName: categoryLabel(p.CategoryName),
			unit:         p.Unit,
		})
	}

	return events
}

// project convierte el mapa de celdas en la estructura anidada ordenada:
// meses en orden de primera aparición y luego invertidos (más reciente
// primero); semanas ordenadas por etiqueta e invertidas dentro de cada mes;
// categorías y productos en orden de primera aparición.
func project(
	monthOrder []string,
	weeksByMonth map[string]map[string]struct{},
	categoryOrder map[weekKey][]string,
	productOrder map[categoryKey][]string,
	cells map[cellKey]*ProductSummary,
) []MonthHistory {
	result := make([]MonthHistory, 0, len(monthOrder))

	for _, month := range monthOrder {
		weekLabels := make([]string, 0, len(weeksByMonth[month]))
		for w := range weeksByMonth[month] {
			weekLabels = append(weekLabels, w)
		}
		// "Week 1" ... "Week 5" ordenan bien como strings.
		sort.Strings(weekLabels)
		reverseStrings(weekLabels)

		weeks := make([]*WeekHistory, 0, len(weekLabels))
		for _, week := range weekLabels {
			wk := weekKey{month: month, week: week}
			categories := make([]*CategoryHistory, 0, len(categoryOrder[wk]))
			for _, catName := range categoryOrder[wk] {
				ck := categoryKey{weekKey: wk, category: catName}
				prods := make([]*ProductSummary, 0, len(productOrder[ck]))
				for _, pid := range productOrder[ck] {
					prods = append(prods, cells[cellKey{categoryKey: ck, productID: pid}])
				}
				categories = append(categories, &CategoryHistory{Name: catName, Products: prods})
			}
			weeks = append(weeks, &WeekHistory{Week: week, Categories: categories})
		}
		result = append(result, MonthHistory{Month: month, Weeks: weeks})
	}

	// Mes más reciente primero.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// monthLabel devuelve la etiqueta del mes, ej: "December 2024".
// Nombres de mes en inglés (time.Month), independientes del locale.
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// weekLabel devuelve "Week N" con N = ceil(día/7). Semana calendaria del mes,
// no semana ISO: los días 1 y 8 caen siempre en semanas distintas sin importar
// el día de la semana, y "Week 5" puede tener entre 1 y 3 días.
func weekLabel(t time.Time) string {
	return fmt.Sprintf("Week %d", (t.Day()+6)/7)
}

func categoryLabel(name string) string {
	if name == "" {
		return UncategorizedLabel
	}
	return name
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
