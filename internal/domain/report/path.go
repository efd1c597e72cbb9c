package report

import (
	"strconv"
	"strings"
)

// NotAvailable valor que se muestra cuando una ruta no resuelve.
const NotAvailable = "N/A"

// Resolve recorre record siguiendo path ("cliente.sucursal_cliente.0.sucursal.nom_sucursal").
// En cada segmento: si el valor actual es una secuencia y el segmento es un entero,
// indexa; si no, accede como campo. Campo ausente, índice fuera de rango, tipo
// inesperado o null devuelven (nil, false). Nunca entra en pánico y no tiene
// límite de profundidad.
func Resolve(record any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	cur := record
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// ResolveOrNA igual que Resolve pero convierte el ausente en NotAvailable.
func ResolveOrNA(record any, path string) any {
	if v, ok := Resolve(record, path); ok {
		return v
	}
	return NotAvailable
}

func step(cur any, seg string) (any, bool) {
	switch v := cur.(type) {
	case nil:
		return nil, false
	case map[string]any:
		next, ok := v[seg]
		return next, ok
	case map[string]string:
		next, ok := v[seg]
		return next, ok
	case []any:
		i, ok := index(seg, len(v))
		if !ok {
			return nil, false
		}
		return v[i], true
	case []map[string]any:
		i, ok := index(seg, len(v))
		if !ok {
			return nil, false
		}
		return v[i], true
	default:
		return nil, false
	}
}

func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
