package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format formateador declarado por una columna.
type Format int

const (
	FormatText Format = iota
	FormatCurrency
	FormatDate
)

// Formatter convierte un valor ya resuelto en texto para la celda.
type Formatter func(v any) string

// Formats formateadores disponibles para el ensamblador.
type Formats struct {
	Currency Formatter
	Date     Formatter
}

// NewFormats construye los formateadores para un locale BCP 47 (ej. "es-CO")
// y un símbolo de moneda. Un locale inválido cae a en-US.
func NewFormats(locale, symbol string) Formats {
	return Formats{
		Currency: NewCurrencyFormatter(locale, symbol),
		Date:     FormatDateValue,
	}
}

func (f Formats) formatter(kind Format) Formatter {
	switch kind {
	case FormatCurrency:
		if f.Currency != nil {
			return f.Currency
		}
	case FormatDate:
		if f.Date != nil {
			return f.Date
		}
	}
	return nil
}

// NewCurrencyFormatter agrupa miles según el locale y fija 2 decimales: 1000 -> "$1,000.00" (en-US).
// Los dígitos salen del decimal sin pasar por float64. Valores no numéricos se
// devuelven como texto sin tocar.
func NewCurrencyFormatter(locale, symbol string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	group, point := separators(message.NewPrinter(tag))
	return func(v any) string {
		d, ok := ToDecimal(v)
		if !ok {
			return Text(v)
		}
		sign := ""
		if d.IsNegative() {
			sign = "-"
			d = d.Neg()
		}
		fixed := d.StringFixed(2) // "1234567.89"
		whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
		return sign + symbol + groupDigits(whole, group) + point + frac
	}
}

// separators obtiene del locale el separador de miles y el decimal.
func separators(p *message.Printer) (group, point string) {
	group, point = ",", "."
	if r := []rune(p.Sprint(number.Decimal(1000000))); len(r) > 1 {
		group = ""
		if !unicode.IsDigit(r[1]) {
			group = string(r[1])
		}
	}
	if r := []rune(p.Sprint(number.Decimal(0.5, number.Scale(1)))); len(r) > 1 && !unicode.IsDigit(r[1]) {
		point = string(r[1])
	}
	return group, point
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDateValue muestra fechas como dd/mm/aaaa. Acepta time.Time o cadenas ISO
// ("2006-01-02" o RFC 3339); cualquier otra cosa se devuelve como texto.
func FormatDateValue(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02/01/2006")
	case *time.Time:
		if t == nil {
			return NotAvailable
		}
		return t.Format("02/01/2006")
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339Nano, "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Format("02/01/2006")
			}
		}
	}
	return Text(v)
}

// Text representación por defecto de una celda.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return NotAvailable
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case decimal.Decimal:
		return t.String()
	case time.Time:
		return t.Format("2006-01-02")
	case bool:
		if t {
			return "Sí"
		}
		return "No"
	default:
		return fmt.Sprint(t)
	}
}

// ToDecimal convierte valores numéricos (y cadenas numéricas) a decimal.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, false
		}
		return *t, true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt32(t), true
	case int64:
		return decimal.NewFromInt(t), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}
