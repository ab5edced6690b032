// Package ui holds the presentation helpers shared by the page templates.
package ui

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FuncMap returns the template functions available to every page.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money":         Money,
		"number":        Number,
		"percent":       Percent,
		"barPercent":    BarPercent,
		"join":          strings.Join,
		"licenseStatus": LicenseStatusClass,
		"priority":      PriorityClass,
		"systemStatus":  SystemStatusClass,
		"screening":     ScreeningStatusClass,
		"risk":          RiskClass,
		"health":        HealthClass,
		"tone":          ToneClass,
		"severity":      SeverityClass,
		"tariffStatus":  TariffStatusClass,
	}
}

// Money formats an amount in US dollars with thousands separators and cents.
func Money(v any) string {
	return printer.Sprintf("$%.2f", toFloat(v))
}

// Number formats an integer with thousands separators.
func Number(v int) string {
	return printer.Sprintf("%d", v)
}

// Percent formats a value with one decimal place.
func Percent(v any) string {
	return printer.Sprintf("%.1f%%", toFloat(v))
}

// BarPercent scales value against max into 0..100 for CSS widths.
func BarPercent(value, max int) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return 100
	}
	return value * 100 / max
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case decimal.Decimal:
		return n.InexactFloat64()
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
