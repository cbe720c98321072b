// Package pricing computes print prices. Every function is pure: invalid
// input is clamped or defaulted, never rejected, so the engine always yields
// a usable number for live recalculation.
package pricing

import (
	"math"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// Per-page rates in currency units.
const (
	BasePerPage         = 2.5
	ColorPerPage        = 2.4
	PremiumPerPage      = 3.0
	UltraPremiumPerPage = 6.0
	A3PerPage           = 2.0
	DoubleSidedPerPage  = 1.0
)

// Flat per-file costs.
const (
	StaplerBindingCost = 30.0
	SoftCoverCost      = 120.0
	CustomCoverCost    = 30.0
)

// DefaultDeliveryFee is the flat per-order delivery charge.
const DefaultDeliveryFee = 70.0

// Totals is the result of pricing a whole order.
type Totals struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// PerPageRate returns the rate for one printed page under the given
// customization. Unknown enum values price as their cheapest default.
func PerPageRate(c model.Customization) float64 {
	rate := BasePerPage
	if c.ColorMode == model.ColorModeColor {
		rate += ColorPerPage
	}
	switch c.PaperType {
	case model.PaperTypePremium:
		rate += PremiumPerPage
	case model.PaperTypeUltraPremium:
		rate += UltraPremiumPerPage
	}
	if c.PaperSize == model.PaperSizeA3 {
		rate += A3PerPage
	}
	if c.PrintingSides == model.SidesDouble {
		rate += DoubleSidedPerPage
	}
	return rate
}

// FilePrice returns the price of printing one file: per-page rate times pages
// times copies, plus flat binding and cover costs. A zero page count yields
// the flat costs only. Copies below one are clamped to one.
func FilePrice(pageCount int, c model.Customization) float64 {
	if pageCount < 0 {
		pageCount = 0
	}
	c = c.Normalized()

	price := PerPageRate(c) * float64(pageCount) * float64(c.Copies)

	switch c.BindingOption {
	case model.BindingStapler:
		price += StaplerBindingCost
	case model.BindingSoftCover:
		price += SoftCoverCost
	}
	if c.CoverOption == model.CoverCustom {
		price += CustomCoverCost
	}
	return price
}

// ItemPrice prices a line item by summing FilePrice over its file and
// customization pairs. Files without a matching customization use defaults.
func ItemPrice(item model.LineItem) float64 {
	var sum float64
	for i, f := range item.Files {
		var c model.Customization
		if i < len(item.Customizations) {
			c = item.Customizations[i]
		}
		sum += FilePrice(f.PageCount, c)
	}
	return sum
}

// OrderTotals prices a full set of line items. The delivery fee is charged
// once per order regardless of item count. Sums are kept in full precision;
// round at the display edge with Round2.
func OrderTotals(items []model.LineItem, deliveryFee float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += ItemPrice(item)
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}

// Round2 rounds an amount to two decimal places for display and storage.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
