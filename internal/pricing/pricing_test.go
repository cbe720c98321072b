package pricing

import (
	"testing"

	"github.com/printeasy/printeasy/internal/domain/model"
)

func TestFilePriceDefaults(t *testing.T) {
	// 10 pages, 2 copies, everything default: 10 * 2.5 * 2.
	got := FilePrice(10, model.Customization{Copies: 2})
	if got != 50.0 {
		t.Fatalf("expected 50.00, got %.2f", got)
	}
}

func TestFilePriceAllUpgrades(t *testing.T) {
	// Per page: 2.5 + 2.4 + 6 + 2 + 1 = 13.9; 10 pages + soft cover binding.
	c := model.Customization{
		Copies:        1,
		ColorMode:     model.ColorModeColor,
		PaperType:     model.PaperTypeUltraPremium,
		PaperSize:     model.PaperSizeA3,
		PrintingSides: model.SidesDouble,
		BindingOption: model.BindingSoftCover,
	}
	got := FilePrice(10, c)
	if Round2(got) != 259.0 {
		t.Fatalf("expected 259.00, got %.2f", got)
	}
}

func TestFilePriceZeroPages(t *testing.T) {
	if got := FilePrice(0, model.Customization{}); got != 0 {
		t.Fatalf("expected 0 for default zero-page file, got %.2f", got)
	}

	c := model.Customization{BindingOption: model.BindingStapler, CoverOption: model.CoverCustom}
	if got := FilePrice(0, c); got != StaplerBindingCost+CustomCoverCost {
		t.Fatalf("expected flat costs only, got %.2f", got)
	}

	// Negative page counts behave like zero.
	if got := FilePrice(-5, model.Customization{}); got != 0 {
		t.Fatalf("expected 0 for negative page count, got %.2f", got)
	}
}

func TestFilePriceClampsCopies(t *testing.T) {
	base := FilePrice(10, model.Customization{Copies: 1})
	if got := FilePrice(10, model.Customization{Copies: 0}); got != base {
		t.Fatalf("expected zero copies to price as one, got %.2f", got)
	}
	if got := FilePrice(10, model.Customization{Copies: -2}); got != base {
		t.Fatalf("expected negative copies to price as one, got %.2f", got)
	}
}

func TestFilePriceUnknownEnumsUseCheapest(t *testing.T) {
	odd := model.Customization{
		Copies:        1,
		PaperType:     model.PaperType("cardboard"),
		PaperSize:     model.PaperSize("B5"),
		ColorMode:     model.ColorMode("sepia"),
		PrintingSides: model.PrintingSides("triple"),
		CoverOption:   model.CoverOption("leather"),
		BindingOption: model.BindingOption("spiral"),
	}
	if got, want := FilePrice(10, odd), FilePrice(10, model.Customization{Copies: 1}); got != want {
		t.Fatalf("expected unknown enums to price as defaults: got %.2f want %.2f", got, want)
	}
}

func TestFilePriceMonotonic(t *testing.T) {
	base := model.Customization{Copies: 1}

	steps := []struct {
		name string
		c    model.Customization
	}{
		{"color", model.Customization{Copies: 1, ColorMode: model.ColorModeColor}},
		{"double sided", model.Customization{Copies: 1, PrintingSides: model.SidesDouble}},
		{"premium", model.Customization{Copies: 1, PaperType: model.PaperTypePremium}},
		{"ultra premium", model.Customization{Copies: 1, PaperType: model.PaperTypeUltraPremium}},
		{"more copies", model.Customization{Copies: 2}},
	}
	for _, tc := range steps {
		if FilePrice(10, tc.c) <= FilePrice(10, base) {
			t.Fatalf("%s must not be cheaper than base", tc.name)
		}
	}

	if FilePrice(10, model.Customization{Copies: 1, PaperType: model.PaperTypeUltraPremium}) <=
		FilePrice(10, model.Customization{Copies: 1, PaperType: model.PaperTypePremium}) {
		t.Fatal("ultra premium must cost more than premium")
	}
	if FilePrice(11, base) <= FilePrice(10, base) {
		t.Fatal("price must grow with page count")
	}
}

func TestFilePriceNeverBelowFlatCosts(t *testing.T) {
	for pages := 0; pages <= 3; pages++ {
		c := model.Customization{BindingOption: model.BindingSoftCover, CoverOption: model.CoverCustom}
		if got := FilePrice(pages, c); got < SoftCoverCost+CustomCoverCost {
			t.Fatalf("price %.2f below flat costs for %d pages", got, pages)
		}
	}
}

func TestOrderTotals(t *testing.T) {
	items := []model.LineItem{
		{
			Files:          []model.FileRef{{Name: "notes.pdf", PageCount: 10}},
			Customizations: []model.Customization{{Copies: 2}},
		},
		{
			Files: []model.FileRef{{Name: "thesis.pdf", PageCount: 10}},
			Customizations: []model.Customization{{
				Copies:        1,
				ColorMode:     model.ColorModeColor,
				PaperType:     model.PaperTypeUltraPremium,
				PaperSize:     model.PaperSizeA3,
				PrintingSides: model.SidesDouble,
				BindingOption: model.BindingSoftCover,
			}},
		},
	}

	totals := OrderTotals(items, DefaultDeliveryFee)
	if Round2(totals.Subtotal) != 309.0 {
		t.Fatalf("expected subtotal 309.00, got %.2f", totals.Subtotal)
	}
	if Round2(totals.Total) != 379.0 {
		t.Fatalf("expected total 379.00, got %.2f", totals.Total)
	}
	if totals.Total != totals.Subtotal+totals.DeliveryFee {
		t.Fatal("total must equal subtotal plus delivery fee exactly")
	}
}

func TestOrderTotalsEmpty(t *testing.T) {
	totals := OrderTotals(nil, DefaultDeliveryFee)
	if totals.Subtotal != 0 {
		t.Fatalf("expected zero subtotal, got %.2f", totals.Subtotal)
	}
	if totals.Total != DefaultDeliveryFee {
		t.Fatalf("expected total to equal delivery fee, got %.2f", totals.Total)
	}
}

func TestItemPriceMissingCustomizationDefaults(t *testing.T) {
	item := model.LineItem{
		Files: []model.FileRef{
			{Name: "a.pdf", PageCount: 4},
			{Name: "b.pdf", PageCount: 6},
		},
		Customizations: []model.Customization{{Copies: 2}},
	}
	// Second file falls back to defaults (one copy).
	want := FilePrice(4, model.Customization{Copies: 2}) + FilePrice(6, model.Customization{})
	if got := ItemPrice(item); got != want {
		t.Fatalf("expected %.2f, got %.2f", want, got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(13.9*10 + 0.004); got != 139.0 {
		t.Fatalf("expected 139.00, got %v", got)
	}
	if got := Round2(2.346); got != 2.35 {
		t.Fatalf("expected 2.35, got %v", got)
	}
}
