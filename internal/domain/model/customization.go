package model

// PaperType describes paper weight class. The zero value prices as standard.
type PaperType string

const (
	PaperTypeStandard     PaperType = "standard"
	PaperTypePremium      PaperType = "premium"
	PaperTypeUltraPremium PaperType = "ultraPremium"
)

// PaperSize describes sheet format. The zero value prices as A4.
type PaperSize string

const (
	PaperSizeA4     PaperSize = "A4"
	PaperSizeA3     PaperSize = "A3"
	PaperSizeA5     PaperSize = "A5"
	PaperSizeLetter PaperSize = "Letter"
)

// ColorMode selects monochrome or color printing.
type ColorMode string

const (
	ColorModeBlackAndWhite ColorMode = "blackAndWhite"
	ColorModeColor         ColorMode = "color"
)

// PrintingSides selects single or double sided printing.
type PrintingSides string

const (
	SidesSingle PrintingSides = "single"
	SidesDouble PrintingSides = "doubleSided"
)

// CoverOption selects an optional custom cover page.
type CoverOption string

const (
	CoverNone   CoverOption = "none"
	CoverCustom CoverOption = "customCover"
)

// BindingOption selects document binding.
type BindingOption string

const (
	BindingNone      BindingOption = "none"
	BindingStapler   BindingOption = "staplerBinding"
	BindingSoftCover BindingOption = "softCover"
)

// Customization holds the per-file print configuration. Missing or unknown
// enum values always resolve to the cheapest choice so a price can be
// computed without null checks.
type Customization struct {
	Copies        int           `json:"copies"`
	PaperType     PaperType     `json:"paperType"`
	PaperSize     PaperSize     `json:"paperSize"`
	ColorMode     ColorMode     `json:"colorMode"`
	PrintingSides PrintingSides `json:"printingSides"`
	CoverOption   CoverOption   `json:"coverOption"`
	BindingOption BindingOption `json:"bindingOption"`
}

// Normalized returns a copy with copies clamped to at least one.
func (c Customization) Normalized() Customization {
	if c.Copies < 1 {
		c.Copies = 1
	}
	return c
}
