package gallery

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatNumber renders v with Russian digit grouping and decimal comma,
// keeping at most three fraction digits.
func FormatNumber(v float64) string {
	return ruPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// DistanceText returns the distance part of an entry's meta line, or ""
// when the distance is unknown.
func DistanceText(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return "Расстояние: " + FormatNumber(*v) + " св. лет · "
}

// MassText returns the mass part of an entry's meta line, or "".
func MassText(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return "Масса: " + FormatNumber(*v) + " M☉"
}

// Meta joins the distance and mass parts shown under an entry's title.
func Meta(e Entry) string {
	return DistanceText(e.DistanceLY) + MassText(e.MassSolar)
}
