// Package gallery holds the fixed set of black holes shown on the
// gallery page together with their background media.
package gallery

import "strings"

// DefaultID is selected when no identifier, or an unknown one, is given.
const DefaultID = "sgra"

type Entry struct {
	ID          string
	Name        string
	Img         string
	DistanceLY  *float64
	MassSolar   *float64
	Description string
}

func ptr(v float64) *float64 { return &v }

var entries = []Entry{
	{
		ID:          "sgra",
		Name:        "Стрелец A* (Sagittarius A*)",
		Img:         "/assets/sagittariusA.jpg",
		DistanceLY:  ptr(26000),
		MassSolar:   ptr(4.3e6),
		Description: "Сверхмассивая чёрная дыра в центре Млечного Пути. Масса ~4,3 миллиона солнечных. Мы видим её влияние по орбитам звёзд S-кластера; в 2022 EHT получил её изображение-кольцо из горячего газа.",
	},
	{
		ID:          "m87",
		Name:        "M87*",
		Img:         "/assets/m87.jpg",
		DistanceLY:  ptr(53000000),
		MassSolar:   ptr(6.5e9),
		Description: "Сверхмассивая чёрная дыра в эллиптической галактике M87. Первая сфотографированная непосредственно (коллаборация Event Horizon Telescope, 2019). Известна гигантской релятивистской струёй (джетом).",
	},
	{
		ID:          "cygx1",
		Name:        "Лебедь X-1 (Cygnus X-1)",
		Img:         "/assets/cygnusx1.jpg",
		DistanceLY:  ptr(7200),
		MassSolar:   ptr(21),
		Description: "Одна из первых кандидатов в чёрные дыры звёздной массы. Находится в двойной системе; обнаружена по рентгеновскому излучению вещества, падающего с компаньона на аккреционный диск.",
	},
}

// Entries returns a copy of the table in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry with the given id.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Select returns the entry with the given id, or the first entry.
func Select(id string) Entry {
	if e, ok := Lookup(id); ok {
		return e
	}
	return entries[0]
}

// ShortName drops the parenthesised alternative name used in titles.
func ShortName(name string) string {
	if i := strings.Index(name, " ("); i >= 0 {
		return name[:i]
	}
	return name
}
