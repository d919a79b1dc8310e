package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripGroups removes the grouping spaces CLDR uses for Russian so tests
// do not depend on which space variant the locale data carries.
func stripGroups(s string) string {
	return strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
}

func TestEntries_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Entries() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, DefaultID, Entries()[0].ID)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	es := Entries()
	es[0].Name = "changed"
	assert.NotEqual(t, "changed", Entries()[0].Name)
}

func TestSelect(t *testing.T) {
	assert.Equal(t, "M87*", Select("m87").Name)
	assert.Equal(t, "Лебедь X-1 (Cygnus X-1)", Select("cygx1").Name)
	assert.Equal(t, "sgra", Select("").ID)
	assert.Equal(t, "sgra", Select("sgrA").ID)
	assert.Equal(t, "sgra", Select("andromeda").ID)
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "Стрелец A*", ShortName("Стрелец A* (Sagittarius A*)"))
	assert.Equal(t, "M87*", ShortName("M87*"))
}

func TestMediaFor_Known(t *testing.T) {
	for _, id := range []string{"sgra", "m87", "cygx1"} {
		m := MediaFor(id)
		assert.Equal(t, "/media/"+id+"/"+id+"-1080.mp4", m.MP4)
		assert.Equal(t, "/media/"+id+"/"+id+"-720.webm", m.WebM)
		assert.Equal(t, "/media/"+id+"/"+id+"-poster.jpg", m.Poster)
		assert.Equal(t, 1.0, m.Brightness)
		assert.Equal(t, 0.3, m.Overlay)
	}
}

func TestMediaFor_UnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "SGRA", "ton618"} {
		assert.Equal(t, MediaFor(DefaultID), MediaFor(id))
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "21", FormatNumber(21))
	assert.Equal(t, "26000", stripGroups(FormatNumber(26000)))
	assert.NotEqual(t, "26000", FormatNumber(26000))
	assert.Equal(t, "4300000", stripGroups(FormatNumber(4.3e6)))
	assert.Equal(t, "6500000000", stripGroups(FormatNumber(6.5e9)))
	assert.Equal(t, "1,5", FormatNumber(1.5))
	assert.Equal(t, "0,123", FormatNumber(0.12345))
}

func TestMeta(t *testing.T) {
	m := Meta(Select("cygx1"))
	require.True(t, strings.HasPrefix(m, "Расстояние: "))
	assert.Contains(t, stripGroups(m), "7200св.лет·")
	assert.True(t, strings.HasSuffix(m, "Масса: 21 M☉"))

	d := 100.0
	assert.Equal(t, "", Meta(Entry{}))
	assert.Equal(t, "Расстояние: 100 св. лет · ", Meta(Entry{DistanceLY: &d}))
	assert.Equal(t, "Масса: 100 M☉", Meta(Entry{MassSolar: &d}))
}
