package gallery

// Media describes the looping video behind a selected entry.
type Media struct {
	MP4    string
	WebM   string
	Poster string
	// Brightness is applied as a CSS brightness() filter on the video.
	Brightness float64
	// Overlay is the opacity of the darkening gradient above the video.
	Overlay float64
}

type assets struct {
	mp4, webm, poster string
}

type tuning struct {
	bright, overlay float64
}

var mediaAssets = map[string]assets{
	"sgra":  {mp4: "/media/sgra/sgra-1080.mp4", webm: "/media/sgra/sgra-720.webm", poster: "/media/sgra/sgra-poster.jpg"},
	"m87":   {mp4: "/media/m87/m87-1080.mp4", webm: "/media/m87/m87-720.webm", poster: "/media/m87/m87-poster.jpg"},
	"cygx1": {mp4: "/media/cygx1/cygx1-1080.mp4", webm: "/media/cygx1/cygx1-720.webm", poster: "/media/cygx1/cygx1-poster.jpg"},
}

// Raise bright for a lighter clip, lower overlay for less shade.
var mediaTuning = map[string]tuning{
	"sgra":  {bright: 1.00, overlay: 0.30},
	"m87":   {bright: 1.00, overlay: 0.30},
	"cygx1": {bright: 1.00, overlay: 0.30},
}

// MediaFor returns the background media for id, falling back to the
// default entry's media for unknown identifiers.
func MediaFor(id string) Media {
	a, ok := mediaAssets[id]
	if !ok {
		a = mediaAssets[DefaultID]
	}
	t, ok := mediaTuning[id]
	if !ok {
		t = mediaTuning[DefaultID]
	}
	return Media{
		MP4:        a.mp4,
		WebM:       a.webm,
		Poster:     a.poster,
		Brightness: t.bright,
		Overlay:    t.overlay,
	}
}
