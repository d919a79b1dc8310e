// Package web renders the gallery and the legacy catalog pages. Both pages
// talk to the catalog API through apiclient, the same way a browser would.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"blackhole/internal/blackhole"
	"blackhole/internal/gallery"
	"blackhole/internal/platform/apiclient"
)

//go:embed templates/*.html static/*.css
var content embed.FS

const Footer = "Black Hole Gallery v0.1.1"

// API is the subset of apiclient.Client the pages call.
type API interface {
	Ping(ctx context.Context) (map[string]any, error)
	Health(ctx context.Context) (apiclient.HealthResponse, error)
	Version(ctx context.Context) (apiclient.VersionResponse, error)
	ListBlackHoles(ctx context.Context, limit, offset int) ([]blackhole.BlackHole, error)
	CreateBlackHole(ctx context.Context, in blackhole.CreateInput) (blackhole.BlackHole, error)
}

type Handler struct {
	api  API
	tmpl *template.Template
}

func NewHandler(api API) (*Handler, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{api: api, tmpl: tmpl}, nil
}

// Static serves the embedded stylesheet under /static/.
func (h *Handler) Static() http.Handler {
	sub, _ := fs.Sub(content, "static")
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type galleryButton struct {
	ID     string
	Label  string
	Active bool
}

type galleryView struct {
	Buttons    []galleryButton
	Selected   gallery.Entry
	Meta       string
	Media      gallery.Media
	PingResult string
	PingError  string
	Footer     string
}

func newGalleryView(id string) galleryView {
	selected := gallery.Select(id)
	v := galleryView{
		Selected: selected,
		Meta:     gallery.Meta(selected),
		Media:    gallery.MediaFor(selected.ID),
		Footer:   Footer,
	}
	for _, e := range gallery.Entries() {
		v.Buttons = append(v.Buttons, galleryButton{
			ID:     e.ID,
			Label:  gallery.ShortName(e.Name),
			Active: e.ID == selected.ID,
		})
	}
	return v
}

// Gallery handles GET /?bh={id}
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "gallery.html", newGalleryView(r.URL.Query().Get("bh")))
}

// GalleryPing handles GET /ui/ping?bh={id}: it pings the API and shows
// the raw response on the gallery page.
func (h *Handler) GalleryPing(w http.ResponseWriter, r *http.Request) {
	v := newGalleryView(r.URL.Query().Get("bh"))

	data, err := h.api.Ping(r.Context())
	switch {
	case err != nil:
		v.PingError = err.Error()
	case data == nil:
		// A 2xx answer without a JSON body shows nothing.
	default:
		if pretty, mErr := json.MarshalIndent(data, "", "  "); mErr != nil {
			v.PingError = mErr.Error()
		} else {
			v.PingResult = string(pretty)
		}
	}
	h.render(w, r, http.StatusOK, "gallery.html", v)
}

type catalogItem struct {
	Name        string
	Meta        string
	Description string
}

type catalogForm struct {
	Name        string
	DistanceLY  string
	MassSolar   string
	Description string
}

type catalogView struct {
	Health  string
	Version string
	Items   []catalogItem
	Form    catalogForm
	Error   string
}

func newCatalogItem(b blackhole.BlackHole) catalogItem {
	item := catalogItem{Name: b.Name, Description: "—"}
	if b.DistanceLY != nil {
		item.Meta += "Расстояние: " + gallery.FormatNumber(*b.DistanceLY) + " св. лет | "
	}
	if b.MassSolar != nil {
		item.Meta += "Масса: " + gallery.FormatNumber(*b.MassSolar) + " M☉"
	}
	if b.Description != nil && *b.Description != "" {
		item.Description = *b.Description
	}
	return item
}

// load fetches health, version and the list concurrently and waits for
// all three. On failure v keeps its placeholders and carries the error.
func (h *Handler) load(ctx context.Context, v *catalogView) {
	var (
		health  apiclient.HealthResponse
		version apiclient.VersionResponse
		items   []blackhole.BlackHole
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		health, err = h.api.Health(gctx)
		return err
	})
	g.Go(func() (err error) {
		version, err = h.api.Version(gctx)
		return err
	})
	g.Go(func() (err error) {
		items, err = h.api.ListBlackHoles(gctx, 0, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		v.Error = err.Error()
		return
	}

	v.Health = health.Status
	v.Version = version.Version
	for _, b := range items {
		v.Items = append(v.Items, newCatalogItem(b))
	}
}

// Catalog handles GET /catalog
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	v := catalogView{Health: "unknown", Version: "?"}
	h.load(r.Context(), &v)
	h.render(w, r, http.StatusOK, "catalog.html", v)
}

var errNameRequired = errors.New("название обязательно")

// parseOptionalNumber turns a form field into a number; blank input is
// nil. A decimal comma is accepted.
func parseOptionalNumber(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.New(field + ": ожидается число")
	}
	return &v, nil
}

func (f catalogForm) toInput() (blackhole.CreateInput, error) {
	in := blackhole.CreateInput{Name: strings.TrimSpace(f.Name)}
	if in.Name == "" {
		return in, errNameRequired
	}

	var err error
	if in.DistanceLY, err = parseOptionalNumber("distance_ly", f.DistanceLY); err != nil {
		return in, err
	}
	if in.MassSolar, err = parseOptionalNumber("mass_solar", f.MassSolar); err != nil {
		return in, err
	}
	if d := f.Description; d != "" {
		in.Description = &d
	}
	return in, nil
}

// CatalogSubmit handles POST /catalog
func (h *Handler) CatalogSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := catalogForm{
		Name:        r.PostForm.Get("name"),
		DistanceLY:  r.PostForm.Get("distance_ly"),
		MassSolar:   r.PostForm.Get("mass_solar"),
		Description: r.PostForm.Get("description"),
	}

	in, err := form.toInput()
	if err == nil {
		_, err = h.api.CreateBlackHole(r.Context(), in)
	}
	if err != nil {
		v := catalogView{Health: "unknown", Version: "?", Form: form}
		h.load(r.Context(), &v)
		v.Error = err.Error()
		h.render(w, r, http.StatusUnprocessableEntity, "catalog.html", v)
		return
	}

	http.Redirect(w, r, "/catalog", http.StatusSeeOther)
}
