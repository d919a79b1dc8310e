package main

import (
	"net/http"

	"github.com/google/uuid"

	"blackhole/internal/blackhole"
	"blackhole/internal/config"
	"blackhole/internal/httpx"
	"blackhole/internal/platform/apiclient"
	"blackhole/internal/store"
	"blackhole/internal/system"
	"blackhole/internal/web"
)

const maxRequestBytes = 1 << 20

// newPageClient returns the client the pages use to call the API. It
// carries a per-process token so the limiter meters visitors, not the
// server's own loopback calls. Requests are bounded by the visitor's
// request context only.
func newPageClient(cfg config.Config, limiter *httpx.RateLimitMiddleware) *apiclient.Client {
	token := uuid.NewString()
	limiter.TrustCaller(token)
	return apiclient.New(cfg.APIURL,
		apiclient.WithUserAgent("blackhole-web/"+cfg.Version),
		apiclient.WithHeader(httpx.TrustedCallerHeader, token),
	)
}

// newRouter wires the catalog API, the service endpoints and both pages
// onto one mux. The pages reach the API through api, normally a client
// pointed back at this same server.
func newRouter(cfg config.Config, database *store.DB, api web.API, limiter *httpx.RateLimitMiddleware) (http.Handler, error) {
	pages, err := web.NewHandler(api)
	if err != nil {
		return nil, err
	}
	sys := system.NewHandler(cfg.Version, database)
	blackholes := blackhole.NewHTTPHandler(blackhole.NewService(database.BlackHoles()))

	limited := func(h http.HandlerFunc) http.Handler {
		return limiter.Middleware(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", sys.Health)
	mux.HandleFunc("GET /version", sys.Version)
	mux.HandleFunc("GET /ping", sys.Ping)
	mux.HandleFunc("GET /db-ping", sys.DBPing)

	mux.Handle("GET /api/v1/blackholes", limited(blackholes.List))
	mux.Handle("POST /api/v1/blackholes", limited(blackholes.Create))
	mux.Handle("GET /api/v1/blackholes/{id}", limited(blackholes.Get))

	mux.HandleFunc("GET /{$}", pages.Gallery)
	mux.HandleFunc("GET /ui/ping", pages.GalleryPing)
	mux.HandleFunc("GET /catalog", pages.Catalog)
	mux.HandleFunc("POST /catalog", pages.CatalogSubmit)
	mux.Handle("GET /static/", pages.Static())

	public := http.FileServer(http.Dir(cfg.PublicDir))
	mux.Handle("GET /media/", public)
	mux.Handle("GET /assets/", public)

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(!cfg.IsDev()),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	), nil
}
