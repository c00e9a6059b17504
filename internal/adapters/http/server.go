// Package httpadapter is the HTTP surface (§4.5): chi routes, request
// validation, response encoding, and the middleware stack. Dependency
// injection is explicit — New takes already-constructed services and wires
// them into route registration; nothing here constructs a repository or
// opens the store.
package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"supplierwatch/internal/ports"
	"supplierwatch/internal/services"
)

// Services bundles every application service the HTTP layer calls. Built
// once at boot by cmd/server and passed to New.
type Services struct {
	Dossier *services.DossierService
	Ranking *services.RankingService
	Search  *services.SearchService
	Alerts  *services.AlertFeedService
	Graph   *services.GraphService
	Org     *services.OrgDashboardService
	Stats   *services.StatsService
	Export  *services.ExportService

	Contracts ports.ContractReader
}

// Options configures the middleware stack.
type Options struct {
	RequestDeadline  time.Duration
	RateLimitPerMin  int
	RateLimitWindow  time.Duration
	BypassHeaderName string
	CORSAllowOrigins []string
	Logger           *slog.Logger
}

// New builds the full chi router: static prefixes before dynamic captures on
// overlapping paths, per §4.5 — in particular /api/suppliers/ranking is
// registered before /api/suppliers/{id}.
func New(svc Services, opts Options) chi.Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestDeadline))
	r.Use(securityHeaders)
	r.Use(corsMiddleware(opts.CORSAllowOrigins))
	r.Use(newRateLimiter(opts.RateLimitPerMin, opts.RateLimitWindow, opts.BypassHeaderName).Middleware)

	h := &handlers{svc: svc, logger: logger}

	r.Route("/api", func(api chi.Router) {
		api.Get("/suppliers/ranking", h.ranking)
		api.Get("/suppliers/{id}/graph", h.graph)
		api.Get("/suppliers/{id}/export", h.export)
		api.Get("/suppliers/{id}", h.dossier)

		api.Get("/alerts", h.alertFeed)
		api.Get("/alerts/{kind}", h.alertFeedByKind)

		api.Get("/search", h.search)
		api.Get("/contracts", h.contracts)

		api.Get("/orgs/{orgCode}/dashboard", h.orgDashboard)

		api.Get("/stats", h.stats)

		api.Get("/healthz", h.healthz)
	})

	return r
}

type handlers struct {
	svc    Services
	logger *slog.Logger
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, h.logger, err)
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) dossier(w http.ResponseWriter, r *http.Request) {
	id, err := parseCompanyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dossier, err := h.svc.Dossier.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dossier)
}

func (h *handlers) ranking(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.svc.Ranking.Rank(r.Context(), limit, offset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) graph(w http.ResponseWriter, r *http.Request) {
	id, err := parseCompanyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.Graph.View(r.Context(), id, 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	id, err := parseCompanyID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	format, err := parseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dossier, err := h.svc.Dossier.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	payload, err := h.svc.Export.Export(dossier, services.ExportFormat(format))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", payload.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload.Body)
}

func (h *handlers) alertFeed(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.svc.Alerts.Feed(r.Context(), limit, offset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) alertFeedByKind(w http.ResponseWriter, r *http.Request) {
	kind, err := parseAlertKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, offset, err := parsePagination(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.svc.Alerts.FeedByKind(r.Context(), kind, limit, offset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearchQuery(r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, _, err := parsePagination(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.svc.Search.Search(r.Context(), q, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) contracts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	filter := ports.ContractFilter{}
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := parseCompanyID(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		filter.SupplierID = &id
	}
	if raw := r.URL.Query().Get("orgCode"); raw != "" {
		org, err := parseOrgCode(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		filter.OrgCode = &org
	}

	rows, err := h.svc.Contracts.Contracts(r.Context(), filter, limit, offset)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handlers) orgDashboard(w http.ResponseWriter, r *http.Request) {
	org, err := parseOrgCode(chi.URLParam(r, "orgCode"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dash, err := h.svc.Org.Get(r.Context(), org)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats.Get(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
