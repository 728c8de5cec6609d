package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finhistory/internal/gedcom"
	"finhistory/internal/translations"
	"finhistory/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
// *module.Provider satisfies it.
type Service interface {
	Identity() types.Identity
	HistoricEventsAll(languageTag string) []string
	HistoricEvents(languageTag string) []gedcom.Record
	CustomTranslations(lang string) (map[string]string, error)
	Locales() []types.Catalog
	Ready() bool
}

// Event formats accepted by GET /events.
const (
	FormatGEDCOM = "gedcom"
	FormatJSON   = "json"
)

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)
	if corsEnabled {
		r.Use(corsMiddleware())
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Get("/module", h.identity)
	r.Get("/events", h.events)
	r.Get("/translations/{lang}", h.translations)
	r.Get("/locales", h.locales)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

type handlers struct {
	svc Service
}

// identity godoc
// @Summary      Module identity
// @Description  Title, author, version, support links and resources folder of the module.
// @Tags         module
// @Produce      json
// @Success      200  {object}  types.Identity
// @Router       /module [get]
func (h *handlers) identity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Identity())
}

// events godoc
// @Summary      Historic events
// @Description  Every record of the configured table as a GEDCOM EVEN fragment, in authored order.
// @Tags         events
// @Produce      json
// @Param        lang    query     string  false  "Language tag (records are Finnish whatever it says)"
// @Param        format  query     string  false  "gedcom (default) or json for structured events too"
// @Success      200     {object}  types.EventsResponse
// @Failure      400     {object}  types.ErrorResponse
// @Router       /events [get]
func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatGEDCOM
	}
	if format != FormatGEDCOM && format != FormatJSON {
		writeJSONError(w, http.StatusBadRequest, "format must be gedcom or json")
		return
	}
	resp := types.EventsResponse{
		Variant: h.svc.Identity().Variant,
		Lang:    lang,
		Records: h.svc.HistoricEventsAll(lang),
	}
	resp.Count = len(resp.Records)
	if format == FormatJSON {
		recs := h.svc.HistoricEvents(lang)
		resp.Events = make([]types.Event, 0, len(recs))
		for _, rec := range recs {
			resp.Events = append(resp.Events, types.Event{
				Title: rec.Title,
				Type:  rec.Type,
				Date:  rec.Date.String(),
				Note:  rec.Note,
			})
		}
	}
	observeRecords(resp.Variant, resp.Count)
	writeJSON(w, http.StatusOK, resp)
}

// translations godoc
// @Summary      Translation catalog
// @Description  msgid to translation for a locale. Unsupported locales return an empty object.
// @Tags         translations
// @Produce      json
// @Param        lang  path      string  true  "Locale, e.g. fi"
// @Success      200   {object}  types.TranslationsResponse
// @Failure      503   {object}  types.ErrorResponse
// @Router       /translations/{lang} [get]
func (h *handlers) translations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	tr, err := h.svc.CustomTranslations(lang)
	if err != nil {
		observeTranslationLookup("unavailable")
		if zlog != nil {
			zlog.Error().Err(err).Str("lang", lang).Msg("translations")
		} else {
			log.Printf("translations lang=%s err=%v", lang, err)
		}
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	if translations.IsSupported(lang) {
		observeTranslationLookup("hit")
	} else {
		observeTranslationLookup("unsupported")
	}
	writeJSON(w, http.StatusOK, types.TranslationsResponse{Lang: lang, Translations: tr})
}

// locales godoc
// @Summary      Bundled catalogs
// @Description  Translation catalogs found in the resources folder.
// @Tags         translations
// @Produce      json
// @Success      200  {object}  types.LocalesResponse
// @Router       /locales [get]
func (h *handlers) locales(w http.ResponseWriter, r *http.Request) {
	cats := h.svc.Locales()
	if cats == nil {
		cats = []types.Catalog{}
	}
	writeJSON(w, http.StatusOK, types.LocalesResponse{Catalogs: cats})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		if zlog != nil {
			zlog.Error().Err(err).Msg("encode response")
		} else {
			log.Printf("encode response: %v", err)
		}
	}
}
