package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"finhistory/internal/catalog"
	"finhistory/internal/module"
	"finhistory/pkg/types"
)

func newLoaded(t *testing.T, opts module.Options) *module.Provider {
	t.Helper()
	p := module.New(opts)
	if err := p.OnLoad(); err != nil {
		t.Fatalf("OnLoad: %v", err)
	}
	if err := p.OnStart(); err != nil {
		t.Fatalf("OnStart: %v", err)
	}
	return p
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestModuleIdentity(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	w := get(t, r, "/module")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type=%q", ct)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing nosniff header")
	}
	var id types.Identity
	if err := json.Unmarshal(w.Body.Bytes(), &id); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if id.Title != module.CustomTitle || id.Version != module.CustomVersion || id.EnabledByDefault {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if id.Variant != catalog.V1DetailedIntervals {
		t.Fatalf("variant=%q", id.Variant)
	}
}

func TestEvents_DefaultFormat(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	w := get(t, r, "/events?lang=en")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp types.EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 123 || len(resp.Records) != 123 {
		t.Fatalf("count=%d records=%d", resp.Count, len(resp.Records))
	}
	if resp.Lang != "en" {
		t.Fatalf("lang=%q", resp.Lang)
	}
	if len(resp.Events) != 0 {
		t.Fatalf("structured events present without format=json")
	}
	if !strings.HasPrefix(resp.Records[0], "1 EVEN Kustaa I Vaasa (Ruotsi)\n2 TYPE ") {
		t.Fatalf("first record=%q", resp.Records[0])
	}
}

func TestEvents_JSONFormat(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{Variant: catalog.MustLookup(catalog.V2SingleDates)}))
	w := get(t, r, "/events?format=json")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp types.EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Variant != catalog.V2SingleDates {
		t.Fatalf("variant=%q", resp.Variant)
	}
	if len(resp.Events) != resp.Count {
		t.Fatalf("events=%d count=%d", len(resp.Events), resp.Count)
	}
	if resp.Events[0].Date != "6 JUN 1523" {
		t.Fatalf("first date=%q", resp.Events[0].Date)
	}
	if !strings.Contains(resp.Records[0], "\n2 DATE "+resp.Events[0].Date+"\n") {
		t.Fatalf("record and event disagree: %q vs %q", resp.Records[0], resp.Events[0].Date)
	}
}

func TestEvents_BadFormat(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	w := get(t, r, "/events?format=xml")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Code != http.StatusBadRequest || er.Error == "" {
		t.Fatalf("unexpected error body: %+v", er)
	}
}

func TestTranslations(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	w := get(t, r, "/translations/fi")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp types.TranslationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Translations["prime minister"] != "pääministeri" {
		t.Fatalf("unexpected translations: %v", resp.Translations)
	}

	w = get(t, r, "/translations/sv")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"lang":"sv","translations":{}}` {
		t.Fatalf("unsupported locale body=%s", body)
	}
}

func TestTranslations_ResourceUnavailableMaps503(t *testing.T) {
	p := module.New(module.Options{Resources: fstest.MapFS{}})
	r := NewMux(p)
	w := get(t, r, "/translations/fi")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Code != http.StatusServiceUnavailable {
		t.Fatalf("code=%d", er.Code)
	}
}

func TestLocales(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	w := get(t, r, "/locales")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp types.LocalesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Catalogs) != 1 || resp.Catalogs[0].Locale != "fi" || !resp.Catalogs[0].Supported {
		t.Fatalf("catalogs=%+v", resp.Catalogs)
	}

	// Not loaded yet: an empty list rather than null.
	w = get(t, NewMux(module.New(module.Options{})), "/locales")
	if body := strings.TrimSpace(w.Body.String()); body != `{"catalogs":[]}` {
		t.Fatalf("body=%s", body)
	}
}

func TestHealthAndReady(t *testing.T) {
	p := module.New(module.Options{})
	r := NewMux(p)
	if w := get(t, r, "/healthz"); w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", w.Code, w.Body.String())
	}
	if w := get(t, r, "/readyz"); w.Code != http.StatusServiceUnavailable || w.Body.String() != "loading" {
		t.Fatalf("readyz before start: %d %q", w.Code, w.Body.String())
	}
	if err := p.OnLoad(); err != nil {
		t.Fatal(err)
	}
	if err := p.OnStart(); err != nil {
		t.Fatal(err)
	}
	if w := get(t, r, "/readyz"); w.Code != http.StatusOK || w.Body.String() != "ready" {
		t.Fatalf("readyz after start: %d %q", w.Code, w.Body.String())
	}
}

func TestUnknownRoute404(t *testing.T) {
	r := NewMux(newLoaded(t, module.Options{}))
	if w := get(t, r, "/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCORS_OptIn(t *testing.T) {
	defer SetCORSOptions(false, nil, nil, nil)
	p := newLoaded(t, module.Options{})

	req := httptest.NewRequest(http.MethodGet, "/module", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	NewMux(p).ServeHTTP(w, req)
	if v := w.Header().Get("Access-Control-Allow-Origin"); v != "" {
		t.Fatalf("CORS header without opt-in: %q", v)
	}

	SetCORSOptions(true, []string{"https://example.org"}, nil, nil)
	w = httptest.NewRecorder()
	NewMux(p).ServeHTTP(w, req)
	if v := w.Header().Get("Access-Control-Allow-Origin"); v != "https://example.org" {
		t.Fatalf("Access-Control-Allow-Origin=%q", v)
	}
}

type errService struct {
	Service
	err error
}

func (e errService) CustomTranslations(string) (map[string]string, error) { return nil, e.err }

type teapot struct{}

func (teapot) Error() string   { return "teapot" }
func (teapot) StatusCode() int { return http.StatusTeapot }

func TestTranslations_HTTPErrorStatus(t *testing.T) {
	r := NewMux(errService{Service: newLoaded(t, module.Options{}), err: teapot{}})
	if w := get(t, r, "/translations/fi"); w.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", w.Code)
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(catalog.ErrUnknownVariant("v9")); got != http.StatusBadRequest {
		t.Fatalf("unknown variant -> %d", got)
	}
	if got := statusFor(errString("boom")); got != http.StatusInternalServerError {
		t.Fatalf("generic -> %d", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
