package e2e

import (
    "encoding/json"
    "net/http"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "finhistory/internal/catalog"
    "finhistory/internal/gedcom"
    "finhistory/pkg/types"
)

// TestE2E_Flow walks the routes an out-of-process host uses, in the order it
// uses them: readiness, identity, translations, events.
func TestE2E_Flow(t *testing.T) {
    dir := createTempResourcesDir(t, "fi", "sv")
    srv, p := newServerForDir(t, dir, catalog.V1DetailedIntervals, false)

    resp, body := httpGet(t, srv.URL+"/readyz")
    if resp.StatusCode != http.StatusServiceUnavailable { t.Fatalf("/readyz before hooks %d %s", resp.StatusCode, body) }

    if err := p.OnLoad(); err != nil { t.Fatalf("OnLoad: %v", err) }
    if err := p.OnStart(); err != nil { t.Fatalf("OnStart: %v", err) }
    resp, body = httpGet(t, srv.URL+"/readyz")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/readyz after hooks %d %s", resp.StatusCode, body) }

    resp, body = httpGet(t, srv.URL+"/module")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/module %d %s", resp.StatusCode, body) }
    var id types.Identity
    if err := json.Unmarshal(body, &id); err != nil { t.Fatalf("/module json: %v", err) }
    if id.ResourcesFolder != dir+"/" { t.Fatalf("resources folder=%q want %q", id.ResourcesFolder, dir+"/") }

    resp, body = httpGet(t, srv.URL+"/locales")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/locales %d %s", resp.StatusCode, body) }
    var locs types.LocalesResponse
    if err := json.Unmarshal(body, &locs); err != nil { t.Fatalf("/locales json: %v", err) }
    if len(locs.Catalogs) != 2 || locs.Catalogs[0].Locale != "fi" || locs.Catalogs[1].Supported {
        t.Fatalf("unexpected catalogs: %+v", locs.Catalogs)
    }

    resp, body = httpGet(t, srv.URL+"/translations/fi")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/translations/fi %d %s", resp.StatusCode, body) }
    var tr types.TranslationsResponse
    if err := json.Unmarshal(body, &tr); err != nil { t.Fatalf("/translations json: %v", err) }
    if tr.Translations["Historic events"] != "Historialliset tapahtumat" { t.Fatalf("unexpected catalog: %v", tr.Translations) }

    // sv.mo exists but only fi is read.
    resp, body = httpGet(t, srv.URL+"/translations/sv")
    if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"translations":{}`) {
        t.Fatalf("/translations/sv %d %s", resp.StatusCode, body)
    }

    resp, body = httpGet(t, srv.URL+"/events?lang=fi&format=json")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/events %d %s", resp.StatusCode, body) }
    var ev types.EventsResponse
    if err := json.Unmarshal(body, &ev); err != nil { t.Fatalf("/events json: %v", err) }
    if ev.Count != 123 { t.Fatalf("count=%d", ev.Count) }
    for i, rec := range ev.Records {
        lines := strings.Split(rec, "\n")
        if len(lines) != 4 { t.Fatalf("record %d has %d lines", i, len(lines)) }
        for j, tag := range []string{gedcom.TagEvent, gedcom.TagType, gedcom.TagDate, gedcom.TagNote} {
            if !strings.HasPrefix(lines[j], tag) { t.Fatalf("record %d line %d=%q want prefix %q", i, j, lines[j], tag) }
        }
        if lines[2] != gedcom.TagDate+ev.Events[i].Date { t.Fatalf("record %d date mismatch", i) }
    }
}

// TestE2E_MissingCatalog503 verifies a resources folder without the Finnish
// catalog is reported as unavailable rather than as an empty catalog.
func TestE2E_MissingCatalog503(t *testing.T) {
    dir := createTempResourcesDir(t, "sv")
    srv, p := newServerForDir(t, dir, catalog.V1DetailedIntervals, false)
    if err := p.OnLoad(); err == nil { t.Fatalf("expected OnLoad to fail without fi.mo") }

    resp, body := httpGet(t, srv.URL+"/translations/fi")
    if resp.StatusCode != http.StatusServiceUnavailable { t.Fatalf("expected 503, got %d %s", resp.StatusCode, body) }
    resp, _ = httpGet(t, srv.URL+"/readyz")
    if resp.StatusCode != http.StatusServiceUnavailable { t.Fatalf("/readyz expected 503, got %d", resp.StatusCode) }

    // Records do not depend on translations.
    resp, body = httpGet(t, srv.URL+"/events")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/events %d %s", resp.StatusCode, body) }
}

// TestE2E_CorruptCatalog503 replaces fi.mo with garbage.
func TestE2E_CorruptCatalog503(t *testing.T) {
    dir := createTempResourcesDir(t, "fi")
    if err := os.WriteFile(filepath.Join(dir, "language", "fi.mo"), []byte("not a catalog at all, just text"), 0o644); err != nil {
        t.Fatalf("write: %v", err)
    }
    srv, _ := newServerForDir(t, dir, catalog.V2SingleDates, false)
    resp, body := httpGet(t, srv.URL+"/translations/fi")
    if resp.StatusCode != http.StatusServiceUnavailable { t.Fatalf("expected 503, got %d %s", resp.StatusCode, body) }
}

// TestE2E_VariantsAgree checks both tables list the same people in the same
// order and differ only in the date form.
func TestE2E_VariantsAgree(t *testing.T) {
    dir := createTempResourcesDir(t, "fi")
    v1, _ := newServerForDir(t, dir, catalog.V1DetailedIntervals, true)
    v2, _ := newServerForDir(t, dir, catalog.V2SingleDates, true)

    decode := func(url string) types.EventsResponse {
        resp, body := httpGet(t, url+"/events?format=json")
        if resp.StatusCode != http.StatusOK { t.Fatalf("%s/events %d", url, resp.StatusCode) }
        var er types.EventsResponse
        if err := json.Unmarshal(body, &er); err != nil { t.Fatalf("json: %v", err) }
        return er
    }
    a, b := decode(v1.URL), decode(v2.URL)
    if a.Count != b.Count { t.Fatalf("counts differ: %d vs %d", a.Count, b.Count) }
    for i := range a.Events {
        if a.Events[i].Title != b.Events[i].Title { t.Fatalf("record %d title %q vs %q", i, a.Events[i].Title, b.Events[i].Title) }
        if strings.Contains(b.Events[i].Date, "FROM") || strings.Contains(b.Events[i].Date, "TO ") {
            t.Fatalf("record %d in single dates table is an interval: %q", i, b.Events[i].Date)
        }
    }
}
