package e2e

import (
    "context"
    "io"
    "io/fs"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"

    "finhistory/internal/catalog"
    "finhistory/internal/common/fsutil"
    "finhistory/internal/httpapi"
    "finhistory/internal/module"
    "finhistory/internal/translations"
)

// createTempResourcesDir creates a resources folder holding language/<locale>.mo
// copies of the bundled Finnish catalog and returns its path.
func createTempResourcesDir(t *testing.T, locales ...string) string {
    t.Helper()
    mo, err := fs.ReadFile(translations.Bundled(), translations.CatalogPath(translations.Finnish))
    if err != nil {
        t.Fatalf("read bundled catalog: %v", err)
    }
    dir := t.TempDir()
    if err := os.MkdirAll(filepath.Join(dir, translations.Dir), 0o755); err != nil {
        t.Fatalf("mkdir: %v", err)
    }
    for _, loc := range locales {
        p := filepath.Join(dir, translations.CatalogPath(loc))
        if err := os.WriteFile(p, mo, 0o644); err != nil {
            t.Fatalf("write temp catalog %s: %v", p, err)
        }
    }
    return dir
}

// newServerForDir runs the provider for dir behind the HTTP bridge. When start
// is false the lifecycle hooks are left to the caller.
func newServerForDir(t *testing.T, dir, variant string, start bool) (*httptest.Server, *module.Provider) {
    t.Helper()
    fsys, abs, err := fsutil.OpenDir(dir)
    if err != nil {
        t.Fatalf("open resources: %v", err)
    }
    p := module.New(module.Options{Variant: catalog.MustLookup(variant), Resources: fsys, ResourcesFolder: abs})
    if start {
        if err := p.OnLoad(); err != nil { t.Fatalf("OnLoad: %v", err) }
        if err := p.OnStart(); err != nil { t.Fatalf("OnStart: %v", err) }
    }
    srv := httptest.NewServer(httpapi.NewMux(p))
    t.Cleanup(srv.Close)
    return srv, p
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
    if err != nil { t.Fatalf("new req: %v", err) }
    resp, err := http.DefaultClient.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}
