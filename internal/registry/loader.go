package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"finhistory/internal/common/fsutil"
	"finhistory/internal/translations"
	"finhistory/pkg/types"
)

// LoadDir scans <dir>/language for *.mo catalogs.
// Locale is the file name without extension; Path is relative to dir.
func LoadDir(dir string) ([]types.Catalog, error) {
	fsys, _, err := fsutil.OpenDir(dir)
	if err != nil {
		return nil, err
	}
	return Scan(fsys)
}

// Scan lists the catalogs of a resources filesystem, sorted by locale.
// A filesystem without a language directory has no catalogs.
func Scan(fsys fs.FS) ([]types.Catalog, error) {
	entries, err := fs.ReadDir(fsys, translations.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var cats []types.Catalog
	for _, e := range entries {
		if e.IsDir() { continue }
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".mo") { continue }
		locale := name[:len(name)-len(".mo")]
		cats = append(cats, types.Catalog{
			Locale:    locale,
			Path:      path.Join(translations.Dir, name),
			Supported: translations.IsSupported(locale),
		})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Locale < cats[j].Locale })
	return cats, nil
}
