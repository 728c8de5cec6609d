// Package translations reads the GNU gettext catalogs bundled with the module.
//
// Catalogs live at language/<locale>.mo inside a resources filesystem. The
// embedded copy is returned by Bundled; a directory on disk can be used instead
// via os.DirFS. Only Finnish is supported.
package translations

import (
	"embed"
	"encoding/binary"
	"io/fs"
	"path"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// Dir is the catalog directory inside a resources filesystem.
const Dir = "language"

// Finnish is the only locale with a bundled catalog.
const Finnish = "fi"

// moMagic is the GNU MO magic number.
const moMagic = 0x950412de

//go:embed language/*.mo
var bundled embed.FS

// Bundled returns the embedded resources filesystem. It contains Dir.
func Bundled() fs.FS { return bundled }

// Supported lists the locales the module reads catalogs for.
func Supported() []string { return []string{Finnish} }

// Canonical normalizes a locale tag ("FI" -> "fi"). ok is false when the tag
// does not parse.
func Canonical(tag string) (string, bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	return t.String(), true
}

// IsSupported reports whether tag selects a bundled catalog. Region subtags
// are not folded: "fi-FI" is not supported.
func IsSupported(tag string) bool {
	c, ok := Canonical(tag)
	return ok && c == Finnish
}

// CatalogPath returns the catalog location for locale inside a resources filesystem.
func CatalogPath(locale string) string { return path.Join(Dir, locale+".mo") }

// Load reads the catalog for locale and returns msgid -> msgstr. A missing,
// unreadable, malformed or empty catalog yields a *ResourceUnavailableError.
func Load(fsys fs.FS, locale string) (map[string]string, error) {
	p := CatalogPath(locale)
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, &ResourceUnavailableError{Locale: locale, Path: p, Err: err}
	}
	if !validMagic(b) {
		return nil, &ResourceUnavailableError{Locale: locale, Path: p, Err: errBadMagic}
	}
	mo := gotext.NewMo()
	mo.Parse(b)
	out := make(map[string]string)
	for id, tr := range mo.GetDomain().GetTranslations() {
		if id == "" {
			continue // header entry
		}
		if s := tr.Get(); s != "" {
			out[id] = s
		}
	}
	if len(out) == 0 {
		return nil, &ResourceUnavailableError{Locale: locale, Path: p, Err: errEmptyCatalog}
	}
	return out, nil
}

func validMagic(b []byte) bool {
	if len(b) < 28 {
		return false
	}
	return binary.LittleEndian.Uint32(b) == moMagic || binary.BigEndian.Uint32(b) == moMagic
}
