// Package module is the historic events provider the host platform loads.
//
// A Provider answers the host's module registry (title, author, version,
// support links, resources folder), hands out the bundled Finnish translation
// catalog, and renders the configured event table as GEDCOM EVEN fragments.
//
// The host drives two hooks: OnLoad on every installed module and OnStart on
// enabled ones. Collaborators are passed through Options; nothing is resolved
// implicitly. After OnLoad every method is safe for concurrent use.
package module

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"

	"finhistory/internal/catalog"
	"finhistory/internal/gedcom"
	"finhistory/internal/registry"
	"finhistory/internal/translations"
	"finhistory/pkg/types"
)

// Module identity.
const (
	CustomTitle   = "Suomen historialliset tapahtumat"
	CustomAuthor  = "Hannu Tunkkari"
	CustomWebsite = "https://github.com/ardhtu/finnish-historical-facts"
	CustomVersion = "1.0.0.5"
	CustomLast    = "https://github.com/ardhtu/finnish-historical-facts"

	// DescriptionMsgID is translated through the bundled catalog.
	DescriptionMsgID = "Historical facts (in Finnish) - prime ministers, presidents, grand dukes and kings"

	// BundledFolder is reported as the resources folder when the embedded
	// resources are in use.
	BundledFolder = "embed://resources/"
)

// ErrNotLoaded is returned by OnStart when OnLoad has not succeeded.
var ErrNotLoaded = errors.New("module not loaded")

// Custom is the host's custom-module contract.
type Custom interface {
	Title() string
	Description(lang string) string
	AuthorName() string
	Version() string
	LatestVersionURL() string
	SupportURL() string
	EnabledByDefault() bool
	ResourcesFolder() string
	CustomTranslations(lang string) (map[string]string, error)
}

// HistoricEventsModule is what the host's timeline rendering consumes.
type HistoricEventsModule interface {
	Custom
	OnLoad() error
	OnStart() error
	HistoricEventsAll(languageTag string) []string
}

var _ HistoricEventsModule = (*Provider)(nil)

// Options carries the provider's collaborators.
type Options struct {
	// Variant is the event table to serve. Nil selects catalog.Default.
	Variant *catalog.Variant
	// Resources holds language/<locale>.mo. Nil selects the embedded copy.
	Resources fs.FS
	// ResourcesFolder is the reported location of Resources.
	ResourcesFolder string
	// Logger receives lifecycle messages. Nil disables logging.
	Logger *zerolog.Logger
}

// Provider implements HistoricEventsModule.
type Provider struct {
	variant *catalog.Variant
	res     fs.FS
	folder  string
	log     zerolog.Logger

	mu       sync.RWMutex
	loaded   bool
	started  bool
	catalogs map[string]map[string]string
	locales  []types.Catalog
}

// New builds a provider. It does not touch the resources; call OnLoad.
func New(opts Options) *Provider {
	p := &Provider{
		variant: opts.Variant,
		res:     opts.Resources,
		folder:  opts.ResourcesFolder,
		log:     zerolog.Nop(),
	}
	if p.variant == nil {
		p.variant = catalog.MustLookup(catalog.Default)
	}
	if p.res == nil {
		p.res = translations.Bundled()
		if p.folder == "" {
			p.folder = BundledFolder
		}
	}
	if p.folder != "" && p.folder[len(p.folder)-1] != '/' {
		p.folder += "/"
	}
	if opts.Logger != nil {
		p.log = opts.Logger.With().Str("module", CustomTitle).Logger()
	}
	return p
}

// OnLoad reads the translation catalog of every supported locale. A missing
// or corrupt catalog fails with a translations.ResourceUnavailableError.
// Calling it again after success is a no-op.
func (p *Provider) OnLoad() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return nil
	}
	locales, err := registry.Scan(p.res)
	if err != nil {
		p.log.Error().Err(err).Msg("scan resources")
		return err
	}
	cats := make(map[string]map[string]string)
	for _, loc := range translations.Supported() {
		tr, err := translations.Load(p.res, loc)
		if err != nil {
			p.log.Error().Err(err).Str("locale", loc).Msg("load translations")
			return err
		}
		cats[loc] = tr
	}
	p.catalogs = cats
	p.locales = locales
	p.loaded = true
	p.log.Info().
		Str("variant", p.variant.Name()).
		Int("records", p.variant.Len()).
		Int("locales", len(cats)).
		Msg("module loaded")
	return nil
}

// OnStart marks the module as enabled. It requires a successful OnLoad.
func (p *Provider) OnStart() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return ErrNotLoaded
	}
	p.started = true
	p.log.Info().
		Str("version", CustomVersion).
		Str("variant", p.variant.Name()).
		Str("resources", p.folder).
		Msg("module started")
	return nil
}

// Ready reports whether both hooks have run successfully.
func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded && p.started
}

// Variant returns the event table in use.
func (p *Provider) Variant() *catalog.Variant { return p.variant }

// Locales lists the catalogs found by OnLoad.
func (p *Provider) Locales() []types.Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]types.Catalog(nil), p.locales...)
}

// Identity returns the module metadata.
func (p *Provider) Identity() types.Identity {
	return types.Identity{
		Title:            CustomTitle,
		Description:      DescriptionMsgID,
		Author:           CustomAuthor,
		Version:          CustomVersion,
		SupportURL:       CustomWebsite,
		LatestVersionURL: CustomLast,
		EnabledByDefault: false,
		ResourcesFolder:  p.folder,
		Variant:          p.variant.Name(),
	}
}

func (p *Provider) Title() string            { return CustomTitle }
func (p *Provider) AuthorName() string       { return CustomAuthor }
func (p *Provider) Version() string          { return CustomVersion }
func (p *Provider) LatestVersionURL() string { return CustomLast }
func (p *Provider) SupportURL() string       { return CustomWebsite }
func (p *Provider) EnabledByDefault() bool   { return false }
func (p *Provider) ResourcesFolder() string  { return p.folder }

// Description is the module summary in lang, falling back to English.
func (p *Provider) Description(lang string) string {
	tr, err := p.CustomTranslations(lang)
	if err == nil {
		if s, ok := tr[DescriptionMsgID]; ok {
			return s
		}
	}
	return DescriptionMsgID
}

// CustomTranslations returns a copy of the catalog for lang. Unsupported
// locales yield an empty map and no error. The catalog is loaded on first use
// if OnLoad has not run yet.
func (p *Provider) CustomTranslations(lang string) (map[string]string, error) {
	if !translations.IsSupported(lang) {
		return map[string]string{}, nil
	}
	if err := p.OnLoad(); err != nil {
		return nil, err
	}
	loc, _ := translations.Canonical(lang)
	p.mu.RLock()
	defer p.mu.RUnlock()
	src := p.catalogs[loc]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

// HistoricEventsAll renders every record as a GEDCOM EVEN fragment. The
// language tag is accepted for the host contract; the records are Finnish
// whatever it says.
func (p *Provider) HistoricEventsAll(languageTag string) []string {
	return p.variant.Strings()
}

// HistoricEvents is HistoricEventsAll in structured form.
func (p *Provider) HistoricEvents(languageTag string) []gedcom.Record {
	return p.variant.Events()
}
