package types

// Identity describes the module to the host's module registry.
type Identity struct {
	// Display title shown in the host's control panel.
	// example: Suomen historialliset tapahtumat
	Title string `json:"title" example:"Suomen historialliset tapahtumat"`
	// One sentence describing what the module provides.
	Description string `json:"description"`
	// Module author.
	// example: Hannu Tunkkari
	Author string `json:"author" example:"Hannu Tunkkari"`
	// Module version string.
	// example: 1.0.0.5
	Version string `json:"version" example:"1.0.0.5"`
	// Where to get support for the module.
	// example: https://github.com/ardhtu/finnish-historical-facts
	SupportURL string `json:"support_url" example:"https://github.com/ardhtu/finnish-historical-facts"`
	// URL that reports the latest published version.
	// example: https://github.com/ardhtu/finnish-historical-facts
	LatestVersionURL string `json:"latest_version_url" example:"https://github.com/ardhtu/finnish-historical-facts"`
	// Whether the host should enable the module on install. Always false.
	// example: false
	EnabledByDefault bool `json:"enabled_by_default" example:"false"`
	// Location of the bundled resources (language files).
	// example: /opt/finhistory/resources/
	ResourcesFolder string `json:"resources_folder" example:"/opt/finhistory/resources/"`
	// Name of the event table served by this instance.
	// example: events_v1_detailed_intervals
	Variant string `json:"variant" example:"events_v1_detailed_intervals"`
}

// Event is the structured form of one historic event record.
type Event struct {
	// Person or event name.
	// example: Kustaa I Vaasa (Ruotsi)
	Title string `json:"title" example:"Kustaa I Vaasa (Ruotsi)"`
	// Office or event category.
	// example: Ruotsin kuningas
	Type string `json:"type" example:"Ruotsin kuningas"`
	// GEDCOM date or date period.
	// example: FROM 6 JUN 1523 TO 29 SEP 1560
	Date string `json:"date" example:"FROM 6 JUN 1523 TO 29 SEP 1560"`
	// Free text annotation, usually a link.
	// example: https://fi.wikipedia.org/wiki/Kustaa_Vaasa
	Note string `json:"note" example:"https://fi.wikipedia.org/wiki/Kustaa_Vaasa"`
}

// Catalog is a translation catalog found in the resources folder.
type Catalog struct {
	// Locale the catalog translates into.
	// example: fi
	Locale string `json:"locale" example:"fi"`
	// Path of the catalog relative to the resources folder.
	// example: language/fi.mo
	Path string `json:"path" example:"language/fi.mo"`
	// Whether the module reads this catalog.
	// example: true
	Supported bool `json:"supported" example:"true"`
}
