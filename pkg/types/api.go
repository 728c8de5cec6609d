package types

// EventsResponse is returned by GET /events.
type EventsResponse struct {
	// Variant the records come from.
	// example: events_v1_detailed_intervals
	Variant string `json:"variant" example:"events_v1_detailed_intervals"`
	// Language tag the caller asked for. Records are not localized.
	// example: fi
	Lang string `json:"lang,omitempty" example:"fi"`
	// Number of records.
	// example: 123
	Count int `json:"count" example:"123"`
	// GEDCOM EVEN fragments in authored order.
	Records []string `json:"records"`
	// Structured records, present when format=json.
	Events []Event `json:"events,omitempty"`
}

// TranslationsResponse is returned by GET /translations/{lang}.
type TranslationsResponse struct {
	// Requested locale.
	// example: fi
	Lang string `json:"lang" example:"fi"`
	// msgid to translation. Empty for unsupported locales.
	Translations map[string]string `json:"translations"`
}

// LocalesResponse is returned by GET /locales.
type LocalesResponse struct {
	// Catalogs present in the resources folder.
	Catalogs []Catalog `json:"catalogs"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: translation resource unavailable
	Error string `json:"error" example:"translation resource unavailable"`
	// HTTP status code.
	// example: 503
	Code int `json:"code" example:"503"`
}
