// Package catalog holds the bundled historic event tables. Each table is a
// named variant authored as YAML under data/ and parsed once on first use.
// Tables never change after loading; accessors hand out copies.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"finhistory/internal/gedcom"
)

// Names of the bundled variants.
const (
	V1DetailedIntervals = "events_v1_detailed_intervals"
	V2SingleDates       = "events_v2_single_dates"

	// Default is used when configuration leaves the variant empty.
	Default = V1DetailedIntervals
)

//go:embed data/*.yaml
var dataFS embed.FS

// Variant is one immutable event table.
type Variant struct {
	name        string
	description string
	records     []gedcom.Record
}

// Name returns the variant identifier, e.g. "events_v1_detailed_intervals".
func (v *Variant) Name() string { return v.name }

// Description is the authored one-line summary of the table.
func (v *Variant) Description() string { return v.description }

// Len returns the number of records.
func (v *Variant) Len() int { return len(v.records) }

// Events returns a fresh copy of every record in authored order.
func (v *Variant) Events() []gedcom.Record {
	out := make([]gedcom.Record, len(v.records))
	for i, r := range v.records {
		r.Date = r.Date.Clone()
		out[i] = r
	}
	return out
}

// Strings renders every record as a GEDCOM EVEN fragment.
func (v *Variant) Strings() []string {
	out := make([]string, len(v.records))
	for i, r := range v.records {
		out[i] = r.String()
	}
	return out
}

var bundled = sync.OnceValues(func() (map[string]*Variant, error) {
	return LoadAll(dataFS, "data")
})

// Lookup returns the bundled variant with the given name. An empty name
// selects Default.
func Lookup(name string) (*Variant, error) {
	all, err := bundled()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = Default
	}
	v, ok := all[name]
	if !ok {
		return nil, ErrUnknownVariant(name)
	}
	return v, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) *Variant {
	v, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Names lists the bundled variant names in sorted order.
func Names() []string {
	all, err := bundled()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadAll parses every *.yaml table in dir of fsys, keyed by variant name.
func LoadAll(fsys fs.FS, dir string) (map[string]*Variant, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Variant, len(matches))
	for _, m := range matches {
		v, err := Load(fsys, m)
		if err != nil {
			return nil, err
		}
		if _, dup := out[v.name]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate variant %q", m, v.name)
		}
		out[v.name] = v
	}
	return out, nil
}

type tableFile struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Events      []tableEntry `yaml:"events"`
}

type tableEntry struct {
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
	Date  string `yaml:"date"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Note  string `yaml:"note"`
}

// Load parses a single YAML table. A table without a name takes the file's
// base name.
func Load(fsys fs.FS, file string) (*Variant, error) {
	b, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", file, err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", file, err)
	}
	if tf.Name == "" {
		tf.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	v := &Variant{name: tf.Name, description: tf.Description, records: make([]gedcom.Record, 0, len(tf.Events))}
	for i, e := range tf.Events {
		r, err := e.record()
		if err != nil {
			return nil, fmt.Errorf("catalog %s: event %d (%s): %w", file, i, e.Title, err)
		}
		v.records = append(v.records, r)
	}
	return v, nil
}

func (e tableEntry) record() (gedcom.Record, error) {
	r := gedcom.Record{
		Title: strings.TrimSpace(e.Title),
		Type:  strings.TrimSpace(e.Type),
		Note:  strings.TrimSpace(e.Note),
	}
	if r.Title == "" {
		return r, fmt.Errorf("missing title")
	}
	if e.Date != "" && (e.From != "" || e.To != "") {
		return r, fmt.Errorf("date and from/to are mutually exclusive")
	}
	switch {
	case e.Date != "":
		d, err := gedcom.ParseDate(e.Date)
		if err != nil {
			return r, err
		}
		r.Date = gedcom.On(d)
	case e.From != "" || e.To != "":
		if e.From != "" {
			d, err := gedcom.ParseDate(e.From)
			if err != nil {
				return r, err
			}
			r.Date.From = &d
		}
		if e.To != "" {
			d, err := gedcom.ParseDate(e.To)
			if err != nil {
				return r, err
			}
			r.Date.To = &d
		}
	default:
		return r, fmt.Errorf("missing date")
	}
	return r, nil
}
