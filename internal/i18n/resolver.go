package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Table maps dotted keys such as "nav.home" to text.
type Table map[string]string

func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Resolver holds one table per supported language, all with the same keys.
type Resolver struct {
	tables map[string]Table
}

// DefaultResolver loads the locales compiled into the binary.
func DefaultResolver() (*Resolver, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return NewResolver(sub)
}

// NewResolver reads "<code>.yaml" for every supported language from fsys
// and fails unless every table has exactly the keys of the default one.
func NewResolver(fsys fs.FS) (*Resolver, error) {
	r := &Resolver{tables: make(map[string]Table, len(Supported))}

	for _, c := range Codes() {
		raw, err := fs.ReadFile(fsys, path.Clean(c+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s locale: %w", c, err)
		}
		table, err := parseTable(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s locale: %w", c, err)
		}
		r.tables[c] = table
	}

	if err := r.checkParity(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolver) checkParity() error {
	ref := r.tables[DefaultLanguage]
	var problems []string

	for _, c := range Codes() {
		if c == DefaultLanguage {
			continue
		}
		table := r.tables[c]
		var missing, extra []string
		for k := range ref {
			if _, ok := table[k]; !ok {
				missing = append(missing, k)
			}
		}
		for k := range table {
			if _, ok := ref[k]; !ok {
				extra = append(extra, k)
			}
		}
		sort.Strings(missing)
		sort.Strings(extra)
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s missing [%s]", c, strings.Join(missing, ", ")))
		}
		if len(extra) > 0 {
			problems = append(problems, fmt.Sprintf("%s extra [%s]", c, strings.Join(extra, ", ")))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("i18n: locale keys differ from %s: %s", DefaultLanguage, strings.Join(problems, "; "))
	}
	return nil
}

// Table returns a copy of the table for lang, or false if unsupported.
func (r *Resolver) Table(lang string) (Table, bool) {
	c, ok := Normalize(lang)
	if !ok {
		return nil, false
	}
	t, ok := r.tables[c]
	if !ok {
		return nil, false
	}
	return t.clone(), true
}

func parseTable(raw []byte) (Table, error) {
	var doc map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := Table{}
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, node map[interface{}]interface{}, out Table) error {
	for k, v := range node {
		key := fmt.Sprint(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		switch val := v.(type) {
		case map[interface{}]interface{}:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case nil:
			return fmt.Errorf("key %s has no value", key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}
