package catalog

import "strings"

// Country is an entry on the country picker.
type Country struct {
	Code string
	Name string
	Flag string
}

// Countries returns every country the app knows about, including those
// without a catalog yet.
func Countries() []Country {
	return []Country{
		{Code: "CZ", Name: "Czech Republic", Flag: "🇨🇿"},
		{Code: "PL", Name: "Poland", Flag: "🇵🇱"},
		{Code: "DE", Name: "Germany", Flag: "🇩🇪"},
		{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧"},
		{Code: "UA", Name: "Ukraine", Flag: "🇺🇦"},
	}
}

// Available reports whether the registry has a catalog for the country.
func (r *Registry) Available(code string) bool {
	_, ok := r.catalogs[strings.ToLower(code)]
	return ok
}
