package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

func TestLoadEmbedded(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c, err := r.Get("CZ")
	if err != nil {
		t.Fatalf("Get(CZ): %v", err)
	}
	if c.Len() < 40 {
		t.Errorf("cz catalog has %d signs, want at least 40", c.Len())
	}
	if c.Domain != "cz" {
		t.Errorf("Domain = %q, want %q", c.Domain, "cz")
	}

	// Every real category is represented in the Czech set.
	if got := len(c.Categories()); got != len(AllCategories()) {
		t.Errorf("Categories() = %d entries, want %d", got, len(AllCategories()))
	}
}

func TestRegistryUnknownDomain(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = r.Get("xx")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("Get(xx) error = %v, want ErrUnknownDomain", err)
	}
	if r.Available("pl") {
		t.Error("expected pl to have no catalog")
	}
	if !r.Available("CZ") {
		t.Error("expected CZ to have a catalog")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Warning", CategoryWarning, false},
		{"  prohibition ", CategoryProhibition, false},
		{"Výstražné", CategoryWarning, false},
		{"Zákazové", CategoryProhibition, false},
		{"Příkazové", CategoryMandatory, false},
		{"Informativní", CategoryInformation, false},
		{"Random", CategoryAll, false},
		{"Vše", CategoryAll, false},
		{"speed", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testCatalog() *Catalog {
	return New("cz", "Test", []SignRecord{
		{ID: 1, CanonicalName: "Curve to the right", LocalizedName: "Zatáčka vpravo", Category: CategoryWarning, Description: "bend"},
		{ID: 2, CanonicalName: "No overtaking", LocalizedName: "Zákaz předjíždění", Category: CategoryProhibition},
		{ID: 3, CanonicalName: "Curve to the left", LocalizedName: "Zatáčka vlevo", Category: CategoryWarning},
		{ID: 4, CanonicalName: "Parking", LocalizedName: "Parkoviště", Category: CategoryInformation, Description: "Marks a parking area."},
	})
}

func TestByCategory(t *testing.T) {
	c := testCatalog()

	warn := c.ByCategory(CategoryWarning)
	if len(warn) != 2 || warn[0].ID != 1 || warn[1].ID != 3 {
		t.Errorf("ByCategory(warning) = %+v, want ids [1 3]", warn)
	}
	if got := len(c.ByCategory(CategoryAll)); got != 4 {
		t.Errorf("ByCategory(all) = %d signs, want 4", got)
	}
	if got := len(c.ByCategory(CategoryPriority)); got != 0 {
		t.Errorf("ByCategory(priority) = %d signs, want 0", got)
	}
}

func TestIDsInCatalogOrder(t *testing.T) {
	got := testCatalog().IDs()
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := testCatalog()
	all := c.All()
	all[0].LocalizedName = "mutated"

	s, ok := c.Get(1)
	if !ok {
		t.Fatal("Get(1) not found")
	}
	if s.LocalizedName != "Zatáčka vpravo" {
		t.Errorf("catalog mutated through All(): %q", s.LocalizedName)
	}
}

func TestSearch(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name  string
		query string
		cat   Category
		want  []int
	}{
		{"empty query returns all", "", CategoryAll, []int{1, 2, 3, 4}},
		{"localized name", "zatáčka", CategoryAll, []int{1, 3}},
		{"canonical name case-insensitive", "CURVE TO THE LEFT", CategoryAll, []int{3}},
		{"description", "parking area", CategoryAll, []int{4}},
		{"category restricts", "z", CategoryProhibition, []int{2}},
		{"no match", "tram", CategoryAll, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.query, tt.cat)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing domain", "signs: []"},
		{"non-positive id", "domain: x\nsigns:\n  - id: 0\n    localized_name: a\n    category: warning\n"},
		{"duplicate id", "domain: x\nsigns:\n  - id: 1\n    localized_name: a\n    category: warning\n  - id: 1\n    localized_name: b\n    category: warning\n"},
		{"missing name", "domain: x\nsigns:\n  - id: 1\n    category: warning\n"},
		{"bad category", "domain: x\nsigns:\n  - id: 1\n    localized_name: a\n    category: speed\n"},
		{"all is not a sign category", "domain: x\nsigns:\n  - id: 1\n    localized_name: a\n    category: all\n"},
		{"unknown field", "domain: x\nsigns:\n  - id: 1\n    localized_name: a\n    category: warning\n    colour: red\n"},
		{"id not an integer", "domain: x\nsigns:\n  - id: one\n    localized_name: a\n    category: warning\n"},
		{"signs not a list", "domain: x\nsigns: many\n"},
		{"empty document", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseReportsFieldErrors(t *testing.T) {
	_, err := Parse([]byte("domain: x\nsigns:\n  - id: 1\n    localized_name: a\n    category: warning\n  - id: 1\n    localized_name: b\n    category: warning\n"))
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Parse error = %v, want validator.ValidationErrors", err)
	}
	if verrs[0].Tag() != "unique" {
		t.Errorf("failed tag = %q, want unique", verrs[0].Tag())
	}

	_, err = Parse([]byte("domain: x\nsigns:\n  - id: 1\n    localised_name: a\n    category: warning\n"))
	var serr *jsonschema.ValidationError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse error = %v, want *jsonschema.ValidationError", err)
	}
}

func TestParseDefaultsCanonicalName(t *testing.T) {
	c, err := Parse([]byte("domain: PL\nsigns:\n  - id: 7\n    localized_name: Stop\n    category: priority\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Domain != "pl" {
		t.Errorf("Domain = %q, want pl", c.Domain)
	}
	s, _ := c.Get(7)
	if s.CanonicalName != "Stop" {
		t.Errorf("CanonicalName = %q, want Stop", s.CanonicalName)
	}
}

func TestLoadDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	data := "domain: pl\nname: Poland\nsigns:\n  - id: 1\n    localized_name: Stop\n    category: priority\n"
	if err := os.WriteFile(filepath.Join(dir, "pl.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := r.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if !r.Available("pl") {
		t.Fatal("expected pl catalog after LoadDir")
	}
	domains := r.Domains()
	if len(domains) != 2 || domains[0] != "cz" || domains[1] != "pl" {
		t.Errorf("Domains() = %v, want [cz pl]", domains)
	}
}
