package snippetfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/emmetio/snippets-registry/internal/snippets"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_PreservesOrder(t *testing.T) {
	f, err := Parse(testPath("valid-ordered.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := []struct {
		key  string
		kind snippets.Kind
	}{
		{"a|anchor", snippets.KindExact},
		{"^h[1-6]$", snippets.KindPattern},
		{"^h.$", snippets.KindPattern},
		{"(?i)^BTN$", snippets.KindPattern},
		{"bq", snippets.KindExact},
	}
	if len(f.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(f.Data), len(want))
	}
	for i, w := range want {
		item := f.Data[i]
		if item.Key.Text() != w.key {
			t.Errorf("Data[%d].Key = %q, want %q", i, item.Key.Text(), w.key)
		}
		if item.Key.Kind() != w.kind {
			t.Errorf("Data[%d].Kind = %v, want %v", i, item.Key.Kind(), w.kind)
		}
	}
	if f.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", f.Version)
	}
	if f.Description == "" {
		t.Error("Description is empty")
	}
}

func TestParse_LoadsIntoStore(t *testing.T) {
	f, err := Parse(testPath("valid-ordered.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	s, err := snippets.NewStore(f.Data)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"a", `<a href="$1">$2</a>`},
		{"anchor", `<a href="$1">$2</a>`},
		{"h3", "<${0}>$1</${0}>"},
		{"btn", "<button>$1</button>"},
		{"bq", "<blockquote>$1</blockquote>"},
	}
	for _, tt := range tests {
		e, ok := s.Get(tt.name)
		if !ok {
			t.Errorf("Get(%q) = absent", tt.name)
			continue
		}
		if e.Value() != tt.body {
			t.Errorf("Get(%q) = %q, want %q", tt.name, e.Value(), tt.body)
		}
	}
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse(testPath("valid-no-version.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if f.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", f.Version, DefaultVersion)
	}
}

func TestParse_JSON(t *testing.T) {
	f, err := Parse(testPath("valid.json"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(f.Data))
	}
	if !f.Data[1].Key.IsPattern() {
		t.Errorf("Data[1] = %s, want a pattern", f.Data[1].Key)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		file       string
		invalidKey bool
	}{
		{"invalid-bad-pattern.yaml", true},
		{"invalid-non-string-body.yaml", false},
		{"invalid-future-version.yaml", false},
		{"invalid-not-yaml.yaml", false},
		{"nonexistent.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Parse(testPath(tt.file))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := snippets.IsInvalidKey(err); got != tt.invalidKey {
				t.Errorf("IsInvalidKey = %v, want %v (err: %v)", got, tt.invalidKey, err)
			}
		})
	}
}

func TestLoad_ReturnsValidationError(t *testing.T) {
	_, err := Load(testPath("invalid-unknown-field.yaml"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Load error = %v, want *ValidationError", err)
	}
	if len(ve.Issues) == 0 {
		t.Error("ValidationError has no issues")
	}
}

func TestLoad_Valid(t *testing.T) {
	f, err := Load(testPath("valid-ordered.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(f.Data) != 5 {
		t.Errorf("len(Data) = %d, want 5", len(f.Data))
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.0.0", true},
		{"v1.4", true},
		{"1", true},
		{"0.9.0", false},
		{"2.0.0", false},
		{"latest", false},
	}
	for _, tt := range tests {
		err := CheckVersion(tt.version)
		if (err == nil) != tt.ok {
			t.Errorf("CheckVersion(%q) error = %v, want ok=%v", tt.version, err, tt.ok)
		}
	}
}
