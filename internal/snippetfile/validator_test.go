package snippetfile

import "testing"

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-ordered.yaml", "valid-no-version.yaml", "valid.json", "invalid-future-version.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-bad-pattern.yaml", "key"},
		{"invalid-non-string-body.yaml", "type"},
		{"invalid-unknown-field.yaml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, but got valid", tt.file)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s", tt.file)
			}
			if tt.keyword == "" {
				return
			}
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					return
				}
			}
			t.Errorf("no issue with keyword %q in %+v", tt.keyword, result.Issues)
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
