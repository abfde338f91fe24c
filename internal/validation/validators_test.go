package validation

import (
	"testing"
)

func TestValidateTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"simple", "groceries", false},
		{"hyphenated", "week-end", false},
		{"empty", "", true},
		{"leading hash", "#groceries", true},
		{"contains space", "my tag", true},
		{"contains tab", "my\ttag", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateTag(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTag(%q) = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		tags        []string
		wantErr     bool
	}{
		{"description only", "buy bread", nil, false},
		{"description with tags", "buy bread", []string{"groceries", "errands"}, false},
		{"empty description", "", nil, true},
		{"bad tag", "buy bread", []string{"bad tag"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAdd(tt.description, tt.tags)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdd(%q, %v) = %v, wantErr %v", tt.description, tt.tags, err, tt.wantErr)
			}
		})
	}
}
