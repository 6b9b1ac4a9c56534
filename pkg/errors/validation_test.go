package errors

import (
	"strings"
	"testing"
)

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "table1", false},
		{"generated", "pie-2f1c9a4e-7d0b-4a53-9b8e-1f6c0c1d2e3f", false},
		{"numeric", "7", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"space", "table 1", true},
		{"tab", "table\t1", true},
		{"control char", "table\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateItemID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty uses default", "", false},
		{"plain", "Quarterly Sales", false},
		{"unicode", "Umsatz – Q3", false},
		{"max length", strings.Repeat("x", MaxTitleLength), false},

		{"too long", strings.Repeat("x", MaxTitleLength+1), true},
		{"null byte", "Sales\x00", true},
		{"newline", "Sales\nReport", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "report.pdf", false},
		{"nested", "out/report.svg", false},
		{"absolute", "/tmp/report.png", false},
		{"inner dots cleaned", "out/../report.svg", false},

		{"empty", "", true},
		{"null byte", "report\x00.pdf", true},
		{"parent", "../report.pdf", true},
		{"bare parent", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
