package httpadapter

import (
	"net/http/httptest"
	"strings"
	"testing"

	"supplierwatch/internal/apperr"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"defaults", "", defaultLimit, 0, false},
		{"valid explicit", "limit=50&offset=10", 50, 10, false},
		{"limit at lower bound", "limit=1", 1, 0, false},
		{"limit at upper bound", "limit=100", 100, 0, false},
		{"limit below bound", "limit=0", 0, 0, true},
		{"limit above bound", "limit=101", 0, 0, true},
		{"limit not an integer", "limit=abc", 0, 0, true},
		{"negative offset", "offset=-1", 0, 0, true},
		{"offset not an integer", "offset=abc", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			limit, offset, err := parsePagination(r)
			if tt.wantErr {
				if !apperr.IsInputInvalid(err) {
					t.Fatalf("expected apperr.InputInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestParseCompanyID(t *testing.T) {
	if _, err := parseCompanyID("11234567000149"); err != nil {
		t.Errorf("expected a valid CNPJ to parse, got %v", err)
	}
	if _, err := parseCompanyID("not-a-cnpj"); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for a malformed id, got %v", err)
	}
}

func TestParseAlertKind(t *testing.T) {
	if _, err := parseAlertKind("STRAWMAN"); err != nil {
		t.Errorf("expected STRAWMAN to be a known alert kind, got %v", err)
	}
	if _, err := parseAlertKind("NOT_A_KIND"); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for an unknown kind, got %v", err)
	}
}

func TestParseSearchQuery(t *testing.T) {
	if _, err := parseSearchQuery(""); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for an empty query, got %v", err)
	}
	if _, err := parseSearchQuery(strings.Repeat("a", 201)); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for a 201-char query, got %v", err)
	}
	if q, err := parseSearchQuery(strings.Repeat("a", 200)); err != nil || q != strings.Repeat("a", 200) {
		t.Errorf("expected a 200-char query to be accepted as-is, got (%q, %v)", q, err)
	}
	if q, err := parseSearchQuery("a"); err != nil || q != "a" {
		t.Errorf("expected a single-char query to be accepted, got (%q, %v)", q, err)
	}
}

func TestParseExportFormat(t *testing.T) {
	if f, err := parseExportFormat(""); err != nil || f != "json" {
		t.Errorf("expected empty format to default to json, got (%q, %v)", f, err)
	}
	for _, f := range []string{"json", "csv", "pdf"} {
		if got, err := parseExportFormat(f); err != nil || got != f {
			t.Errorf("parseExportFormat(%q) = (%q, %v), want (%q, nil)", f, got, err, f)
		}
	}
	if _, err := parseExportFormat("xml"); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for an unsupported format, got %v", err)
	}
}

func TestParseOrgCode(t *testing.T) {
	if _, err := parseOrgCode("26000"); err != nil {
		t.Errorf("expected a valid org code to parse, got %v", err)
	}
	if _, err := parseOrgCode(""); !apperr.IsInputInvalid(err) {
		t.Errorf("expected apperr.InputInvalid for an empty org code, got %v", err)
	}
}
