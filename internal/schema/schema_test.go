package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jimezsa/jobextract/internal/models"
)

const conforming = `{
  "job_title": "Senior Go Engineer",
  "company": "Acme",
  "posted_date": "2024-03-01",
  "requirements": "5+ years of Go",
  "salary_annual": "$150,000",
  "company_country": "Germany",
  "company_address": "1 Main St, Berlin",
  "classification": "remote_timezone"
}`

func TestDecodeConforming(t *testing.T) {
	record, err := Decode(conforming)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	cases := []struct {
		name string
		got  models.Optional[string]
		want string
	}{
		{FieldJobTitle, record.JobTitle, "Senior Go Engineer"},
		{FieldCompany, record.Company, "Acme"},
		{FieldPostedDate, record.PostedDate, "2024-03-01"},
		{FieldRequirements, record.Requirements, "5+ years of Go"},
		{FieldSalaryAnnual, record.SalaryAnnual, "$150,000"},
		{FieldCompanyCountry, record.CompanyCountry, "Germany"},
		{FieldCompanyAddress, record.CompanyAddress, "1 Main St, Berlin"},
	}
	for _, tc := range cases {
		got, ok := tc.got.Get()
		if !ok || got != tc.want {
			t.Fatalf("%s = %q (present=%v), want %q", tc.name, got, ok, tc.want)
		}
	}
	if got, _ := record.Classification.Get(); got != models.RemoteTimezone {
		t.Fatalf("classification = %q, want %q", got, models.RemoteTimezone)
	}
}

func TestValidateFillsMissingKeysWithAbsentMarker(t *testing.T) {
	record, err := Decode(`{"job_title": "SRE", "unknown_key": [1, 2, 3]}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, _ := record.JobTitle.Get(); got != "SRE" {
		t.Fatalf("job_title = %q, want %q", got, "SRE")
	}
	if record.Company.Present() || record.PostedDate.Present() || record.Classification.Present() {
		t.Fatalf("expected missing keys to be absent, got %+v", record)
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, field := range Fields {
		value, ok := decoded[field]
		if !ok {
			t.Fatalf("serialized record missing key %q", field)
		}
		if field != FieldJobTitle && value != nil {
			t.Fatalf("%s = %v, want null", field, value)
		}
	}
	if _, ok := decoded["unknown_key"]; ok {
		t.Fatalf("unknown key should be dropped")
	}
}

func TestValidateNullAndEmptyAreAbsent(t *testing.T) {
	record, err := Decode(`{"company": null, "salary_annual": "   "}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if record.Company.Present() {
		t.Fatalf("null company should be absent")
	}
	if record.SalaryAnnual.Present() {
		t.Fatalf("blank salary should be absent")
	}
}

func TestValidateKeepsNumericText(t *testing.T) {
	record, err := Decode(`{"salary_annual": 120000}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, _ := record.SalaryAnnual.Get(); got != "120000" {
		t.Fatalf("salary_annual = %q, want %q", got, "120000")
	}
}

func TestValidateRejectsUnknownClassification(t *testing.T) {
	for _, value := range []string{`"hybrid"`, `"REMOTE_WORLDWIDE"`, `""`, `true`} {
		_, err := Decode(`{"classification": ` + value + `}`)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("Decode(classification=%s) error = %v, want SchemaError", value, err)
		}
		if schemaErr.Field != FieldClassification {
			t.Fatalf("SchemaError.Field = %q, want %q", schemaErr.Field, FieldClassification)
		}
	}
}

func TestValidateRejectsNonObjects(t *testing.T) {
	for _, text := range []string{`[]`, `"text"`, `42`, `null`} {
		_, err := Decode(text)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("Decode(%s) error = %v, want SchemaError", text, err)
		}
		if !strings.Contains(schemaErr.Reason, "expected a JSON object") {
			t.Fatalf("unexpected reason: %q", schemaErr.Reason)
		}
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	cases := []string{
		"",
		"Here is the JSON you asked for",
		`{"job_title": "SRE"`,
		`{"job_title": "SRE"} trailing`,
	}
	for _, text := range cases {
		if _, err := Decode(text); err == nil {
			t.Fatalf("Decode(%q) error = nil, want error", text)
		}
	}
}

func TestValidatePostedDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"20240301", "2024-03-01"},
		{"2024-03-01T10:00:00Z", "2024-03-01"},
		{"2024-03-01T23:30:00-05:00", "2024-03-01"},
		{"2024-03-01T10:00:00", "2024-03-01"},
		{"2024-03-01T10:00:00.250", "2024-03-01"},
		{"2024-03-01T10:00", "2024-03-01"},
		{"2024-03-01 10:00:00", "2024-03-01"},
		{"20240301T100000Z", "2024-03-01"},
		{"20240301T100000+0100", "2024-03-01"},
		{"20240301T100000", "2024-03-01"},
	}

	for _, tc := range cases {
		record, err := Decode(`{"posted_date": "` + tc.raw + `"}`)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", tc.raw, err)
		}
		if got, ok := record.PostedDate.Get(); !ok || got != tc.want {
			t.Fatalf("posted_date for %q = %q (present=%v), want %q", tc.raw, got, ok, tc.want)
		}
	}
}

func TestValidateUnparseablePostedDateIsAbsent(t *testing.T) {
	for _, raw := range []string{"2024-03", "March 1st", "yesterday", "2024-13-45"} {
		record, err := Decode(`{"job_title": "Go Developer", "posted_date": "` + raw + `"}`)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", raw, err)
		}
		if record.PostedDate.Present() {
			t.Fatalf("posted_date for %q should be absent, got %q", raw, record.PostedDate.OrElse(""))
		}
		if got, _ := record.JobTitle.Get(); got != "Go Developer" {
			t.Fatalf("job_title = %q, want %q", got, "Go Developer")
		}
	}
}

func TestValidateRejectsStructuredValues(t *testing.T) {
	_, err := Validate(map[string]any{FieldRequirements: []any{"Go", "SQL"}})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Field != FieldRequirements {
		t.Fatalf("Validate() error = %v, want requirements SchemaError", err)
	}
}
