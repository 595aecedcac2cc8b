// Package schema enforces the JobRecord contract on free-form model output.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jimezsa/jobextract/internal/models"
)

const (
	FieldJobTitle       = "job_title"
	FieldCompany        = "company"
	FieldPostedDate     = "posted_date"
	FieldRequirements   = "requirements"
	FieldSalaryAnnual   = "salary_annual"
	FieldCompanyCountry = "company_country"
	FieldCompanyAddress = "company_address"
	FieldClassification = "classification"
)

// Fields lists the record keys in their fixed order.
var Fields = []string{
	FieldJobTitle,
	FieldCompany,
	FieldPostedDate,
	FieldRequirements,
	FieldSalaryAnnual,
	FieldCompanyCountry,
	FieldCompanyAddress,
	FieldClassification,
}

// Classifications lists the permitted classification literals.
var Classifications = []models.Classification{
	models.RemoteWorldwide,
	models.RemoteTimezone,
}

const dateLayout = "2006-01-02"

// dateLayouts are the ISO-8601 forms accepted for posted_date, extended and
// basic, with and without a time of day.
var dateLayouts = []string{
	dateLayout,
	"20060102",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102T1504",
}

// SchemaError reports model output that does not conform to the record
// contract. Field is empty for document-level problems.
type SchemaError struct {
	Field  string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "schema: " + msg
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Decode parses text as a single JSON object and validates it.
func Decode(text string) (models.JobRecord, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var candidate any
	if err := dec.Decode(&candidate); err != nil {
		return models.JobRecord{}, &SchemaError{Reason: "invalid JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.JobRecord{}, &SchemaError{Reason: "trailing data after JSON object"}
	}
	return Validate(candidate)
}

// Validate converts a decoded JSON value into a JobRecord. Missing keys become
// the absent-marker and unknown keys are ignored.
func Validate(candidate any) (models.JobRecord, error) {
	object, ok := candidate.(map[string]any)
	if !ok {
		return models.JobRecord{}, &SchemaError{Reason: fmt.Sprintf("expected a JSON object, got %s", kindOf(candidate))}
	}

	var record models.JobRecord
	text := []struct {
		field string
		dst   *models.Optional[string]
	}{
		{FieldJobTitle, &record.JobTitle},
		{FieldCompany, &record.Company},
		{FieldRequirements, &record.Requirements},
		{FieldSalaryAnnual, &record.SalaryAnnual},
		{FieldCompanyCountry, &record.CompanyCountry},
		{FieldCompanyAddress, &record.CompanyAddress},
	}
	for _, entry := range text {
		value, err := textValue(entry.field, object[entry.field])
		if err != nil {
			return models.JobRecord{}, err
		}
		*entry.dst = value
	}

	posted, err := dateValue(object[FieldPostedDate])
	if err != nil {
		return models.JobRecord{}, err
	}
	record.PostedDate = posted

	classification, err := classificationValue(object[FieldClassification])
	if err != nil {
		return models.JobRecord{}, err
	}
	record.Classification = classification

	return record, nil
}

func textValue(field string, value any) (models.Optional[string], error) {
	switch v := value.(type) {
	case nil:
		return models.None[string](), nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return models.None[string](), nil
		}
		return models.Some(v), nil
	case json.Number:
		return models.Some(v.String()), nil
	default:
		return models.None[string](), &SchemaError{
			Field:  field,
			Reason: fmt.Sprintf("expected string or null, got %s", kindOf(value)),
		}
	}
}

// dateValue reduces an ISO-8601 date or date-time to its calendar date. A
// value that carries no full date is treated as absent; the output file then
// falls back to the current date.
func dateValue(value any) (models.Optional[string], error) {
	raw, err := textValue(FieldPostedDate, value)
	if err != nil {
		return raw, err
	}
	text, ok := raw.Get()
	if !ok {
		return raw, nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return models.Some(ts.Format(dateLayout)), nil
		}
	}
	return models.None[string](), nil
}

func classificationValue(value any) (models.Optional[models.Classification], error) {
	if value == nil {
		return models.None[models.Classification](), nil
	}
	text, ok := value.(string)
	if !ok {
		return models.None[models.Classification](), &SchemaError{
			Field:  FieldClassification,
			Reason: fmt.Sprintf("expected string or null, got %s", kindOf(value)),
		}
	}
	classification := models.Classification(strings.TrimSpace(text))
	if !classification.Valid() {
		return models.None[models.Classification](), &SchemaError{
			Field:  FieldClassification,
			Reason: fmt.Sprintf("%q is not one of %s", text, joinClassifications()),
		}
	}
	return models.Some(classification), nil
}

func joinClassifications() string {
	var b bytes.Buffer
	for i, c := range Classifications {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
	}
	return b.String()
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
