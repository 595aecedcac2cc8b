package extract

import (
	"fmt"
	"strings"

	"github.com/jimezsa/jobextract/internal/models"
	"github.com/jimezsa/jobextract/internal/schema"
)

const (
	beginHTML = "<<<BEGIN HTML>>>"
	endHTML   = "<<<END HTML>>>"
)

// FollowUp is sent after a reply that failed to parse or validate.
const FollowUp = "Respond ONLY the valid JSON (no markdown, no comments)."

var fieldTypes = map[string]string{
	schema.FieldJobTitle:       "string | null",
	schema.FieldCompany:        "string | null",
	schema.FieldPostedDate:     "string | null    (ISO-8601 date YYYY-MM-DD)",
	schema.FieldRequirements:   "string | null    (main description and requirements)",
	schema.FieldSalaryAnnual:   "string | null    (annual compensation as written, any currency)",
	schema.FieldCompanyCountry: "string | null",
	schema.FieldCompanyAddress: "string | null",
}

// BuildPrompt embeds html in the extraction instructions.
func BuildPrompt(html string) string {
	var b strings.Builder

	b.WriteString("You are an information-extraction engine.\n\n")
	b.WriteString("From the HTML job posting below, identify the following fields and return\n")
	b.WriteString("EXACTLY one JSON object. Do not use markdown, code fences, or commentary.\n\n")
	b.WriteString("Schema (keys must appear in this order):\n\n{\n")

	width := 0
	for _, field := range schema.Fields {
		width = max(width, len(field)+2)
	}
	for i, field := range schema.Fields {
		typ := fieldTypes[field]
		if field == schema.FieldClassification {
			typ = classificationType()
		}
		sep := ","
		if i == len(schema.Fields)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  %-*s: %s%s\n", width, `"`+field+`"`, typ, sep)
	}
	b.WriteString("}\n\n")

	b.WriteString("For classification choose:\n")
	fmt.Fprintf(&b, "  - %s: the role can be performed from anywhere in the world\n", models.RemoteWorldwide)
	fmt.Fprintf(&b, "  - %s: remote, but restricted to a region, country or time-zone offset\n", models.RemoteTimezone)
	b.WriteString("  - null: if unclear\n\n")
	b.WriteString("Use null for any unknown or missing value. Never use an empty string.\n\n")

	b.WriteString(beginHTML)
	b.WriteString("\n")
	b.WriteString(html)
	b.WriteString("\n")
	b.WriteString(endHTML)

	return b.String()
}

func classificationType() string {
	parts := make([]string, 0, len(schema.Classifications)+1)
	for _, c := range schema.Classifications {
		parts = append(parts, `"`+string(c)+`"`)
	}
	parts = append(parts, "null")
	return strings.Join(parts, " | ")
}
