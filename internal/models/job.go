package models

// Classification is the remote-work constraint category of a posting.
type Classification string

const (
	RemoteWorldwide Classification = "remote_worldwide"
	RemoteTimezone  Classification = "remote_timezone"
)

func (c Classification) Valid() bool {
	return c == RemoteWorldwide || c == RemoteTimezone
}

// JobRecord is the structured posting extracted by the model. Field order is
// part of the persisted format.
type JobRecord struct {
	JobTitle       Optional[string]         `json:"job_title"`
	Company        Optional[string]         `json:"company"`
	PostedDate     Optional[string]         `json:"posted_date"`
	Requirements   Optional[string]         `json:"requirements"`
	SalaryAnnual   Optional[string]         `json:"salary_annual"`
	CompanyCountry Optional[string]         `json:"company_country"`
	CompanyAddress Optional[string]         `json:"company_address"`
	Classification Optional[Classification] `json:"classification"`
}

// Posting is a JobRecord enriched with run metadata. It is what gets written
// to disk.
type Posting struct {
	JobRecord
	SourceURL string `json:"source_url"`
	ScrapedAt string `json:"scraped_at"`
}

// SavedPosting is a Posting read back from the output directory.
type SavedPosting struct {
	Posting
	Path string `json:"-"`
}
