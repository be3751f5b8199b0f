package model

// CsvImportResult summarizes one bulk-import run. It is displayed once and
// then discarded; nothing is persisted client-side.
type CsvImportResult struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
}
