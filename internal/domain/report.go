package domain

import "github.com/google/uuid"

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// IngestReport summarizes one ingestion.
//
// ProcessedRows counts every valid row submitted to a bulk insert, including rows
// skipped on a debt_id conflict, so ProcessedRows+FailedRows always equals TotalRows.
// DuplicateRows is the subset of ProcessedRows that the store skipped.
type IngestReport struct {
	FileID        uuid.UUID   `json:"file_id"`
	TotalRows     int         `json:"total_rows"`
	ProcessedRows int         `json:"processed_rows"`
	FailedRows    int         `json:"failed_rows"`
	DuplicateRows int         `json:"duplicate_rows"`
	Errors        []RowError  `json:"errors"`
	ChargeIDs     []uuid.UUID `json:"charge_ids"`
}

func NewIngestReport() *IngestReport {
	return &IngestReport{
		Errors:    []RowError{},
		ChargeIDs: []uuid.UUID{},
	}
}

func (r *IngestReport) AddFailure(err *ValidationError) {
	r.FailedRows++
	r.Errors = append(r.Errors, RowError{Row: err.Row, Error: err.Error()})
}
