package domain

// ImportResult is the outcome of ingesting one file picked up from the watch directory.
type ImportResult struct {
	Filename string
	Report   *IngestReport
	Error    error
}
