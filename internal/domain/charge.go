package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DueDateLayout = "2006-01-02"

// RawCharge is one data row of an uploaded file before validation.
type RawCharge struct {
	Name         string `csv:"name"`
	GovernmentID string `csv:"government_id"`
	Email        string `csv:"email"`
	DebtAmount   string `csv:"debt_amount"`
	DebtDueDate  string `csv:"debt_due_date"`
	DebtID       string `csv:"debt_id"`
}

// ChargeRecord is a validated row.
type ChargeRecord struct {
	Name         string          `json:"name"`
	GovernmentID string          `json:"government_id"`
	Email        string          `json:"email"`
	DebtAmount   decimal.Decimal `json:"debt_amount"`
	DebtDueDate  time.Time       `json:"debt_due_date"`
	DebtID       uuid.UUID       `json:"debt_id"`
}

type Charge struct {
	ChargeRecord

	ID           uuid.UUID `json:"id"`
	FileID       uuid.UUID `json:"file_id"`
	Status       Status    `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	Attempts     int       `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPendingCharge(fileID uuid.UUID, record *ChargeRecord) *Charge {
	return &Charge{
		ChargeRecord: *record,
		ID:           uuid.New(),
		FileID:       fileID,
		Status:       StatusPending,
	}
}
