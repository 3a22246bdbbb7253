package ingestion

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength         = 100
	minGovernmentIDLength = 11
	maxGovernmentIDLength = 14
)

// ValidateRow turns a raw row into a charge record. Any failure is returned as
// *domain.ValidationError carrying row.
func ValidateRow(row int, raw domain.RawCharge) (*domain.ChargeRecord, error) {
	invalid := func(field string, cause error) error {
		return &domain.ValidationError{Row: row, Field: field, Cause: cause}
	}

	for _, f := range []struct{ name, value string }{
		{"name", raw.Name},
		{"government_id", raw.GovernmentID},
		{"email", raw.Email},
		{"debt_amount", raw.DebtAmount},
		{"debt_due_date", raw.DebtDueDate},
		{"debt_id", raw.DebtID},
	} {
		if err := checkText(f.value); err != nil {
			return nil, invalid(f.name, err)
		}
	}

	if n := utf8.RuneCountInString(raw.Name); n == 0 || n > maxNameLength {
		return nil, invalid("name", fmt.Errorf("length must be between 1 and %d, got %d", maxNameLength, n))
	}

	if n := utf8.RuneCountInString(raw.GovernmentID); n < minGovernmentIDLength || n > maxGovernmentIDLength {
		return nil, invalid("government_id", fmt.Errorf(
			"length must be between %d and %d, got %d", minGovernmentIDLength, maxGovernmentIDLength, n,
		))
	}

	email, err := parseEmail(raw.Email)
	if err != nil {
		return nil, invalid("email", err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(raw.DebtAmount))
	if err != nil {
		return nil, invalid("debt_amount", fmt.Errorf("invalid decimal %q", raw.DebtAmount))
	}
	if !amount.IsPositive() {
		return nil, invalid("debt_amount", fmt.Errorf("must be greater than 0, got %s", amount))
	}

	dueDate, err := time.Parse(domain.DueDateLayout, strings.TrimSpace(raw.DebtDueDate))
	if err != nil {
		return nil, invalid("debt_due_date", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw.DebtDueDate))
	}

	debtID, err := uuid.Parse(strings.TrimSpace(raw.DebtID))
	if err != nil {
		return nil, invalid("debt_id", fmt.Errorf("invalid uuid %q", raw.DebtID))
	}

	return &domain.ChargeRecord{
		Name:         raw.Name,
		GovernmentID: raw.GovernmentID,
		Email:        email,
		DebtAmount:   amount,
		DebtDueDate:  dueDate,
		DebtID:       debtID,
	}, nil
}

// checkText rejects bytes postgres refuses to store in a text column.
func checkText(value string) error {
	if !utf8.ValidString(value) {
		return errors.New("contains invalid UTF-8")
	}
	if strings.ContainsRune(value, 0) {
		return errors.New("contains a NUL byte")
	}
	return nil
}

func parseEmail(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("is required")
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return "", fmt.Errorf("invalid address %q", value)
	}

	// display names ("John <john@example.com>") are rejected
	if addr.Name != "" || addr.Address != value {
		return "", fmt.Errorf("invalid address %q", value)
	}

	return addr.Address, nil
}
