// Package document renders charge notices as PDF and stores them.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

const ContentType = "application/pdf"

type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
}

type Generator struct {
	log      *slog.Logger
	uploader Uploader
}

func NewGenerator(log *slog.Logger, uploader Uploader) *Generator {
	return &Generator{
		log:      log,
		uploader: uploader,
	}
}

// Key is the storage key of the notice for debtID. It doubles as the reference
// handed to the deliverer.
func Key(debtID uuid.UUID) string {
	return "charges/" + debtID.String() + ".pdf"
}

// Generate renders the notice and stores it under Key(charge.DebtID). Generating
// twice for the same charge overwrites the previous document.
func (g *Generator) Generate(ctx context.Context, charge *domain.Charge) (string, error) {
	content, err := Render(charge)
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}

	key := Key(charge.DebtID)

	if err := g.uploader.Upload(ctx, key, bytes.NewReader(content), ContentType); err != nil {
		return "", &domain.GenerationError{Err: fmt.Errorf("failed to store document: %w", err)}
	}

	g.log.DebugContext(ctx, "charge notice generated",
		slog.String("charge_id", charge.ID.String()),
		slog.String("key", key),
		slog.Int("size", len(content)),
	)

	return key, nil
}

// Render builds the PDF notice for charge.
func Render(charge *domain.Charge) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(12, "Charge notice", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
		line.NewRow(6),
	)

	m.AddRows(
		field("Debtor", charge.Name),
		field("Government ID", charge.GovernmentID),
		field("Email", charge.Email),
		field("Amount due", charge.DebtAmount.StringFixed(2)),
		field("Due date", charge.DebtDueDate.Format(domain.DueDateLayout)),
		field("Debt ID", charge.DebtID.String()),
	)

	m.AddRows(
		line.NewRow(6),
		text.NewRow(10, "Please settle the amount above by the due date.", props.Text{
			Size:  9,
			Style: fontstyle.Italic,
			Align: align.Left,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func field(label, value string) core.Row {
	return row.New(8).Add(
		text.NewCol(4, label, props.Text{Size: 10, Style: fontstyle.Bold}),
		col.New(8).Add(text.New(value, props.Text{Size: 10})),
	)
}
