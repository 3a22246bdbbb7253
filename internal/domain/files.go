package domain

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Fingerprint string    `db:"fingerprint" json:"fingerprint"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploaded_at"`
}
