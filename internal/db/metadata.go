package db

import (
	"context"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

type Metadata interface {
	GetElementTexts(ctx context.Context, itemId int64) ([]domain.ElementText, error)
	// ReplaceElementTexts deletes the element texts previously imported from the datastream and inserts texts,
	// recording the import, all in the same transaction.
	ReplaceElementTexts(ctx context.Context, datastreamId int64, texts []domain.ElementText, record domain.ImportRecord) (id int64, err error)
	GetImportRecords(ctx context.Context, datastreamId int64) ([]domain.ImportRecord, error)
}
