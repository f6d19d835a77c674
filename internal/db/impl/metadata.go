package impl

import (
	"context"

	"github.com/sidereusnuntius/fedoraconnector/internal/db/impl/queries"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

func (d *dbImpl) GetElementTexts(ctx context.Context, itemId int64) ([]domain.ElementText, error) {
	rows, err := d.queries.GetElementTexts(ctx, itemId)
	if err != nil {
		return nil, d.HandleError(err)
	}

	texts := make([]domain.ElementText, 0, len(rows))
	for _, t := range rows {
		texts = append(texts, domain.ElementText{
			ItemID:       t.ItemID,
			DatastreamID: t.DatastreamID,
			Element:      t.Element,
			Text:         t.Text,
		})
	}
	return texts, nil
}

func (d *dbImpl) ReplaceElementTexts(ctx context.Context, datastreamId int64, texts []domain.ElementText, record domain.ImportRecord) (id int64, err error) {
	err = d.WithTx(func(tx *queries.Queries) error {
		if err := tx.DeleteDatastreamTexts(ctx, datastreamId); err != nil {
			return err
		}

		for _, t := range texts {
			err := tx.InsertElementText(ctx, queries.InsertElementTextParams{
				ItemID:       t.ItemID,
				DatastreamID: datastreamId,
				Element:      t.Element,
				Text:         t.Text,
			})
			if err != nil {
				return err
			}
		}

		id, err = tx.InsertImport(ctx, queries.InsertImportParams{
			DatastreamID: datastreamId,
			Importer:     record.Importer,
			Patch:        record.Patch,
			Created:      record.Created,
		})
		return err
	})
	return id, err
}

func (d *dbImpl) GetImportRecords(ctx context.Context, datastreamId int64) ([]domain.ImportRecord, error) {
	rows, err := d.queries.GetImportRecords(ctx, datastreamId)
	if err != nil {
		return nil, d.HandleError(err)
	}

	records := make([]domain.ImportRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, domain.ImportRecord{
			ID:           r.ID,
			DatastreamID: r.DatastreamID,
			Importer:     r.Importer,
			Patch:        r.Patch,
			Created:      r.Created,
		})
	}
	return records, nil
}
