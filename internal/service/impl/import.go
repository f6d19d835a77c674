package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/diff"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/fedora"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
)

func (s *AppService) ImportMetadata(ctx context.Context, id int64) (record domain.ImportRecord, err error) {
	ds, server, err := s.datastreamWithServer(ctx, id)
	if err != nil {
		return
	}

	imp, ok := s.Registry.Lookup(ds.MetadataStream)
	if !ok {
		err = fmt.Errorf("%w: %q", service.ErrNoImporter, ds.MetadataStream)
		return
	}
	defer func() {
		s.Observer.RecordImport(ds.MetadataStream, err)
	}()

	unlock := s.locks.Lock(strconv.FormatInt(ds.ItemID, 10))
	defer unlock()

	doc, err := s.Fedora.Fetch(ctx, fedora.MetadataURL(server, ds))
	if err != nil {
		return
	}

	texts, err := imp.Import(ctx, doc)
	if err != nil {
		return
	}
	for i := range texts {
		texts[i].ItemID = ds.ItemID
		texts[i].DatastreamID = ds.ID
	}

	previous, err := s.DB.GetElementTexts(ctx, ds.ItemID)
	if err != nil {
		return
	}
	var before []domain.ElementText
	for _, t := range previous {
		if t.DatastreamID == ds.ID {
			before = append(before, t)
		}
	}

	record = domain.ImportRecord{
		DatastreamID: ds.ID,
		Importer:     ds.MetadataStream,
		Patch:        diff.FindPatches(diff.Texts(before), diff.Texts(texts)),
		Created:      s.Now().Unix(),
	}
	record.ID, err = s.DB.ReplaceElementTexts(ctx, ds.ID, texts, record)
	if err != nil {
		return domain.ImportRecord{}, err
	}

	log.Info().
		Int64("datastream", ds.ID).
		Int64("item", ds.ItemID).
		Str("importer", ds.MetadataStream).
		Int("elements", len(texts)).
		Msg("imported metadata")
	return record, nil
}
