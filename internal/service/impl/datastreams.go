package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
	"github.com/sidereusnuntius/fedoraconnector/internal/validate"
)

func (s *AppService) QueryDatastreams(ctx context.Context, serverId int64, pid string) ([]domain.DatastreamNode, error) {
	server, err := s.DB.GetServer(ctx, serverId)
	if err != nil {
		return nil, err
	}
	return s.Fedora.ListDatastreams(ctx, server, strings.TrimSpace(pid))
}

func (s *AppService) GetDatastream(ctx context.Context, id int64) (domain.Datastream, error) {
	return s.DB.GetDatastream(ctx, id)
}

func (s *AppService) ItemDatastreams(ctx context.Context, itemId int64) ([]domain.Datastream, error) {
	return s.DB.GetDatastreamsByItem(ctx, itemId)
}

func (s *AppService) AttachDatastream(ctx context.Context, ds domain.Datastream) (domain.Datastream, error) {
	ds.PID = strings.TrimSpace(ds.PID)
	ds.DSID = strings.TrimSpace(ds.DSID)
	ds.MetadataStream = strings.TrimSpace(ds.MetadataStream)
	ds.MimeType = strings.TrimSpace(ds.MimeType)
	if err := validate.DatastreamForm(ds.PID, ds.DSID, ds.ItemID, ds.ServerID); err != nil {
		return domain.Datastream{}, fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}

	if ds.MimeType == "" {
		nodes, err := s.QueryDatastreams(ctx, ds.ServerID, ds.PID)
		if err != nil {
			return domain.Datastream{}, err
		}
		found := false
		for _, n := range nodes {
			if n.DSID == ds.DSID {
				ds.MimeType = n.MimeType
				found = true
				break
			}
		}
		if !found {
			return domain.Datastream{}, fmt.Errorf("%w: object %s has no datastream %s", service.ErrInvalidInput, ds.PID, ds.DSID)
		}
	}

	id, err := s.DB.InsertDatastream(ctx, ds)
	if err != nil {
		return domain.Datastream{}, err
	}
	ds.ID = id
	return ds, nil
}

func (s *AppService) DetachDatastream(ctx context.Context, id int64) error {
	return s.DB.DeleteDatastream(ctx, id)
}

func (s *AppService) DetachItem(ctx context.Context, itemId int64) error {
	return s.DB.DeleteItemDatastreams(ctx, itemId)
}

func (s *AppService) ElementTexts(ctx context.Context, itemId int64) ([]domain.ElementText, error) {
	return s.DB.GetElementTexts(ctx, itemId)
}

func (s *AppService) ImportHistory(ctx context.Context, id int64) ([]domain.ImportRecord, error) {
	return s.DB.GetImportRecords(ctx, id)
}

func (s *AppService) Importers() []string {
	return s.Registry.Names()
}

// datastreamWithServer loads a datastream and the server it points to.
func (s *AppService) datastreamWithServer(ctx context.Context, id int64) (domain.Datastream, domain.Server, error) {
	ds, err := s.DB.GetDatastream(ctx, id)
	if err != nil {
		return domain.Datastream{}, domain.Server{}, err
	}
	server, err := s.DB.GetServer(ctx, ds.ServerID)
	if err != nil {
		return domain.Datastream{}, domain.Server{}, fmt.Errorf("server of datastream %d: %w", id, err)
	}
	return ds, server, nil
}
