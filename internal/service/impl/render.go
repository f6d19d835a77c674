package core

import (
	"context"
	"net/url"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/fedoraconnector/internal/render"
)

func (s *AppService) RenderDatastream(ctx context.Context, id int64, params url.Values) (templ.Component, error) {
	ds, server, err := s.datastreamWithServer(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Renderer.Display(server, ds, params), nil
}

func (s *AppService) PreviewDatastream(ctx context.Context, id int64) (templ.Component, error) {
	ds, server, err := s.datastreamWithServer(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Renderer.Preview(server, ds), nil
}

func (s *AppService) LinkDatastream(ctx context.Context, id int64) (templ.Component, error) {
	ds, server, err := s.datastreamWithServer(ctx, id)
	if err != nil {
		return nil, err
	}
	return render.Link(server, ds), nil
}

func (s *AppService) ListItemDatastreams(ctx context.Context, itemId int64) (templ.Component, error) {
	list, err := s.DB.GetDatastreamsByItem(ctx, itemId)
	if err != nil {
		return nil, err
	}

	entries := make([]render.Entry, 0, len(list))
	for _, ds := range list {
		server, err := s.DB.GetServer(ctx, ds.ServerID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, render.Entry{Server: server, Datastream: ds})
	}
	return s.Renderer.List(itemId, entries), nil
}

func (s *AppService) ImporterLink(ctx context.Context, id int64) (templ.Component, error) {
	ds, err := s.DB.GetDatastream(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Renderer.ImporterLink(ds), nil
}
