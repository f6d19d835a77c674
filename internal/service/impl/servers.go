package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/fedora"
	"github.com/sidereusnuntius/fedoraconnector/internal/queue"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
	"github.com/sidereusnuntius/fedoraconnector/internal/validate"
)

func (s *AppService) ListServers(ctx context.Context) ([]domain.Server, error) {
	return s.DB.ListServers(ctx)
}

func (s *AppService) GetServer(ctx context.Context, id int64) (domain.Server, error) {
	return s.DB.GetServer(ctx, id)
}

func (s *AppService) CreateServer(ctx context.Context, name, url, version string, active bool) (domain.Server, error) {
	server := domain.Server{
		Name:    strings.TrimSpace(name),
		URL:     strings.TrimSpace(url),
		Version: strings.TrimSpace(version),
		Active:  active,
	}
	if err := validate.ServerForm(server.Name, server.URL); err != nil {
		return domain.Server{}, fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}
	server.URL = fedora.NormalizeURL(server.URL)

	id, err := s.DB.InsertServer(ctx, server)
	if err != nil {
		return domain.Server{}, err
	}
	server.ID = id

	if server.Version == "" {
		server.Version = s.detectVersion(ctx, id)
	}
	return server, nil
}

func (s *AppService) UpdateServer(ctx context.Context, server domain.Server) error {
	server.Name = strings.TrimSpace(server.Name)
	server.URL = strings.TrimSpace(server.URL)
	server.Version = strings.TrimSpace(server.Version)
	if err := validate.ServerForm(server.Name, server.URL); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}
	server.URL = fedora.NormalizeURL(server.URL)

	if err := s.DB.UpdateServer(ctx, server); err != nil {
		return err
	}
	if server.Version == "" {
		s.detectVersion(ctx, server.ID)
	}
	return nil
}

func (s *AppService) DeleteServer(ctx context.Context, id int64) error {
	return s.DB.DeleteServer(ctx, id)
}

func (s *AppService) RefreshVersion(ctx context.Context, id int64) (string, error) {
	return queue.Refresh(ctx, s.DB, s.Fedora, id)
}

// detectVersion schedules version detection, or runs it right away if there is no queue. Failures are logged
// but do not fail the save: an unknown version is treated as Fedora 3.
func (s *AppService) detectVersion(ctx context.Context, id int64) string {
	if s.Queue != nil {
		if err := s.Queue.RefreshVersion(ctx, id); err != nil {
			log.Error().Err(err).Int64("server", id).Msg("failed to enqueue version detection")
		}
		return ""
	}

	version, err := s.RefreshVersion(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("server", id).Msg("server version unknown")
	}
	return version
}
