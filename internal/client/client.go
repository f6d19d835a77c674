package client

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/fedora"
	"github.com/sidereusnuntius/fedoraconnector/internal/metrics"
)

var (
	// ErrStatus is returned when a Fedora server answers with an error status code.
	ErrStatus = errors.New("unexpected response status")
	// ErrTooLarge is returned when a document exceeds the client's size limit.
	ErrTooLarge = errors.New("response body too large")
)

// MaxBodySize limits the size of the documents read from a Fedora server.
const MaxBodySize = 16 << 20

//go:generate mockgen -destination=../mocks/mock_client.go -package=mock_db github.com/sidereusnuntius/fedoraconnector/internal/client Fedora

// Fedora is the set of calls made against a Fedora server.
type Fedora interface {
	// Describe returns the version reported by the repository description at serverURL.
	Describe(ctx context.Context, serverURL string) (version string, err error)
	// ListDatastreams returns the datastreams of the object, in the order given by the server.
	ListDatastreams(ctx context.Context, server domain.Server, pid string) ([]domain.DatastreamNode, error)
	// Fetch returns the body of the document at url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HttpClient queries Fedora servers over their REST API.
type HttpClient struct {
	client   *http.Client
	observer metrics.Observer
	// maxBodySize defaults to MaxBodySize.
	maxBodySize int64
}

func New(client *http.Client, observer metrics.Observer) *HttpClient {
	if client == nil {
		client = &http.Client{}
	}
	if observer == nil {
		observer = metrics.Nop{}
	}
	return &HttpClient{
		client:      client,
		observer:    observer,
		maxBodySize: MaxBodySize,
	}
}

type objectDatastreams struct {
	XMLName     xml.Name `xml:"objectDatastreams"`
	PID         string   `xml:"pid,attr"`
	Datastreams []struct {
		DSID     string `xml:"dsid,attr"`
		Label    string `xml:"label,attr"`
		MimeType string `xml:"mimeType,attr"`
	} `xml:"datastream"`
}

type repositoryDescription struct {
	XMLName xml.Name `xml:"fedoraRepository"`
	Name    string   `xml:"repositoryName"`
	Version string   `xml:"repositoryVersion"`
}

func (c *HttpClient) ListDatastreams(ctx context.Context, server domain.Server, pid string) ([]domain.DatastreamNode, error) {
	u := fedora.ListDatastreamsURL(server, pid)
	body, err := c.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var listing objectDatastreams
	if err = xml.Unmarshal(body, &listing); err != nil {
		log.Error().Err(err).Str("url", u).Msg("failed to parse datastream listing")
		return nil, fmt.Errorf("invalid datastream listing for %s: %w", pid, err)
	}

	nodes := make([]domain.DatastreamNode, len(listing.Datastreams))
	for i, d := range listing.Datastreams {
		nodes[i] = domain.DatastreamNode{
			DSID:     d.DSID,
			Label:    d.Label,
			MimeType: d.MimeType,
		}
	}
	return nodes, nil
}

func (c *HttpClient) Describe(ctx context.Context, serverURL string) (string, error) {
	u := fedora.DescribeURL(serverURL)
	body, err := c.Fetch(ctx, u)
	if err != nil {
		return "", err
	}

	var desc repositoryDescription
	if err = xml.Unmarshal(body, &desc); err != nil {
		log.Error().Err(err).Str("url", u).Msg("failed to parse repository description")
		return "", fmt.Errorf("invalid repository description: %w", err)
	}
	return strings.TrimSpace(desc.Version), nil
}

func (c *HttpClient) Fetch(ctx context.Context, url string) (body []byte, err error) {
	start := time.Now()
	defer func() {
		c.observer.RecordFedoraRequest(time.Since(start), err)
	}()

	res, err := c.Dereference(ctx, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err = io.ReadAll(io.LimitReader(res.Body, c.maxBodySize+1))
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to read response body")
		return nil, err
	}
	if int64(len(body)) > c.maxBodySize {
		log.Error().Str("url", url).Int64("limit", c.maxBodySize).Msg("response body too large")
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, url, c.maxBodySize)
	}
	return body, nil
}

// Dereference performs a GET request on url. Responses with an error status are closed and reported as ErrStatus.
func (c *HttpClient) Dereference(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/xml, application/xml;q=0.9, */*;q=0.8")

	log.Debug().Str("url", url).Msg("fedora request")
	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to do request")
		return nil, err
	}

	if res.StatusCode >= http.StatusBadRequest {
		defer res.Body.Close()
		content, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		log.Error().
			Str("url", url).
			Str("status", res.Status).
			Bytes("response", content).
			Msg("fetch error")
		return nil, fmt.Errorf("%w: %s from %s", ErrStatus, res.Status, url)
	}
	return res, nil
}
