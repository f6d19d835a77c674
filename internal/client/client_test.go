package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

const listing = `<?xml version="1.0" encoding="UTF-8"?>
<objectDatastreams xmlns="http://www.fedora.info/definitions/1/0/access/" pid="uva-lib:1" baseURL="http://localhost/fedora/">
  <datastream dsid="DC" label="Dublin Core Record for this object" mimeType="text/xml"/>
  <datastream dsid="MAXIMAGE" label="Max image" mimeType="image/jp2"/>
  <datastream dsid="TEI" label="TEI transcription" mimeType="text/xml"/>
</objectDatastreams>`

const description = `<?xml version="1.0" encoding="UTF-8"?>
<fedoraRepository xmlns="http://www.fedora.info/definitions/1/0/access/">
  <repositoryName>Fedora Repository</repositoryName>
  <repositoryBaseURL>http://localhost:8080/fedora</repositoryBaseURL>
  <repositoryVersion> 3.4.2 </repositoryVersion>
</fedoraRepository>`

func fedoraServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/fedora/objects/uva-lib:1/datastreams", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xml", r.URL.Query().Get("format"))
		w.Write([]byte(listing))
	})
	mux.HandleFunc("/fedora/listDatastreams/uva-lib:1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("xml"))
		w.Write([]byte(listing))
	})
	mux.HandleFunc("/fedora/describe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(description))
	})
	mux.HandleFunc("/fedora/objects/broken/datastreams", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<objectDatastreams><datastream"))
	})
	s := httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestListDatastreams(t *testing.T) {
	s := fedoraServer(t)
	c := New(s.Client(), nil)

	expected := []domain.DatastreamNode{
		{DSID: "DC", Label: "Dublin Core Record for this object", MimeType: "text/xml"},
		{DSID: "MAXIMAGE", Label: "Max image", MimeType: "image/jp2"},
		{DSID: "TEI", Label: "TEI transcription", MimeType: "text/xml"},
	}

	for _, version := range []string{"3.4.2", "2.2.1"} {
		t.Run(version, func(t *testing.T) {
			server := domain.Server{URL: s.URL + "/fedora/", Version: version}
			nodes, err := c.ListDatastreams(ctx, server, "uva-lib:1")
			require.NoError(t, err)
			require.Equal(t, expected, nodes)
		})
	}
}

func TestListDatastreamsErrors(t *testing.T) {
	s := fedoraServer(t)
	c := New(s.Client(), nil)
	server := domain.Server{URL: s.URL + "/fedora/", Version: "3.0"}

	_, err := c.ListDatastreams(ctx, server, "missing:1")
	require.ErrorIs(t, err, ErrStatus)

	_, err = c.ListDatastreams(ctx, server, "broken")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	s := fedoraServer(t)
	c := New(s.Client(), nil)

	version, err := c.Describe(ctx, s.URL+"/fedora/")
	require.NoError(t, err)
	require.Equal(t, "3.4.2", version)
}

func TestFetchUnreachable(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	u := s.URL
	s.Close()

	c := New(nil, nil)
	_, err := c.Fetch(ctx, u+"/fedora/describe")
	require.Error(t, err)
}

func TestFetchTooLarge(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		size, err := strconv.Atoi(r.URL.Query().Get("size"))
		assert.NoError(t, err)
		_, err = w.Write(bytes.Repeat([]byte("a"), size))
		assert.NoError(t, err)
	}))
	defer s.Close()

	c := New(s.Client(), nil)
	c.maxBodySize = 16

	body, err := c.Fetch(ctx, s.URL+"/?size=16")
	require.NoError(t, err)
	require.Len(t, body, 16)

	body, err = c.Fetch(ctx, s.URL+"/?size=17")
	require.ErrorIs(t, err, ErrTooLarge)
	require.Nil(t, body)
}
