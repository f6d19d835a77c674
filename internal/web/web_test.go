package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/importer"
	"github.com/sidereusnuntius/fedoraconnector/internal/metrics"
	mock_db "github.com/sidereusnuntius/fedoraconnector/internal/mocks"
	"github.com/sidereusnuntius/fedoraconnector/internal/service"
	core "github.com/sidereusnuntius/fedoraconnector/internal/service/impl"
	"github.com/sidereusnuntius/fedoraconnector/internal/state"
	"go.uber.org/mock/gomock"
)

var server = domain.Server{ID: 3, Name: "uva", URL: "http://fedora.example.edu/fedora/", Version: "3.4.2", Active: true}

func newRouter(t *testing.T) (http.Handler, *mock_db.MockDB, *mock_db.MockFedora) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	fedora := mock_db.NewMockFedora(ctrl)

	root, _ := url.Parse("https://omeka.example.edu")
	cfg := config.Configuration{Url: root, PreviewScale: config.DefaultPreviewScale, StaticDir: "static"}

	reg := prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver(reg)
	if err != nil {
		t.Fatal(err)
	}

	svc := core.New(&state.State{DB: DB, Config: cfg}, fedora, importer.Default(), nil, observer)
	h := New(&cfg, svc, nil, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r := chi.NewRouter()
	h.Mount(r)
	return r, DB, fedora
}

func do(h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestQueryDatastreams(t *testing.T) {
	r, DB, fedora := newRouter(t)

	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
	fedora.EXPECT().ListDatastreams(gomock.Any(), server, "uva-lib:1").Return([]domain.DatastreamNode{
		{DSID: "RELS-EXT", Label: "Relationships", MimeType: "application/rdf+xml"},
		{DSID: "DC", Label: "Dublin Core", MimeType: "text/xml"},
	}, nil)

	w := do(r, http.MethodGet, DatastreamsPath+"/query?server=3&pid=uva-lib:1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var got []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %s", err)
	}
	expected := []map[string]string{
		{"dsid": "RELS-EXT", "label": "Relationships"},
		{"dsid": "DC", "label": "Dublin Core"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("datastreams mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryDatastreamsEmpty(t *testing.T) {
	r, DB, fedora := newRouter(t)

	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
	fedora.EXPECT().ListDatastreams(gomock.Any(), server, "uva-lib:1").Return(nil, nil)

	w := do(r, http.MethodGet, DatastreamsPath+"/query?server=3&pid=uva-lib:1", nil)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected an empty array, got %s", body)
	}
}

func TestQueryDatastreamsErrors(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		setup    func(DB *mock_db.MockDB, fedora *mock_db.MockFedora)
		expected int
	}{
		{
			name:     "malformed server",
			query:    "server=abc&pid=uva-lib:1",
			expected: http.StatusBadRequest,
		},
		{
			name:     "missing pid",
			query:    "server=3",
			expected: http.StatusBadRequest,
		},
		{
			name:  "unknown server",
			query: "server=99&pid=uva-lib:1",
			setup: func(DB *mock_db.MockDB, fedora *mock_db.MockFedora) {
				DB.EXPECT().GetServer(gomock.Any(), int64(99)).Return(domain.Server{}, db.ErrNotFound)
			},
			expected: http.StatusNotFound,
		},
		{
			name:  "fedora error status",
			query: "server=3&pid=uva-lib:404",
			setup: func(DB *mock_db.MockDB, fedora *mock_db.MockFedora) {
				DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
				fedora.EXPECT().ListDatastreams(gomock.Any(), server, "uva-lib:404").
					Return(nil, fmt.Errorf("%w: 404 Not Found", client.ErrStatus))
			},
			expected: http.StatusBadGateway,
		},
		{
			name:  "listing too large",
			query: "server=3&pid=uva-lib:big",
			setup: func(DB *mock_db.MockDB, fedora *mock_db.MockFedora) {
				DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
				fedora.EXPECT().ListDatastreams(gomock.Any(), server, "uva-lib:big").
					Return(nil, fmt.Errorf("%w: listing exceeds limit", client.ErrTooLarge))
			},
			expected: http.StatusBadGateway,
		},
		{
			name:  "fedora unreachable",
			query: "server=3&pid=uva-lib:1",
			setup: func(DB *mock_db.MockDB, fedora *mock_db.MockFedora) {
				DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
				fedora.EXPECT().ListDatastreams(gomock.Any(), server, "uva-lib:1").
					Return(nil, errors.New("connection refused"))
			},
			expected: http.StatusBadGateway,
		},
		{
			name:  "database failure",
			query: "server=3&pid=uva-lib:1",
			setup: func(DB *mock_db.MockDB, fedora *mock_db.MockFedora) {
				DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(domain.Server{}, db.ErrInternal)
			},
			expected: http.StatusInternalServerError,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, DB, fedora := newRouter(t)
			if c.setup != nil {
				c.setup(DB, fedora)
			}
			w := do(r, http.MethodGet, DatastreamsPath+"/query?"+c.query, nil)
			if w.Code != c.expected {
				t.Errorf("expected status %d, got %d: %s", c.expected, w.Code, w.Body)
			}
		})
	}
}

func TestRenderDatastream(t *testing.T) {
	r, DB, _ := newRouter(t)

	ds := domain.Datastream{ID: 11, ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "MAXIMAGE", MetadataStream: "DC", MimeType: "image/jp2"}
	DB.EXPECT().GetDatastream(gomock.Any(), int64(11)).Return(ds, nil)
	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)

	w := do(r, http.MethodGet, "/datastreams/11?scale=800,0", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	src, _ := doc.Find("img.fedora-renderer").Attr("src")
	expected := "http://fedora.example.edu/fedora/objects/uva-lib:1/methods/djatoka:jp2SDef/getRegion?scale=800%2C0"
	if src != expected {
		t.Errorf("expected src %s, got %s", expected, src)
	}
}

func TestFragmentNotFound(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().GetDatastream(gomock.Any(), int64(12)).Return(domain.Datastream{}, db.ErrNotFound)

	if w := do(r, http.MethodGet, "/datastreams/12/link", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w := do(r, http.MethodGet, "/datastreams/nope/preview", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestItemDatastreams(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().GetDatastreamsByItem(gomock.Any(), int64(8)).Return(nil, nil)

	w := do(r, http.MethodGet, "/items/8/datastreams", nil)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if text := doc.Find("p").Text(); !strings.HasPrefix(text, "There are no datastreams for this item yet.") {
		t.Errorf("unexpected text %q", text)
	}
	if href, _ := doc.Find("a").Attr("href"); href != "https://omeka.example.edu/admin/items/edit/8" {
		t.Errorf("unexpected href %s", href)
	}
}

func TestImporterLink(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().GetDatastream(gomock.Any(), int64(11)).
		Return(domain.Datastream{ID: 11, ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "IMAGE", MetadataStream: "DC"}, nil)

	w := do(r, http.MethodGet, "/datastreams/11/importer", nil)
	expected := `[<a href="https://omeka.example.edu/admin/fedora-connector/datastreams/import/?id=11">import</a>]`
	if body := w.Body.String(); body != expected {
		t.Errorf("expected %s, got %s", expected, body)
	}
}

func TestAddServer(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().
		InsertServer(gomock.Any(), domain.Server{Name: "UVA", URL: "http://fedora.example.edu/fedora/", Version: "3.4", Active: true}).
		Return(int64(1), nil)

	w := do(r, http.MethodPost, ServersPath+"/add", url.Values{
		"name":    {"UVA"},
		"url":     {"http://fedora.example.edu/fedora"},
		"version": {"3.4"},
		"active":  {"1"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d: %s", http.StatusSeeOther, w.Code, w.Body)
	}
	if loc := w.Header().Get("Location"); loc != ServersPath {
		t.Errorf("expected redirect to %s, got %s", ServersPath, loc)
	}
}

func TestAddServerInvalid(t *testing.T) {
	r, _, _ := newRouter(t)

	w := do(r, http.MethodPost, ServersPath+"/add", url.Values{
		"name": {"<b>UVA</b>"},
		"url":  {"ftp://fedora.example.edu"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find("div.error").Length() != 1 {
		t.Error("expected the error to be shown")
	}
	if name, _ := doc.Find("input#name").Attr("value"); name != "<b>UVA</b>" {
		t.Errorf("expected the submitted name to be kept, got %q", name)
	}
}

func TestServerList(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().ListServers(gomock.Any()).Return([]domain.Server{server, {ID: 4, Name: "old", URL: "http://old/"}}, nil)

	w := do(r, http.MethodGet, ServersPath, nil)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find("table.servers tbody tr").Length(); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
	if doc.Find("a.add").Text() != "Add a Server" {
		t.Error("expected the add button")
	}
	if v := doc.Find("tbody tr").Eq(1).Find("td").Eq(2).Text(); v != "unknown" {
		t.Errorf("expected unknown version, got %q", v)
	}
	if v := doc.Find("p.importers code").Text(); v != "DCMODS" {
		t.Errorf("expected the DC and MODS importers, got %q", v)
	}
}

func TestDeleteServerInUse(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().DeleteServer(gomock.Any(), int64(3)).Return(fmt.Errorf("server 3 has datastreams: %w", db.ErrConflict))

	if w := do(r, http.MethodPost, ServersPath+"/delete/3", nil); w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestAttachDatastream(t *testing.T) {
	r, DB, _ := newRouter(t)

	expected := domain.Datastream{ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "IMAGE", MetadataStream: "DC", MimeType: "image/jpeg"}
	DB.EXPECT().InsertDatastream(gomock.Any(), expected).Return(int64(30), nil)

	w := do(r, http.MethodPost, DatastreamsPath+"/add", url.Values{
		"item":            {"8"},
		"server":          {"3"},
		"pid":             {"uva-lib:1"},
		"dsid":            {"IMAGE"},
		"metadata_stream": {"DC"},
		"mime_type":       {"image/jpeg"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d: %s", http.StatusSeeOther, w.Code, w.Body)
	}
	if loc := w.Header().Get("Location"); loc != "/items/8/datastreams" {
		t.Errorf("unexpected redirect %s", loc)
	}
}

func TestImportWithoutImporter(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().GetDatastream(gomock.Any(), int64(11)).
		Return(domain.Datastream{ID: 11, ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "IMAGE", MetadataStream: "RELS-EXT"}, nil)
	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)

	if w := do(r, http.MethodGet, DatastreamsPath+"/import/?id=11", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestMetrics(t *testing.T) {
	r, DB, _ := newRouter(t)

	ds := domain.Datastream{ID: 11, ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "OCR", MimeType: "text/plain"}
	DB.EXPECT().GetDatastream(gomock.Any(), int64(11)).Return(ds, nil)
	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
	do(r, http.MethodGet, "/datastreams/11", nil)

	w := do(r, http.MethodGet, MetricsPath, nil)
	if !strings.Contains(w.Body.String(), `fedoraconnector_renders_total{strategy="fallback"} 1`) {
		t.Errorf("expected the render to be counted, got %s", w.Body)
	}
}

func TestImportDatastream(t *testing.T) {
	r, DB, fedora := newRouter(t)

	ds := domain.Datastream{ID: 11, ItemID: 8, ServerID: 3, PID: "uva-lib:1", DSID: "IMAGE", MetadataStream: "DC", MimeType: "image/jpeg"}
	dc := `<oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Monticello</dc:title>
</oai_dc:dc>`
	imported := []domain.ElementText{{ItemID: 8, DatastreamID: 11, Element: "Title", Text: "Monticello"}}

	DB.EXPECT().GetDatastream(gomock.Any(), int64(11)).Return(ds, nil).Times(2)
	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
	fedora.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte(dc), nil)
	gomock.InOrder(
		DB.EXPECT().GetElementTexts(gomock.Any(), int64(8)).Return(nil, nil),
		DB.EXPECT().GetElementTexts(gomock.Any(), int64(8)).Return(imported, nil),
	)
	DB.EXPECT().ReplaceElementTexts(gomock.Any(), int64(11), imported, gomock.Any()).Return(int64(1), nil)
	DB.EXPECT().GetImportRecords(gomock.Any(), int64(11)).Return([]domain.ImportRecord{
		{ID: 1, DatastreamID: 11, Importer: "DC", Patch: "@@ -0,0 +1,18 @@\n+Title: Monticello%0A\n", Created: 0},
	}, nil)

	w := do(r, http.MethodGet, DatastreamsPath+"/import/?id=11", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if dd := doc.Find("dl.elements dd").Text(); dd != "Monticello" {
		t.Errorf("expected the imported title, got %q", dd)
	}
	if n := doc.Find("ol.imports li").Length(); n != 1 {
		t.Errorf("expected 1 import, got %d", n)
	}
}

func TestDetachItem(t *testing.T) {
	r, DB, _ := newRouter(t)

	DB.EXPECT().GetDatastreamsByItem(gomock.Any(), int64(8)).Return([]domain.Datastream{{ID: 1}, {ID: 2}}, nil)
	DB.EXPECT().DeleteItemDatastreams(gomock.Any(), int64(8)).Return(nil)

	w := do(r, http.MethodPost, AdminPath+"/items/8/datastreams/delete", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d: %s", http.StatusSeeOther, w.Code, w.Body)
	}
	if loc := w.Header().Get("Location"); loc != "/items/8/datastreams" {
		t.Errorf("unexpected redirect %s", loc)
	}
}

func TestRefreshServer(t *testing.T) {
	r, DB, fedora := newRouter(t)

	DB.EXPECT().GetServer(gomock.Any(), int64(3)).Return(server, nil)
	fedora.EXPECT().Describe(gomock.Any(), server.URL).Return("3.8.1", nil)
	DB.EXPECT().UpdateServerVersion(gomock.Any(), int64(3), "3.8.1").Return(nil)

	if w := do(r, http.MethodPost, ServersPath+"/refresh/3", nil); w.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d: %s", http.StatusSeeOther, w.Code, w.Body)
	}

	DB.EXPECT().GetServer(gomock.Any(), int64(4)).Return(domain.Server{}, db.ErrNotFound)
	if w := do(r, http.MethodPost, ServersPath+"/refresh/4", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetCode(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{fmt.Errorf("server 3: %w", db.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: empty name", service.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrNoImporter, http.StatusBadRequest},
		{db.ErrConflict, http.StatusConflict},
		{fmt.Errorf("%w: 500 Internal Server Error", client.ErrStatus), http.StatusBadGateway},
		{fmt.Errorf("%w: too big", client.ErrTooLarge), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if code := GetCode(c.err); code != c.expected {
			t.Errorf("expected %d for %q, got %d", c.expected, c.err, code)
		}
	}
}
