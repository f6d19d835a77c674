// Package render turns datastreams into HTML fragments. The display strategy is chosen from the datastream's MIME
// type: JPEG-2000 images go through the djatoka image viewer, other images are linked directly, TEI documents are
// handed to the TEI display when one is configured, and everything else gets a static message.
package render

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/fedora"
	"github.com/sidereusnuntius/fedoraconnector/internal/metrics"
)

type Strategy string

const (
	JP2      Strategy = "jp2"
	Image    Strategy = "image"
	TEI      Strategy = "tei"
	Fallback Strategy = "fallback"
)

const (
	MimeJP2    = "image/jp2"
	MimeXML    = "text/xml"
	TEIStream  = "TEI"
	ImportPath = "/admin/fedora-connector/datastreams/import/"

	FallbackMessage = "Fedora Connector does not know how to display this datastream."
	DefaultScale    = "400,0"
)

// TEIDisplay renders TEI documents. It is optional; without it TEI datastreams get the fallback message.
type TEIDisplay interface {
	Display(contentURL string) templ.Component
}

// Importers tells whether a metadata stream has an importer.
type Importers interface {
	Has(name string) bool
}

// Entry is a datastream together with the server it lives on.
type Entry struct {
	Server     domain.Server
	Datastream domain.Datastream
}

func (e Entry) contentURL() string {
	return fedora.ContentURL(e.Server, e.Datastream)
}

type Renderer struct {
	root         string
	previewScale string
	tei          TEIDisplay
	importers    Importers
	observer     metrics.Observer
}

// New creates a renderer. tei may be nil, in which case TEI documents are not displayed.
func New(cfg *config.Configuration, tei TEIDisplay, importers Importers, observer metrics.Observer) *Renderer {
	if observer == nil {
		observer = metrics.Nop{}
	}
	scale := cfg.PreviewScale
	if scale == "" {
		scale = config.DefaultPreviewScale
	}
	var root string
	if cfg.Url != nil {
		root = strings.TrimSuffix(cfg.Url.String(), "/")
	}
	return &Renderer{
		root:         root,
		previewScale: scale,
		tei:          tei,
		importers:    importers,
		observer:     observer,
	}
}

// Strategy selects how a datastream is displayed. The first matching rule wins.
func (r *Renderer) Strategy(ds domain.Datastream) Strategy {
	switch {
	case ds.MimeType == MimeJP2:
		return JP2
	case strings.HasPrefix(ds.MimeType, "image/"):
		return Image
	case strings.Contains(ds.MimeType, MimeXML) && ds.DSID == TEIStream && r.tei != nil:
		return TEI
	default:
		return Fallback
	}
}

// Display renders the datastream. params are forwarded to the JPEG-2000 viewer; when empty, the image is scaled
// to a width of 400 pixels.
func (r *Renderer) Display(server domain.Server, ds domain.Datastream, params url.Values) templ.Component {
	strategy := r.Strategy(ds)
	r.observer.RecordRender(string(strategy))

	switch strategy {
	case JP2:
		if len(params) == 0 {
			params = url.Values{"scale": {DefaultScale}}
		}
		return displayImage(fedora.RegionURL(server, ds.PID, params))
	case Image:
		return displayImage(fedora.ContentURL(server, ds))
	case TEI:
		return r.tei.Display(fedora.ContentURL(server, ds))
	default:
		return fallback()
	}
}

// Preview renders a thumbnail of image datastreams, and nothing for other datastreams.
func (r *Renderer) Preview(server domain.Server, ds domain.Datastream) templ.Component {
	switch r.Strategy(ds) {
	case JP2:
		return previewImage(fedora.RegionURL(server, ds.PID, url.Values{"scale": {r.previewScale}}))
	case Image:
		return previewImage(fedora.ContentURL(server, ds))
	default:
		return templ.NopComponent
	}
}

// Link renders an anchor to the datastream's content, opened in a new window.
func Link(server domain.Server, ds domain.Datastream) templ.Component {
	return link(fedora.ContentURL(server, ds), ds.DSID)
}

// List renders the datastreams attached to an item, or an invitation to add one.
func (r *Renderer) List(itemId int64, entries []Entry) templ.Component {
	return datastreamList(r.root+"/admin/items/edit/"+strconv.FormatInt(itemId, 10), entries)
}

// ImporterLink renders a link triggering the metadata import of the datastream, if its metadata stream has an
// importer.
func (r *Renderer) ImporterLink(ds domain.Datastream) templ.Component {
	if r.importers == nil || !r.importers.Has(ds.MetadataStream) {
		return templ.NopComponent
	}
	return importerLink(r.root + ImportPath + "?id=" + strconv.FormatInt(ds.ID, 10))
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
