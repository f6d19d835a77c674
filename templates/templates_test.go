package templates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return doc
}

func TestLayout(t *testing.T) {
	doc := render(t, Layout(PageData{
		PageTitle: "Servers",
		Flash:     "Saved.",
		Err:       errors.New("<script>"),
		Child:     templ.Raw("<p id=\"child\">body</p>"),
	}))

	if title := doc.Find("title").Text(); title != "Servers | Fedora Connector" {
		t.Errorf("unexpected title %q", title)
	}
	if flash := doc.Find("div.flash").Text(); flash != "Saved." {
		t.Errorf("unexpected flash %q", flash)
	}
	if msg := doc.Find("div.error").Text(); msg != "<script>" {
		t.Errorf("unexpected error message %q", msg)
	}
	if doc.Find("script").Length() != 0 {
		t.Error("error message was not escaped")
	}
	if doc.Find("body p#child").Length() != 1 {
		t.Error("child component not rendered inside the body")
	}
}

func TestServerList(t *testing.T) {
	doc := render(t, ServerList([]domain.Server{
		{ID: 4, Name: "UVA", URL: "http://fedora.example.edu/fedora/", Active: true},
	}, []string{"DC", "MODS"}))

	cells := doc.Find("table.servers tbody tr td")
	if v := cells.Eq(2).Text(); v != "unknown" {
		t.Errorf("unexpected version %q", v)
	}
	if v := cells.Eq(3).Text(); v != "yes" {
		t.Errorf("unexpected active cell %q", v)
	}
	if href, _ := cells.Eq(4).Find("a").Attr("href"); href != ServersPath+"/edit/4" {
		t.Errorf("unexpected edit link %s", href)
	}
	if action, _ := cells.Eq(4).Find("form").Last().Attr("action"); action != ServersPath+"/delete/4" {
		t.Errorf("unexpected delete action %s", action)
	}
	if n := doc.Find("p.importers code").Length(); n != 2 {
		t.Errorf("expected 2 importers, got %d", n)
	}

	empty := render(t, ServerList(nil, nil))
	if empty.Find("table").Length() != 0 || empty.Find("p.importers").Length() != 0 {
		t.Error("expected neither a table nor importers without servers")
	}
}

func TestServerFormActive(t *testing.T) {
	for _, active := range []bool{true, false} {
		doc := render(t, ServerForm(ServersPath+"/add", domain.Server{Name: "UVA", Active: active}))
		_, checked := doc.Find("input#active").Attr("checked")
		if checked != active {
			t.Errorf("active %t: checked attribute present = %t", active, checked)
		}
	}
}

func TestImportResult(t *testing.T) {
	ds := domain.Datastream{ID: 11, ItemID: 8, PID: "uva-lib:1"}
	texts := []domain.ElementText{
		{ItemID: 8, DatastreamID: 11, Element: "Title", Text: "Monticello"},
		{ItemID: 8, DatastreamID: 12, Element: "Title", Text: "another stream"},
	}
	history := []domain.ImportRecord{{ID: 1, DatastreamID: 11, Importer: "DC", Created: 0}}

	doc := render(t, ImportResult(ds, history[0], texts, history))
	if dd := doc.Find("dl.elements dd"); dd.Length() != 1 || dd.Text() != "Monticello" {
		t.Errorf("unexpected elements %q", dd.Text())
	}
	if pre := doc.Find("ol.imports li pre").Text(); pre != "No changes." {
		t.Errorf("unexpected patch %q", pre)
	}
	if when := doc.Find("ol.imports li time").Text(); when != "1970-01-01T00:00:00Z" {
		t.Errorf("unexpected time %q", when)
	}
	if href, _ := doc.Find("p a").Last().Attr("href"); href != "/items/8/datastreams" {
		t.Errorf("unexpected back link %s", href)
	}
}
