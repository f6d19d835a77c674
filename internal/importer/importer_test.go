package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

var ctx = context.Background()

func TestRegistry(t *testing.T) {
	r := Default()

	if diff := cmp.Diff([]string{"DC", "MODS"}, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	cases := []struct {
		name       string
		registered bool
	}{
		{"DC", true},
		{"MODS", true},
		{"dc", false},
		{"RELS-EXT", false},
		{"", false},
	}
	for _, c := range cases {
		if r.Has(c.name) != c.registered {
			t.Errorf("Has(%q): expected %v", c.name, c.registered)
		}
	}

	err := r.Register("DC", DC{})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected %s, got %v", ErrDuplicate, err)
	}
	if err = r.Register("", DC{}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected %s, got %v", ErrInvalid, err)
	}

	custom := Func(func(ctx context.Context, doc []byte) ([]domain.ElementText, error) {
		return []domain.ElementText{{Element: "Title", Text: string(doc)}}, nil
	})
	if err = r.Register("VRA", custom); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	i, ok := r.Lookup("VRA")
	if !ok {
		t.Fatal("expected VRA to be registered")
	}
	texts, _ := i.Import(ctx, []byte("hello"))
	if len(texts) != 1 || texts[0].Text != "hello" {
		t.Errorf("unexpected texts %+v", texts)
	}
}

func TestDC(t *testing.T) {
	doc := `<oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Monticello, west front</dc:title>
  <dc:creator>Jefferson, Thomas</dc:creator>
  <dc:subject>Architecture</dc:subject>
  <dc:subject>Virginia</dc:subject>
  <dc:identifier>uva-lib:1038848</dc:identifier>
  <dc:unknown>ignored</dc:unknown>
  <dc:date>   </dc:date>
</oai_dc:dc>`

	texts, err := DC{}.Import(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []domain.ElementText{
		{Element: "Title", Text: "Monticello, west front"},
		{Element: "Creator", Text: "Jefferson, Thomas"},
		{Element: "Subject", Text: "Architecture"},
		{Element: "Subject", Text: "Virginia"},
		{Element: "Identifier", Text: "uva-lib:1038848"},
	}
	if diff := cmp.Diff(expected, texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}

	if _, err = (DC{}).Import(ctx, []byte("<oai_dc:dc>")); err == nil {
		t.Error("expected an error for a truncated document")
	}
}

func TestMODS(t *testing.T) {
	doc := `<mods xmlns="http://www.loc.gov/mods/v3">
  <titleInfo><nonSort>The</nonSort><title>Papers of Thomas Jefferson</title><subTitle>Retirement Series</subTitle></titleInfo>
  <name type="personal">
    <namePart>Jefferson, Thomas</namePart><namePart>1743-1826</namePart>
    <role><roleTerm type="text">creator</roleTerm></role>
  </name>
  <name type="personal">
    <namePart>Looney, J. Jefferson</namePart>
    <role><roleTerm type="text">editor</roleTerm></role>
  </name>
  <typeOfResource>text</typeOfResource>
  <originInfo><publisher>Princeton University Press</publisher><dateIssued>2004</dateIssued></originInfo>
  <language><languageTerm type="code">eng</languageTerm></language>
  <abstract>Letters written
    after 1809.</abstract>
  <subject><topic>Presidents</topic><geographic>Monticello</geographic></subject>
</mods>`

	texts, err := MODS{}.Import(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []domain.ElementText{
		{Element: "Title", Text: "The Papers of Thomas Jefferson: Retirement Series"},
		{Element: "Creator", Text: "Jefferson, Thomas, 1743-1826"},
		{Element: "Contributor", Text: "Looney, J. Jefferson"},
		{Element: "Type", Text: "text"},
		{Element: "Publisher", Text: "Princeton University Press"},
		{Element: "Date", Text: "2004"},
		{Element: "Language", Text: "eng"},
		{Element: "Description", Text: "Letters written after 1809."},
		{Element: "Subject", Text: "Presidents"},
		{Element: "Coverage", Text: "Monticello"},
	}
	if diff := cmp.Diff(expected, texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
}
