package impl

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
	"github.com/sidereusnuntius/fedoraconnector/internal/db/impl/queries"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
	"github.com/sidereusnuntius/fedoraconnector/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	root, _ := url.Parse("https://test.omeka")
	cfg := config.Configuration{
		Url: root,
	}
	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared")
	if err != nil {
		log.Fatal().Err(err).Msg("tests setup failure")
		return
	}

	err = initialization.SetupDB(d, "../../../migrations", "temp")
	if err != nil {
		log.Fatal().Err(err).Msg("tests setup failure")
		return
	}
	DB = New(cfg, d)
	os.Exit(m.Run())
}

func insertServer(t *testing.T, name string) domain.Server {
	t.Helper()
	s := domain.Server{
		Name:    name,
		URL:     "http://" + name + ".example.edu:8080/fedora/",
		Version: "3.4.2",
		Active:  true,
	}
	id, err := DB.InsertServer(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s.ID = id
	return s
}

func TestServerCrud(t *testing.T) {
	s := insertServer(t, "crud")

	got, err := DB.GetServer(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("server mismatch (-want +got):\n%s", diff)
	}

	s.Name = "renamed"
	s.Active = false
	if err = DB.UpdateServer(ctx, s); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err = DB.UpdateServerVersion(ctx, s.ID, "2.2.4"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, _ = DB.GetServer(ctx, s.ID)
	if got.Name != "renamed" || got.Active || got.Version != "2.2.4" {
		t.Errorf("update not applied: %+v", got)
	}

	if err = DB.DeleteServer(ctx, s.ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetServer(ctx, s.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
}

func TestUpdateMissingServer(t *testing.T) {
	err := DB.UpdateServer(ctx, domain.Server{ID: 98765, Name: "ghost", URL: "http://ghost/"})
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
}

func TestDatastreams(t *testing.T) {
	s := insertServer(t, "streams")
	const item = 42

	list, err := DB.GetDatastreamsByItem(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no datastreams, got %d", len(list))
	}

	inserted := []domain.Datastream{
		{ItemID: item, ServerID: s.ID, PID: "uva-lib:1", DSID: "IMAGE", MetadataStream: "DC", MimeType: "image/jp2"},
		{ItemID: item, ServerID: s.ID, PID: "uva-lib:2", DSID: "TEI", MetadataStream: "MODS", MimeType: "text/xml"},
	}
	for i := range inserted {
		inserted[i].ID, err = DB.InsertDatastream(ctx, inserted[i])
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	list, err = DB.GetDatastreamsByItem(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(inserted, list); diff != "" {
		t.Errorf("datastreams mismatch (-want +got):\n%s", diff)
	}

	if err = DB.DeleteServer(ctx, s.ID); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected %s when deleting a referenced server, got %v", db.ErrConflict, err)
	}

	if err = DB.DeleteDatastream(ctx, inserted[0].ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetDatastream(ctx, inserted[0].ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}

	if err = DB.DeleteItemDatastreams(ctx, item); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	list, _ = DB.GetDatastreamsByItem(ctx, item)
	if len(list) != 0 {
		t.Errorf("expected item datastreams to be deleted, got %d", len(list))
	}
}

func TestInsertDatastreamUnknownServer(t *testing.T) {
	_, err := DB.InsertDatastream(ctx, domain.Datastream{ItemID: 1, ServerID: 123456, PID: "x:1", DSID: "DC"})
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
}

func TestReplaceElementTexts(t *testing.T) {
	s := insertServer(t, "metadata")
	const item = 7
	id, err := DB.InsertDatastream(ctx, domain.Datastream{
		ItemID: item, ServerID: s.ID, PID: "uva-lib:3", DSID: "IMAGE", MetadataStream: "DC", MimeType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	first := []domain.ElementText{
		{ItemID: item, DatastreamID: id, Element: "Title", Text: "Old title"},
	}
	if _, err = DB.ReplaceElementTexts(ctx, id, first, domain.ImportRecord{Importer: "DC", Patch: "p1", Created: 1}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	second := []domain.ElementText{
		{ItemID: item, DatastreamID: id, Element: "Title", Text: "New title"},
		{ItemID: item, DatastreamID: id, Element: "Creator", Text: "Jefferson, Thomas"},
	}
	if _, err = DB.ReplaceElementTexts(ctx, id, second, domain.ImportRecord{Importer: "DC", Patch: "p2", Created: 2}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	texts, err := DB.GetElementTexts(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(second, texts); diff != "" {
		t.Errorf("element texts mismatch (-want +got):\n%s", diff)
	}

	records, err := DB.GetImportRecords(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(records) != 2 || records[1].Patch != "p2" {
		t.Errorf("unexpected import records: %+v", records)
	}

	if err = DB.DeleteDatastream(ctx, id); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	texts, _ = DB.GetElementTexts(ctx, item)
	if len(texts) != 0 {
		t.Errorf("expected element texts to be removed with the datastream, got %d", len(texts))
	}
}

func TestWithTxRollback(t *testing.T) {
	d := DB.(*dbImpl)
	failure := errors.New("abort")

	var id int64
	err := d.WithTx(func(tx *queries.Queries) (err error) {
		id, err = tx.InsertServer(ctx, queries.InsertServerParams{
			Name:   "rolled back",
			Url:    "http://rollback.example.edu/fedora/",
			Active: true,
		})
		if err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected %s, got %v", failure, err)
	}
	if _, err = DB.GetServer(ctx, id); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s after rollback, got %v", db.ErrNotFound, err)
	}
}
