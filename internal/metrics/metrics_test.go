package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver(reg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	o.RecordRender("jp2")
	o.RecordRender("jp2")
	o.RecordRender("fallback")
	o.RecordFedoraRequest(time.Millisecond, nil)
	o.RecordFedoraRequest(time.Millisecond, errors.New("boom"))
	o.RecordImport("DC", nil)

	if n := testutil.ToFloat64(o.renders.WithLabelValues("jp2")); n != 2 {
		t.Errorf("expected 2 jp2 renders, got %v", n)
	}
	if n := testutil.ToFloat64(o.requestErrors); n != 1 {
		t.Errorf("expected 1 request error, got %v", n)
	}
	if n := testutil.ToFloat64(o.imports.WithLabelValues("DC", "success")); n != 1 {
		t.Errorf("expected 1 successful import, got %v", n)
	}

	if _, err = NewPrometheusObserver(reg); err == nil {
		t.Error("expected an error when registering twice")
	}
}
