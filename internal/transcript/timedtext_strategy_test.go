package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTimedTextTest(t *testing.T, handler http.Handler) *TimedTextResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	r := NewTimedTextResolver(srv.Client(), "en")
	r.baseURL = srv.URL
	return r
}

func TestTimedTextNoTracks(t *testing.T) {
	r := newTimedTextTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8" ?><transcript_list docid="123"></transcript_list>`))
	}))

	segs, err := r.Resolve(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segs == nil || len(segs) != 0 {
		t.Errorf("expected empty non-nil segments, got %+v", segs)
	}
}

func TestTimedTextResolve(t *testing.T) {
	var fetchedLang string
	r := newTimedTextTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("type") == "list" {
			w.Write([]byte(`<transcript_list>` +
				`<track id="0" name="" lang_code="fr" lang_original="Francais"/>` +
				`<track id="1" name="" lang_code="en-GB" lang_original="English"/>` +
				`</transcript_list>`))
			return
		}
		fetchedLang = q.Get("lang")
		w.Write([]byte(`{"events":[{"tStartMs":1500,"dDurationMs":3000,"segs":[{"utf8":"bonjour"}]}]}`))
	}))

	segs, err := r.Resolve(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetchedLang != "en-GB" {
		t.Errorf("fetched lang %q, want en-GB", fetchedLang)
	}
	if len(segs) != 1 || segs[0].Start != 1 || segs[0].Text != "bonjour" {
		t.Errorf("unexpected segments: %+v", segs)
	}
}

func TestTimedTextLangAttributeFallback(t *testing.T) {
	r := newTimedTextTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("type") == "list" {
			w.Write([]byte(`<transcript_list><track id="0" lang="de"/></transcript_list>`))
			return
		}
		if got := req.URL.Query().Get("lang"); got != "de" {
			t.Errorf("fetched lang %q, want de", got)
		}
		w.Write([]byte(`{"events":[]}`))
	}))

	if _, err := r.Resolve(context.Background(), "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimedTextListFailure(t *testing.T) {
	r := newTimedTextTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	if _, err := r.Resolve(context.Background(), "abc123"); err == nil {
		t.Fatal("expected error for non-success listing status")
	}
}
