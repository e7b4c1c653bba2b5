package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testCreds = OAuthCredentials{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RefreshToken: "refresh-token",
}

func newCaptionsTest(t *testing.T, handler http.Handler) *CaptionsResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	r := NewCaptionsResolver(srv.Client(), testCreds, "en")
	r.apiBase = srv.URL
	r.tokenURL = srv.URL + "/token"
	return r
}

func TestCaptionsResolve(t *testing.T) {
	r := newCaptionsTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.URL.Path == "/token":
			if req.Method != http.MethodPost {
				t.Errorf("token exchange used method %s", req.Method)
			}
			req.ParseForm()
			if req.PostForm.Get("grant_type") != "refresh_token" {
				t.Errorf("grant_type = %q", req.PostForm.Get("grant_type"))
			}
			w.Write([]byte(`{"access_token":"short-lived"}`))

		case req.URL.Path == "/captions":
			if auth := req.Header.Get("Authorization"); auth != "Bearer short-lived" {
				t.Errorf("listing Authorization = %q", auth)
			}
			w.Write([]byte(`{"items":[
				{"id":"cap-fr","snippet":{"language":"fr"}},
				{"id":"cap-en","snippet":{"language":"en"}}]}`))

		case strings.HasPrefix(req.URL.Path, "/captions/"):
			if req.URL.Path != "/captions/cap-en" {
				t.Errorf("downloaded %s, want /captions/cap-en", req.URL.Path)
			}
			w.Write([]byte("1\n00:00:03,000 --> 00:00:05,000\nHello world\n"))

		default:
			http.NotFound(w, req)
		}
	}))

	segs, err := r.Resolve(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Text != "Hello world" || segs[0].Start != 3 {
		t.Errorf("unexpected segments: %+v", segs)
	}
}

func TestCaptionsNoTracksIsNotFound(t *testing.T) {
	r := newCaptionsTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/token" {
			w.Write([]byte(`{"access_token":"tok"}`))
			return
		}
		w.Write([]byte(`{"items":[]}`))
	}))

	_, err := r.Resolve(context.Background(), "abc123")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCaptionsTokenExchangeFailure(t *testing.T) {
	r := newCaptionsTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))

	_, err := r.Resolve(context.Background(), "abc123")
	if err == nil {
		t.Fatal("expected error for failed token exchange")
	}
	if !strings.Contains(err.Error(), "invalid_grant") {
		t.Errorf("error should surface the upstream payload, got: %v", err)
	}
}

func TestCaptionsTrackWithoutID(t *testing.T) {
	r := newCaptionsTest(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/token" {
			w.Write([]byte(`{"access_token":"tok"}`))
			return
		}
		w.Write([]byte(`{"items":[{"snippet":{"language":"en"}}]}`))
	}))

	_, err := r.Resolve(context.Background(), "abc123")
	if err == nil {
		t.Fatal("expected error for track without caption ID")
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Error("missing caption ID must not be reported as not-found")
	}
}
