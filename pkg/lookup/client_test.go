package lookup_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-depselect/pkg/depselect"
	"github.com/goliatone/go-depselect/pkg/lookup"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LookupDecodesBoxes(t *testing.T) {
	var gotQuery, gotPath, gotAccept string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("warehouse_id")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"boxes":[{"id":1,"label":"Box A","disabled":false},{"id":"2","label":"Box B","disabled":true}]}`))
	})

	client := lookup.New(srv.URL)
	boxes, err := client.Lookup(context.Background(), "north & south")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	want := []depselect.Box{
		{ID: "1", Label: "Box A"},
		{ID: "2", Label: "Box B", Disabled: true},
	}
	if diff := cmp.Diff(want, boxes); diff != "" {
		t.Fatalf("boxes mismatch (-want +got):\n%s", diff)
	}
	if gotPath != lookup.DefaultPath {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "north & south" {
		t.Fatalf("expected query-decoded warehouse id, got %q", gotQuery)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
}

func TestClient_URLEncodesValue(t *testing.T) {
	client := lookup.New("https://example.com/", lookup.WithPath("api/boxes"), lookup.WithParam("parent_id"))
	got, err := client.URL("a b")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	if got != "https://example.com/api/boxes?parent_id=a+b" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestClient_EmptyBoxes(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"boxes":[]}`))
	})

	boxes, err := lookup.New(srv.URL).Lookup(context.Background(), "1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if boxes == nil || len(boxes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", boxes)
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := lookup.New(srv.URL).Lookup(context.Background(), "1")
	var statusErr *lookup.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", statusErr.StatusCode())
	}
}

func TestClient_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>oops</html>`,
		"missing key":   `{"items":[]}`,
		"wrong type":    `{"boxes":{"id":1}}`,
		"bad id value":  `{"boxes":[{"id":true,"label":"x"}]}`,
		"trailing data": `{"boxes":[]}<html>oops`,
		"second value":  `{"boxes":[]} {"boxes":[]}`,
		"null entry":    `{"boxes":[null]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := lookup.New(srv.URL).Lookup(context.Background(), "1")
			if !errors.Is(err, lookup.ErrMalformedBody) {
				t.Fatalf("expected ErrMalformedBody, got %v", err)
			}
		})
	}
}

func TestClient_CustomHeaders(t *testing.T) {
	var gotToken string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-CSRFToken")
		_, _ = w.Write([]byte(`{"boxes":[]}`))
	})

	client := lookup.New(srv.URL, lookup.WithHeader("X-CSRFToken", "abc"), lookup.WithHTTPClient(srv.Client()))
	if _, err := client.Lookup(context.Background(), "1"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotToken != "abc" {
		t.Fatalf("expected header forwarded, got %q", gotToken)
	}
}

func TestClient_DrivesController(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("warehouse_id") == "broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"boxes":[{"id":"1","label":"Box A","disabled":false},{"id":"2","label":"Box B","disabled":true}]}`))
	})

	src := &fixedSource{}
	dep := &lastOptions{}
	ctrl := depselect.New(src, dep, lookup.New(srv.URL))
	if !ctrl.Initialize() {
		t.Fatalf("expected controller to initialize")
	}

	src.set("7")
	ctrl.Wait()
	want := []depselect.Option{
		{Value: "1", Label: "Box A"},
		{Value: "2", Label: "Box B (unavailable)", Disabled: true},
	}
	if diff := cmp.Diff(want, dep.options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	src.set("broken")
	ctrl.Wait()
	wantFailed := []depselect.Option{{Label: "Failed to load the list", Placeholder: true}}
	if diff := cmp.Diff(wantFailed, dep.options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

type fixedSource struct {
	value    string
	listener func()
}

func (s *fixedSource) Value() string { return s.value }

func (s *fixedSource) OnChange(fn func()) func() {
	s.listener = fn
	return func() { s.listener = nil }
}

func (s *fixedSource) set(value string) {
	s.value = value
	if s.listener != nil {
		s.listener()
	}
}

type lastOptions struct {
	options []depselect.Option
}

func (d *lastOptions) SetOptions(options []depselect.Option) {
	d.options = options
}
