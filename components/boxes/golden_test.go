package boxes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-depselect/components/boxes"
	"github.com/goliatone/go-depselect/pkg/testsupport"
)

func TestHandler_InventoryFixtureMatchesGolden(t *testing.T) {
	store := testsupport.MustLoadInventory(t, filepath.Join("testdata", "inventory.yaml"))
	handler := boxes.NewHandler(boxes.WithStore(store))

	req := httptest.NewRequest(http.MethodGet, "/storage/ajax/get-boxes/?warehouse_id=1", nil).
		WithContext(testsupport.Context())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	goldenPath := filepath.Join("testdata", "get_boxes_1.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, got) {
		return
	}

	diff, err := testsupport.CompareJSON(testsupport.MustReadGolden(t, goldenPath), got)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_FixtureEmptyWarehouse(t *testing.T) {
	store := testsupport.MustLoadInventory(t, filepath.Join("testdata", "inventory.yaml"))
	handler := boxes.NewHandler(boxes.WithStore(store))

	req := httptest.NewRequest(http.MethodGet, "/storage/ajax/get-boxes/?warehouse_id=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	diff, err := testsupport.CompareJSON([]byte(`{"boxes":[]}`), rec.Body.Bytes())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}
