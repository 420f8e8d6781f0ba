package boxes

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

const inventoryYAML = `
warehouses:
  - id: "1"
    address: "12 Dock Road"
    boxes:
      - {id: "11", number: 2, volume: "4.00", status: occupied, agreement: "A-17"}
      - {id: "10", number: 1, volume: "2.5", status: free}
  - id: "2"
    address: "Empty Yard"
`

func TestLoadInventory(t *testing.T) {
	store, err := LoadInventory(strings.NewReader(inventoryYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	warehouses, err := store.Warehouses(context.Background())
	if err != nil {
		t.Fatalf("warehouses: %v", err)
	}
	wantWarehouses := []Warehouse{{ID: "1", Address: "12 Dock Road"}, {ID: "2", Address: "Empty Yard"}}
	if diff := cmp.Diff(wantWarehouses, warehouses); diff != "" {
		t.Fatalf("warehouses mismatch (-want +got):\n%s", diff)
	}

	boxes, err := store.BoxesByWarehouse(context.Background(), "1")
	if err != nil {
		t.Fatalf("boxes: %v", err)
	}
	if len(boxes) != 2 || boxes[0].ID != "10" || boxes[1].ID != "11" {
		t.Fatalf("expected boxes ordered by number, got %#v", boxes)
	}
	if !boxes[1].Volume.Equal(decimal.NewFromInt(4)) || boxes[1].WarehouseID != "1" {
		t.Fatalf("unexpected box: %#v", boxes[1])
	}
	if boxes[0].Status != StatusFree || boxes[1].CurrentAgreement != "A-17" {
		t.Fatalf("unexpected statuses: %#v", boxes)
	}
}

func TestLoadInventory_Errors(t *testing.T) {
	cases := map[string]string{
		"missing id":  "warehouses:\n  - address: x\n",
		"bad volume":  "warehouses:\n  - id: \"1\"\n    boxes:\n      - {id: \"1\", number: 1, volume: \"big\"}\n",
		"broken yaml": "warehouses: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadInventory(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadInventory_EmptyDocument(t *testing.T) {
	store, err := LoadInventory(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	warehouses, _ := store.Warehouses(context.Background())
	if len(warehouses) != 0 {
		t.Fatalf("expected no warehouses, got %#v", warehouses)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := fixtureStore()
	boxes, _ := store.BoxesByWarehouse(context.Background(), "1")
	boxes[0].Number = 99

	again, _ := store.BoxesByWarehouse(context.Background(), "1")
	if again[0].Number == 99 {
		t.Fatalf("store leaked its internal slice")
	}
}

func TestLabelFormat_Label(t *testing.T) {
	f := DefaultLabelFormat()
	box := Box{Number: 7, Volume: decimal.RequireFromString("1.50"), Status: StatusFree}
	if got := f.Label(box); got != "Box #7 (1.50m³) - Free" {
		t.Fatalf("unexpected label %q", got)
	}
	box.Status = StatusOccupied
	if got := f.Descriptor(box); !got.Disabled || got.Label != "Box #7 (1.50m³) - Occupied" {
		t.Fatalf("unexpected descriptor %#v", got)
	}
}
