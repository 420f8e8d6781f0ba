package boxes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Status string

const (
	StatusFree     Status = "free"
	StatusOccupied Status = "occupied"
)

type Warehouse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type Box struct {
	ID          string
	WarehouseID string
	Number      int
	Volume      decimal.Decimal
	Status      Status
	// CurrentAgreement references the rental agreement holding the box, if any.
	CurrentAgreement string
}

func (b Box) Free() bool { return b.Status == StatusFree }

// Store reads the storage inventory.
type Store interface {
	Warehouses(ctx context.Context) ([]Warehouse, error)
	// BoxesByWarehouse returns the boxes of warehouseID ordered by number.
	// Unknown warehouses yield an empty list.
	BoxesByWarehouse(ctx context.Context, warehouseID string) ([]Box, error)
}

var ErrMissingStore = errors.New("boxes: missing store")

// SortBoxes orders boxes by number, then by id for equal numbers.
func SortBoxes(boxes []Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		if boxes[i].Number != boxes[j].Number {
			return boxes[i].Number < boxes[j].Number
		}
		return boxes[i].ID < boxes[j].ID
	})
}

// MemoryStore is an in-memory Store, typically loaded from a YAML inventory.
type MemoryStore struct {
	mu         sync.RWMutex
	warehouses []Warehouse
	boxes      map[string][]Box
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boxes: map[string][]Box{}}
}

// AddWarehouse registers a warehouse and its boxes, replacing any previous
// entry with the same id.
func (s *MemoryStore) AddWarehouse(w Warehouse, boxes ...Box) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.warehouses {
		if s.warehouses[i].ID == w.ID {
			s.warehouses[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		s.warehouses = append(s.warehouses, w)
	}

	cloned := make([]Box, len(boxes))
	for i, box := range boxes {
		box.WarehouseID = w.ID
		cloned[i] = box
	}
	SortBoxes(cloned)
	s.boxes[w.ID] = cloned
}

func (s *MemoryStore) Warehouses(ctx context.Context) ([]Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Warehouse{}, s.warehouses...), nil
}

func (s *MemoryStore) BoxesByWarehouse(ctx context.Context, warehouseID string) ([]Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Box{}, s.boxes[warehouseID]...), nil
}

type inventoryDoc struct {
	Warehouses []struct {
		ID      string `yaml:"id"`
		Address string `yaml:"address"`
		Boxes   []struct {
			ID        string `yaml:"id"`
			Number    int    `yaml:"number"`
			Volume    string `yaml:"volume"`
			Status    string `yaml:"status"`
			Agreement string `yaml:"agreement"`
		} `yaml:"boxes"`
	} `yaml:"warehouses"`
}

// LoadInventory parses a YAML inventory document into a MemoryStore.
//
//	warehouses:
//	  - id: "1"
//	    address: "12 Dock Road"
//	    boxes:
//	      - {id: "10", number: 1, volume: "2.5", status: free}
//	      - {id: "11", number: 2, volume: "4", status: occupied, agreement: "A-17"}
func LoadInventory(r io.Reader) (*MemoryStore, error) {
	if r == nil {
		return nil, fmt.Errorf("boxes: missing reader")
	}

	var doc inventoryDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("boxes: decode inventory: %w", err)
	}

	store := NewMemoryStore()
	for _, w := range doc.Warehouses {
		id := strings.TrimSpace(w.ID)
		if id == "" {
			return nil, fmt.Errorf("boxes: warehouse without id")
		}
		boxes := make([]Box, 0, len(w.Boxes))
		for _, raw := range w.Boxes {
			volume := decimal.Zero
			if v := strings.TrimSpace(raw.Volume); v != "" {
				parsed, err := decimal.NewFromString(v)
				if err != nil {
					return nil, fmt.Errorf("boxes: warehouse %s box %s volume: %w", id, raw.ID, err)
				}
				volume = parsed
			}
			status := Status(strings.ToLower(strings.TrimSpace(raw.Status)))
			if status == "" {
				status = StatusFree
			}
			boxes = append(boxes, Box{
				ID:               strings.TrimSpace(raw.ID),
				Number:           raw.Number,
				Volume:           volume,
				Status:           status,
				CurrentAgreement: strings.TrimSpace(raw.Agreement),
			})
		}
		store.AddWarehouse(Warehouse{ID: id, Address: strings.TrimSpace(w.Address)}, boxes...)
	}
	return store, nil
}
