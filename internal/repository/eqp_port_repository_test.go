package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agvc-system/fleet-management/internal/model"
	"gorm.io/gorm"
)

func newTestEqpPort(name, eqpName string) *model.EqpPort {
	desc := "N/A"
	return &model.EqpPort{
		Name:        name,
		EqpName:     eqpName,
		Node:        "1",
		Description: &desc,
		Parameter:   model.JSONMap{},
	}
}

func TestEqpPortRepositoryCreateAndGet(t *testing.T) {
	repo := NewEqpPortRepository(setupTestDB(t))

	port := newTestEqpPort("P01", "EQP01")
	if err := repo.Create(port); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if port.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	byID, err := repo.GetByID(port.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Name != "P01" || byID.EqpName != "EQP01" {
		t.Fatalf("unexpected port: %+v", byID)
	}

	byName, err := repo.GetByName("P01")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName.ID != port.ID {
		t.Fatalf("GetByName returned wrong port: %+v", byName)
	}

	if _, err := repo.GetByName("missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestEqpPortRepositoryListByEqpName(t *testing.T) {
	repo := NewEqpPortRepository(setupTestDB(t))

	for i := 0; i < 3; i++ {
		if err := repo.Create(newTestEqpPort(fmt.Sprintf("A%d", i), "EQP_A")); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(newTestEqpPort("B0", "EQP_B")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := repo.List(0, 100, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 ports, got %d", len(all))
	}

	filtered, err := repo.List(0, 100, "EQP_A")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(filtered) != 3 {
		t.Fatalf("expected 3 ports for EQP_A, got %d", len(filtered))
	}
	for _, port := range filtered {
		if port.EqpName != "EQP_A" {
			t.Fatalf("unexpected eqp_name %q", port.EqpName)
		}
	}

	total, err := repo.Count("EQP_A")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected count 3, got %d", total)
	}
}

func TestEqpPortRepositoryDelete(t *testing.T) {
	repo := NewEqpPortRepository(setupTestDB(t))

	port := newTestEqpPort("P01", "EQP01")
	if err := repo.Create(port); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := repo.Delete(port.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected first delete to remove the record")
	}

	deleted, err = repo.Delete(port.ID)
	if err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to be a no-op")
	}
}
