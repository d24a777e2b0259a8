package service

import (
	"errors"
	"testing"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/repository"
	"github.com/agvc-system/fleet-management/internal/utils"
)

func newEqpPortService(t *testing.T) *EqpPortService {
	t.Helper()
	return NewEqpPortService(repository.NewEqpPortRepository(setupTestDB(t)))
}

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

func TestEqpPortServiceCreateDuplicateName(t *testing.T) {
	svc := newEqpPortService(t)

	if _, err := svc.CreateEqpPort(newTestEqpPort("P01", "EQP01")); err != nil {
		t.Fatalf("CreateEqpPort: %v", err)
	}

	// 端口名称全局唯一，与所属设备无关
	_, err := svc.CreateEqpPort(newTestEqpPort("P01", "EQP02"))
	if err == nil {
		t.Fatal("expected duplicate name to be rejected")
	}
	if code := errCode(t, err); code != utils.ErrCodeAlreadyExists {
		t.Fatalf("expected code %d, got %d", utils.ErrCodeAlreadyExists, code)
	}
}

func TestEqpPortServiceGetNotFound(t *testing.T) {
	svc := newEqpPortService(t)

	if _, err := svc.GetEqpPort(999); !errors.Is(err, ErrEqpPortNotFound) {
		t.Fatalf("expected ErrEqpPortNotFound, got %v", err)
	}
}

func TestEqpPortServiceUpdateRenameConflict(t *testing.T) {
	svc := newEqpPortService(t)

	first, err := svc.CreateEqpPort(newTestEqpPort("P01", "EQP01"))
	if err != nil {
		t.Fatalf("CreateEqpPort: %v", err)
	}
	if _, err := svc.CreateEqpPort(newTestEqpPort("P02", "EQP01")); err != nil {
		t.Fatalf("CreateEqpPort: %v", err)
	}

	_, err = svc.UpdateEqpPort(first.ID, map[string]interface{}{"name": "P02"})
	if err == nil {
		t.Fatal("expected rename conflict to be rejected")
	}
	if code := errCode(t, err); code != utils.ErrCodeAlreadyExists {
		t.Fatalf("expected code %d, got %d", utils.ErrCodeAlreadyExists, code)
	}
}

func TestEqpPortServiceDeleteNotFound(t *testing.T) {
	svc := newEqpPortService(t)

	port, err := svc.CreateEqpPort(newTestEqpPort("P01", "EQP01"))
	if err != nil {
		t.Fatalf("CreateEqpPort: %v", err)
	}

	if err := svc.DeleteEqpPort(port.ID); err != nil {
		t.Fatalf("DeleteEqpPort: %v", err)
	}
	if err := svc.DeleteEqpPort(port.ID); !errors.Is(err, ErrEqpPortNotFound) {
		t.Fatalf("expected ErrEqpPortNotFound on second delete, got %v", err)
	}
}
