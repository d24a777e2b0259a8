package service

import (
	"errors"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/repository"
	"gorm.io/gorm"
)

// EqpPortService 设备端口服务
type EqpPortService struct {
	portRepo *repository.EqpPortRepository
}

// NewEqpPortService 创建设备端口服务
func NewEqpPortService(portRepo *repository.EqpPortRepository) *EqpPortService {
	return &EqpPortService{
		portRepo: portRepo,
	}
}

// CreateEqpPort 创建端口
// 先按名称查重再写入；并发下真正的兜底是name上的唯一索引
func (s *EqpPortService) CreateEqpPort(port *model.EqpPort) (*model.EqpPort, error) {
	existing, err := s.portRepo.GetByName(port.Name)
	if err == nil && existing != nil {
		return nil, ErrEqpPortNameExists(port.Name)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.portRepo.Create(port); err != nil {
		return nil, err
	}
	return port, nil
}

// GetEqpPort 获取端口
func (s *EqpPortService) GetEqpPort(id int64) (*model.EqpPort, error) {
	port, err := s.portRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEqpPortNotFound
	}
	if err != nil {
		return nil, err
	}
	return port, nil
}

// GetEqpPortByName 根据名称获取端口
func (s *EqpPortService) GetEqpPortByName(name string) (*model.EqpPort, error) {
	port, err := s.portRepo.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEqpPortNotFound
	}
	if err != nil {
		return nil, err
	}
	return port, nil
}

// ListEqpPorts 获取端口列表
func (s *EqpPortService) ListEqpPorts(skip, limit int, eqpName string) ([]*model.EqpPort, error) {
	return s.portRepo.List(skip, limit, eqpName)
}

// UpdateEqpPort 更新端口，只更新调用方提供的字段
// 改名时检查新名称是否被其他端口占用
func (s *EqpPortService) UpdateEqpPort(id int64, fields map[string]interface{}) (*model.EqpPort, error) {
	existing, err := s.portRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEqpPortNotFound
	}
	if err != nil {
		return nil, err
	}

	if name, ok := fields["name"].(string); ok && name != existing.Name {
		other, err := s.portRepo.GetByName(name)
		if err == nil && other != nil && other.ID != id {
			return nil, ErrEqpPortNameExists(name)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return s.portRepo.Update(id, fields)
}

// DeleteEqpPort 删除端口
func (s *EqpPortService) DeleteEqpPort(id int64) error {
	deleted, err := s.portRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEqpPortNotFound
	}
	return nil
}

// CountEqpPorts 计算端口总数
func (s *EqpPortService) CountEqpPorts(eqpName string) (int64, error) {
	return s.portRepo.Count(eqpName)
}
