package service

import (
	"errors"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/repository"
	"gorm.io/gorm"
)

// AGVService AGV服务
type AGVService struct {
	agvRepo *repository.AGVRepository
}

// NewAGVService 创建AGV服务
func NewAGVService(agvRepo *repository.AGVRepository) *AGVService {
	return &AGVService{
		agvRepo: agvRepo,
	}
}

// CreateAGV 创建AGV
// 先按名称查重再写入；并发下真正的兜底是name上的唯一索引
func (s *AGVService) CreateAGV(agv *model.AGV) (*model.AGV, error) {
	existing, err := s.agvRepo.GetByName(agv.Name)
	if err == nil && existing != nil {
		return nil, ErrAGVNameExists(agv.Name)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.agvRepo.Create(agv); err != nil {
		return nil, err
	}
	return agv, nil
}

// GetAGV 获取AGV
func (s *AGVService) GetAGV(id int64) (*model.AGV, error) {
	agv, err := s.agvRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAGVNotFound
	}
	if err != nil {
		return nil, err
	}
	return agv, nil
}

// GetAGVByName 根据名称获取AGV
func (s *AGVService) GetAGVByName(name string) (*model.AGV, error) {
	agv, err := s.agvRepo.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAGVNotFound
	}
	if err != nil {
		return nil, err
	}
	return agv, nil
}

// ListAGVs 获取AGV列表
func (s *AGVService) ListAGVs(skip, limit int, enabledOnly bool) ([]*model.AGV, error) {
	return s.agvRepo.List(skip, limit, enabledOnly)
}

// UpdateAGV 更新AGV，只更新调用方提供的字段
// 改名时检查新名称是否被其他AGV占用
func (s *AGVService) UpdateAGV(id int64, fields map[string]interface{}) (*model.AGV, error) {
	existing, err := s.agvRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAGVNotFound
	}
	if err != nil {
		return nil, err
	}

	if name, ok := fields["name"].(string); ok && name != existing.Name {
		other, err := s.agvRepo.GetByName(name)
		if err == nil && other != nil && other.ID != id {
			return nil, ErrAGVNameExists(name)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return s.agvRepo.Update(id, fields)
}

// DeleteAGV 删除AGV
func (s *AGVService) DeleteAGV(id int64) error {
	deleted, err := s.agvRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAGVNotFound
	}
	return nil
}

// CountAGVs 计算AGV总数
func (s *AGVService) CountAGVs(enabledOnly bool) (int64, error) {
	return s.agvRepo.Count(enabledOnly)
}
