package repository

import (
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"gorm.io/gorm"
)

// AGVRepository AGV数据访问层
type AGVRepository struct {
	db *gorm.DB
}

// NewAGVRepository 创建AGV仓库
func NewAGVRepository(db *gorm.DB) *AGVRepository {
	return &AGVRepository{db: db}
}

// Create 创建AGV
func (r *AGVRepository) Create(agv *model.AGV) error {
	return r.db.Create(agv).Error
}

// GetByID 根据ID获取AGV
func (r *AGVRepository) GetByID(id int64) (*model.AGV, error) {
	var agv model.AGV
	if err := r.db.First(&agv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agv, nil
}

// GetByName 根据名称获取AGV
func (r *AGVRepository) GetByName(name string) (*model.AGV, error) {
	var agv model.AGV
	if err := r.db.First(&agv, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &agv, nil
}

// List 获取AGV列表
func (r *AGVRepository) List(skip, limit int, enabledOnly bool) ([]*model.AGV, error) {
	var agvs []*model.AGV

	query := r.db.Model(&model.AGV{})
	if enabledOnly {
		query = query.Where("enable = ?", 1)
	}

	if err := query.Offset(skip).Limit(limit).Find(&agvs).Error; err != nil {
		return nil, err
	}
	return agvs, nil
}

// Update 更新AGV的指定字段
// id和created_at不允许修改，updated_at总是刷新为当前时间
func (r *AGVRepository) Update(id int64, fields map[string]interface{}) (*model.AGV, error) {
	agv, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now()

	if err := r.db.Model(agv).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 删除AGV，返回是否真的删除了记录
func (r *AGVRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.AGV{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 计算AGV总数
func (r *AGVRepository) Count(enabledOnly bool) (int64, error) {
	var total int64

	query := r.db.Model(&model.AGV{})
	if enabledOnly {
		query = query.Where("enable = ?", 1)
	}

	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
