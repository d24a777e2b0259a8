package repository

import (
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"gorm.io/gorm"
)

// EqpPortRepository 设备端口数据访问层
type EqpPortRepository struct {
	db *gorm.DB
}

// NewEqpPortRepository 创建设备端口仓库
func NewEqpPortRepository(db *gorm.DB) *EqpPortRepository {
	return &EqpPortRepository{db: db}
}

// Create 创建端口
func (r *EqpPortRepository) Create(port *model.EqpPort) error {
	return r.db.Create(port).Error
}

// GetByID 根据ID获取端口
func (r *EqpPortRepository) GetByID(id int64) (*model.EqpPort, error) {
	var port model.EqpPort
	if err := r.db.First(&port, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &port, nil
}

// GetByName 根据名称获取端口
func (r *EqpPortRepository) GetByName(name string) (*model.EqpPort, error) {
	var port model.EqpPort
	if err := r.db.First(&port, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &port, nil
}

// List 获取端口列表，可按所属设备名称过滤
func (r *EqpPortRepository) List(skip, limit int, eqpName string) ([]*model.EqpPort, error) {
	var ports []*model.EqpPort

	query := r.db.Model(&model.EqpPort{})
	if eqpName != "" {
		query = query.Where("eqp_name = ?", eqpName)
	}

	if err := query.Offset(skip).Limit(limit).Find(&ports).Error; err != nil {
		return nil, err
	}
	return ports, nil
}

// Update 更新端口的指定字段
// id和created_at不允许修改，updated_at总是刷新为当前时间
func (r *EqpPortRepository) Update(id int64, fields map[string]interface{}) (*model.EqpPort, error) {
	port, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now()

	if err := r.db.Model(port).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 删除端口，返回是否真的删除了记录
func (r *EqpPortRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.EqpPort{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 计算端口总数，可按所属设备名称过滤
func (r *EqpPortRepository) Count(eqpName string) (int64, error) {
	var total int64

	query := r.db.Model(&model.EqpPort{})
	if eqpName != "" {
		query = query.Where("eqp_name = ?", eqpName)
	}

	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
