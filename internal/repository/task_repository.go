package repository

import (
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"gorm.io/gorm"
)

// TaskRepository 任务数据访问层
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务仓库
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 创建任务
func (r *TaskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

// GetByID 根据ID获取任务
func (r *TaskRepository) GetByID(id int64) (*model.Task, error) {
	var task model.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List 获取任务列表
// 排序约定：优先级降序，创建时间升序
func (r *TaskRepository) List(skip, limit int, statusID *int, agvName string, workID *int64) ([]*model.Task, error) {
	var tasks []*model.Task

	query := r.applyFilters(r.db.Model(&model.Task{}), statusID, agvName, workID)

	err := query.Order("priority DESC, created_at ASC").
		Offset(skip).Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByParent 获取指定父任务下的所有子任务
func (r *TaskRepository) ListByParent(parentTaskID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	if err := r.db.Where("parent_task_id = ?", parentTaskID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update 更新任务的指定字段
// id和created_at不允许修改，updated_at总是刷新为当前时间
func (r *TaskRepository) Update(id int64, fields map[string]interface{}) (*model.Task, error) {
	task, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now()

	if err := r.db.Model(task).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 删除任务，返回是否真的删除了记录
// 子任务不做级联删除
func (r *TaskRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 计算任务总数，过滤条件与List一致
func (r *TaskRepository) Count(statusID *int, agvName string, workID *int64) (int64, error) {
	var total int64

	query := r.applyFilters(r.db.Model(&model.Task{}), statusID, agvName, workID)

	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TaskRepository) applyFilters(query *gorm.DB, statusID *int, agvName string, workID *int64) *gorm.DB {
	if statusID != nil {
		query = query.Where("status_id = ?", *statusID)
	}
	if agvName != "" {
		query = query.Where("agv_name = ?", agvName)
	}
	if workID != nil {
		query = query.Where("work_id = ?", *workID)
	}
	return query
}
