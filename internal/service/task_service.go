package service

import (
	"errors"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/repository"
	"gorm.io/gorm"
)

// TaskService 任务服务
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService 创建任务服务
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTask 创建任务
// 任务没有名称唯一性要求，不做查重
func (s *TaskService) CreateTask(task *model.Task) (*model.Task, error) {
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask 获取任务
func (s *TaskService) GetTask(id int64) (*model.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks 获取任务列表，优先级降序、创建时间升序
func (s *TaskService) ListTasks(skip, limit int, statusID *int, agvName string, workID *int64) ([]*model.Task, error) {
	return s.taskRepo.List(skip, limit, statusID, agvName, workID)
}

// ListChildTasks 获取子任务列表，父任务不存在时报错
func (s *TaskService) ListChildTasks(parentTaskID int64) ([]*model.Task, error) {
	_, err := s.taskRepo.GetByID(parentTaskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrParentTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.taskRepo.ListByParent(parentTaskID)
}

// UpdateTask 更新任务，只更新调用方提供的字段
func (s *TaskService) UpdateTask(id int64, fields map[string]interface{}) (*model.Task, error) {
	task, err := s.taskRepo.Update(id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask 删除任务
func (s *TaskService) DeleteTask(id int64) error {
	deleted, err := s.taskRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

// CountTasks 计算任务总数，过滤条件与列表一致
func (s *TaskService) CountTasks(statusID *int, agvName string, workID *int64) (int64, error) {
	return s.taskRepo.Count(statusID, agvName, workID)
}
