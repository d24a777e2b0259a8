package handler

import (
	"net/http"
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/service"
	"github.com/agvc-system/fleet-management/pkg/utils"
	"github.com/gin-gonic/gin"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest 创建任务请求
// work_id和status_id用指针承载，必须提供但允许为0
type CreateTaskRequest struct {
	ParentTaskID *int64        `json:"parent_task_id"`
	WorkID       *int64        `json:"work_id" binding:"required"`
	FromPort     *string       `json:"from_port" binding:"omitempty,max=50"`
	ToPort       *string       `json:"to_port" binding:"omitempty,max=50"`
	StatusID     *int          `json:"status_id" binding:"required"`
	AGVName      *string       `json:"agv_name" binding:"omitempty,max=20"`
	Priority     *int          `json:"priority"`
	MaterialCode *string       `json:"material_code" binding:"omitempty,max=50"`
	Parameter    model.JSONMap `json:"parameter"`
}

// UpdateTaskRequest 更新任务请求，所有字段可选
// PUT和PATCH共用，最终只转发调用方实际提供的字段
type UpdateTaskRequest struct {
	ParentTaskID *int64        `json:"parent_task_id"`
	WorkID       *int64        `json:"work_id"`
	FromPort     *string       `json:"from_port" binding:"omitempty,max=50"`
	ToPort       *string       `json:"to_port" binding:"omitempty,max=50"`
	StatusID     *int          `json:"status_id"`
	AGVName      *string       `json:"agv_name" binding:"omitempty,max=20"`
	Priority     *int          `json:"priority"`
	MaterialCode *string       `json:"material_code" binding:"omitempty,max=50"`
	Parameter    model.JSONMap `json:"parameter"`
}

// Fields 收集请求中实际设置的字段
func (r *UpdateTaskRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.ParentTaskID != nil {
		fields["parent_task_id"] = *r.ParentTaskID
	}
	if r.WorkID != nil {
		fields["work_id"] = *r.WorkID
	}
	if r.FromPort != nil {
		fields["from_port"] = *r.FromPort
	}
	if r.ToPort != nil {
		fields["to_port"] = *r.ToPort
	}
	if r.StatusID != nil {
		fields["status_id"] = *r.StatusID
	}
	if r.AGVName != nil {
		fields["agv_name"] = *r.AGVName
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	if r.MaterialCode != nil {
		fields["material_code"] = *r.MaterialCode
	}
	if r.Parameter != nil {
		fields["parameter"] = r.Parameter
	}
	return fields
}

// TaskResponse 任务响应视图，字段顺序固定
type TaskResponse struct {
	ID           int64         `json:"id"`
	ParentTaskID int64         `json:"parent_task_id"`
	WorkID       int64         `json:"work_id"`
	FromPort     string        `json:"from_port"`
	ToPort       string        `json:"to_port"`
	StatusID     int           `json:"status_id"`
	AGVName      string        `json:"agv_name"`
	Priority     int           `json:"priority"`
	MaterialCode string        `json:"material_code"`
	Parameter    model.JSONMap `json:"parameter"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewTaskResponse 从存储模型构造响应视图
func NewTaskResponse(task *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:           task.ID,
		ParentTaskID: task.ParentTaskID,
		WorkID:       task.WorkID,
		FromPort:     task.FromPort,
		ToPort:       task.ToPort,
		StatusID:     task.StatusID,
		AGVName:      task.AGVName,
		Priority:     task.Priority,
		MaterialCode: task.MaterialCode,
		Parameter:    task.Parameter,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

// NewTaskListResponse 批量构造响应视图
func NewTaskListResponse(tasks []*model.Task) []*TaskResponse {
	responses := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}

// CreateTask 创建任务
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	task := &model.Task{
		WorkID:       *req.WorkID,
		StatusID:     *req.StatusID,
		FromPort:     "na",
		ToPort:       "na",
		AGVName:      "na",
		MaterialCode: "na",
		Parameter:    req.Parameter,
	}
	if req.ParentTaskID != nil {
		task.ParentTaskID = *req.ParentTaskID
	}
	if req.FromPort != nil {
		task.FromPort = *req.FromPort
	}
	if req.ToPort != nil {
		task.ToPort = *req.ToPort
	}
	if req.AGVName != nil {
		task.AGVName = *req.AGVName
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.MaterialCode != nil {
		task.MaterialCode = *req.MaterialCode
	}
	if task.Parameter == nil {
		task.Parameter = model.JSONMap{"pr1": "na"}
	}

	created, err := h.taskService.CreateTask(task)
	if err != nil {
		utils.HandleError(c, err, "Failed to create task: %v", err)
		return
	}

	utils.Success(c, http.StatusCreated, NewTaskResponse(created))
}

// ListTasks 获取任务列表
// 结果按优先级降序、创建时间升序排列
func (h *TaskHandler) ListTasks(c *gin.Context) {
	skip := utils.ParseInt(c.DefaultQuery("skip", "0"), 0)
	limit := utils.ParseInt(c.DefaultQuery("limit", "100"), 100)
	statusID := parseOptionalInt(c.Query("status_id"))
	agvName := c.Query("agv_name")
	workID := parseOptionalInt64(c.Query("work_id"))

	tasks, err := h.taskService.ListTasks(skip, limit, statusID, agvName, workID)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to list tasks: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewTaskListResponse(tasks))
}

// GetTask 获取任务详情
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		utils.HandleError(c, err, "Failed to get task: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewTaskResponse(task))
}

// ListChildTasks 获取子任务列表
func (h *TaskHandler) ListChildTasks(c *gin.Context) {
	parentTaskID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid parent task ID")
		return
	}

	tasks, err := h.taskService.ListChildTasks(parentTaskID)
	if err != nil {
		utils.HandleError(c, err, "Failed to list child tasks: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewTaskListResponse(tasks))
}

// UpdateTask 更新任务，PUT和PATCH共用
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(id, req.Fields())
	if err != nil {
		utils.HandleError(c, err, "Failed to update task: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask 删除任务
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		utils.HandleError(c, err, "Failed to delete task: %v", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountTasks 计算任务总数
func (h *TaskHandler) CountTasks(c *gin.Context) {
	statusID := parseOptionalInt(c.Query("status_id"))
	agvName := c.Query("agv_name")

	total, err := h.taskService.CountTasks(statusID, agvName, nil)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to count tasks: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"total":     total,
		"status_id": statusID,
		"agv_name":  agvName,
	})
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	value := utils.ParseInt(s, 0)
	return &value
}

func parseOptionalInt64(s string) *int64 {
	if s == "" {
		return nil
	}
	value, err := utils.ParseID(s)
	if err != nil {
		return nil
	}
	return &value
}
