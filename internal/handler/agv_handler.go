package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/service"
	"github.com/agvc-system/fleet-management/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AGVHandler AGV处理器
type AGVHandler struct {
	agvService *service.AGVService
}

// NewAGVHandler 创建AGV处理器
func NewAGVHandler(agvService *service.AGVService) *AGVHandler {
	return &AGVHandler{
		agvService: agvService,
	}
}

// CreateAGVRequest 创建AGV请求
type CreateAGVRequest struct {
	Name        string        `json:"name" binding:"required,max=20"`
	Model       string        `json:"model" binding:"required,max=50"`
	Description *string       `json:"description"`
	Enable      *int          `json:"enable" binding:"omitempty,oneof=0 1"`
	Parameter   model.JSONMap `json:"parameter"`
}

// UpdateAGVRequest 更新AGV请求，所有字段可选
// PUT和PATCH共用，最终只转发调用方实际提供的字段
type UpdateAGVRequest struct {
	Name        *string       `json:"name" binding:"omitempty,max=20"`
	Model       *string       `json:"model" binding:"omitempty,max=50"`
	Description *string       `json:"description"`
	Enable      *int          `json:"enable" binding:"omitempty,oneof=0 1"`
	Parameter   model.JSONMap `json:"parameter"`
}

// Fields 收集请求中实际设置的字段
func (r *UpdateAGVRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Model != nil {
		fields["model"] = *r.Model
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Enable != nil {
		fields["enable"] = *r.Enable
	}
	if r.Parameter != nil {
		fields["parameter"] = r.Parameter
	}
	return fields
}

// AGVResponse AGV响应视图，字段顺序固定
type AGVResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Model       string        `json:"model"`
	Enable      int           `json:"enable"`
	Parameter   model.JSONMap `json:"parameter"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewAGVResponse 从存储模型构造响应视图
func NewAGVResponse(agv *model.AGV) *AGVResponse {
	return &AGVResponse{
		ID:          agv.ID,
		Name:        agv.Name,
		Description: agv.Description,
		Model:       agv.Model,
		Enable:      agv.Enable,
		Parameter:   agv.Parameter,
		CreatedAt:   agv.CreatedAt,
		UpdatedAt:   agv.UpdatedAt,
	}
}

// NewAGVListResponse 批量构造响应视图
func NewAGVListResponse(agvs []*model.AGV) []*AGVResponse {
	responses := make([]*AGVResponse, 0, len(agvs))
	for _, agv := range agvs {
		responses = append(responses, NewAGVResponse(agv))
	}
	return responses
}

// CreateAGV 创建AGV
func (h *AGVHandler) CreateAGV(c *gin.Context) {
	var req CreateAGVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	agv := &model.AGV{
		Name:        req.Name,
		Model:       req.Model,
		Description: req.Description,
		Enable:      1,
		Parameter:   req.Parameter,
	}
	if agv.Description == nil {
		defaultDescription := "N/A"
		agv.Description = &defaultDescription
	}
	if req.Enable != nil {
		agv.Enable = *req.Enable
	}
	if agv.Parameter == nil {
		agv.Parameter = model.JSONMap{"ip": "", "port": 0, "work_id": 0}
	}

	created, err := h.agvService.CreateAGV(agv)
	if err != nil {
		utils.HandleError(c, err, "Failed to create AGV: %v", err)
		return
	}

	utils.Success(c, http.StatusCreated, NewAGVResponse(created))
}

// ListAGVs 获取AGV列表
func (h *AGVHandler) ListAGVs(c *gin.Context) {
	skip := utils.ParseInt(c.DefaultQuery("skip", "0"), 0)
	limit := utils.ParseInt(c.DefaultQuery("limit", "100"), 100)
	enabledOnly, _ := strconv.ParseBool(c.DefaultQuery("enabled_only", "false"))

	agvs, err := h.agvService.ListAGVs(skip, limit, enabledOnly)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to list AGVs: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewAGVListResponse(agvs))
}

// GetAGV 获取AGV详情
func (h *AGVHandler) GetAGV(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid AGV ID")
		return
	}

	agv, err := h.agvService.GetAGV(id)
	if err != nil {
		utils.HandleError(c, err, "Failed to get AGV: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewAGVResponse(agv))
}

// UpdateAGV 更新AGV，PUT和PATCH共用
func (h *AGVHandler) UpdateAGV(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid AGV ID")
		return
	}

	var req UpdateAGVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	agv, err := h.agvService.UpdateAGV(id, req.Fields())
	if err != nil {
		utils.HandleError(c, err, "Failed to update AGV: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewAGVResponse(agv))
}

// DeleteAGV 删除AGV
func (h *AGVHandler) DeleteAGV(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid AGV ID")
		return
	}

	if err := h.agvService.DeleteAGV(id); err != nil {
		utils.HandleError(c, err, "Failed to delete AGV: %v", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountAGVs 计算AGV总数
func (h *AGVHandler) CountAGVs(c *gin.Context) {
	enabledOnly, _ := strconv.ParseBool(c.DefaultQuery("enabled_only", "false"))

	total, err := h.agvService.CountAGVs(enabledOnly)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to count AGVs: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"total":        total,
		"enabled_only": enabledOnly,
	})
}
