package handler

import (
	"net/http"
	"time"

	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/service"
	"github.com/agvc-system/fleet-management/pkg/utils"
	"github.com/gin-gonic/gin"
)

// EqpPortHandler 设备端口处理器
type EqpPortHandler struct {
	portService *service.EqpPortService
}

// NewEqpPortHandler 创建设备端口处理器
func NewEqpPortHandler(portService *service.EqpPortService) *EqpPortHandler {
	return &EqpPortHandler{
		portService: portService,
	}
}

// CreateEqpPortRequest 创建端口请求
type CreateEqpPortRequest struct {
	Name        string        `json:"name" binding:"required,max=50"`
	EqpName     string        `json:"eqp_name" binding:"required,max=50"`
	Node        string        `json:"node" binding:"required,max=50"`
	Description *string       `json:"description"`
	Parameter   model.JSONMap `json:"parameter"`
}

// UpdateEqpPortRequest 更新端口请求，所有字段可选
// PUT和PATCH共用，最终只转发调用方实际提供的字段
type UpdateEqpPortRequest struct {
	Name        *string       `json:"name" binding:"omitempty,max=50"`
	EqpName     *string       `json:"eqp_name" binding:"omitempty,max=50"`
	Node        *string       `json:"node" binding:"omitempty,max=50"`
	Description *string       `json:"description"`
	Parameter   model.JSONMap `json:"parameter"`
}

// Fields 收集请求中实际设置的字段
func (r *UpdateEqpPortRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.EqpName != nil {
		fields["eqp_name"] = *r.EqpName
	}
	if r.Node != nil {
		fields["node"] = *r.Node
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Parameter != nil {
		fields["parameter"] = r.Parameter
	}
	return fields
}

// EqpPortResponse 端口响应视图，字段顺序固定
type EqpPortResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	EqpName     string        `json:"eqp_name"`
	Node        string        `json:"node"`
	Description *string       `json:"description"`
	Parameter   model.JSONMap `json:"parameter"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewEqpPortResponse 从存储模型构造响应视图
func NewEqpPortResponse(port *model.EqpPort) *EqpPortResponse {
	return &EqpPortResponse{
		ID:          port.ID,
		Name:        port.Name,
		EqpName:     port.EqpName,
		Node:        port.Node,
		Description: port.Description,
		Parameter:   port.Parameter,
		CreatedAt:   port.CreatedAt,
		UpdatedAt:   port.UpdatedAt,
	}
}

// NewEqpPortListResponse 批量构造响应视图
func NewEqpPortListResponse(ports []*model.EqpPort) []*EqpPortResponse {
	responses := make([]*EqpPortResponse, 0, len(ports))
	for _, port := range ports {
		responses = append(responses, NewEqpPortResponse(port))
	}
	return responses
}

// CreateEqpPort 创建端口
func (h *EqpPortHandler) CreateEqpPort(c *gin.Context) {
	var req CreateEqpPortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	port := &model.EqpPort{
		Name:        req.Name,
		EqpName:     req.EqpName,
		Node:        req.Node,
		Description: req.Description,
		Parameter:   req.Parameter,
	}
	if port.Description == nil {
		defaultDescription := "N/A"
		port.Description = &defaultDescription
	}

	created, err := h.portService.CreateEqpPort(port)
	if err != nil {
		utils.HandleError(c, err, "Failed to create eqp port: %v", err)
		return
	}

	utils.Success(c, http.StatusCreated, NewEqpPortResponse(created))
}

// ListEqpPorts 获取端口列表
func (h *EqpPortHandler) ListEqpPorts(c *gin.Context) {
	skip := utils.ParseInt(c.DefaultQuery("skip", "0"), 0)
	limit := utils.ParseInt(c.DefaultQuery("limit", "100"), 100)
	eqpName := c.Query("eqp_name")

	ports, err := h.portService.ListEqpPorts(skip, limit, eqpName)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to list eqp ports: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewEqpPortListResponse(ports))
}

// GetEqpPort 获取端口详情
func (h *EqpPortHandler) GetEqpPort(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid eqp port ID")
		return
	}

	port, err := h.portService.GetEqpPort(id)
	if err != nil {
		utils.HandleError(c, err, "Failed to get eqp port: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewEqpPortResponse(port))
}

// UpdateEqpPort 更新端口，PUT和PATCH共用
func (h *EqpPortHandler) UpdateEqpPort(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid eqp port ID")
		return
	}

	var req UpdateEqpPortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	port, err := h.portService.UpdateEqpPort(id, req.Fields())
	if err != nil {
		utils.HandleError(c, err, "Failed to update eqp port: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, NewEqpPortResponse(port))
}

// DeleteEqpPort 删除端口
func (h *EqpPortHandler) DeleteEqpPort(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.ErrCodeInvalidInput, "Invalid eqp port ID")
		return
	}

	if err := h.portService.DeleteEqpPort(id); err != nil {
		utils.HandleError(c, err, "Failed to delete eqp port: %v", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountEqpPorts 计算端口总数
func (h *EqpPortHandler) CountEqpPorts(c *gin.Context) {
	eqpName := c.Query("eqp_name")

	total, err := h.portService.CountEqpPorts(eqpName)
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "Failed to count eqp ports: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"total":    total,
		"eqp_name": eqpName,
	})
}
