package service

import (
	"github.com/agvc-system/fleet-management/internal/utils"
)

var (
	ErrAGVNotFound        = utils.NewError(utils.ErrCodeNotFound, "AGV 不存在")
	ErrAGVNameExists      = func(name string) error { return utils.NewError(utils.ErrCodeAlreadyExists, "AGV 名称 '"+name+"' 已存在") }
	ErrEqpPortNotFound    = utils.NewError(utils.ErrCodeNotFound, "设备端口不存在")
	ErrEqpPortNameExists  = func(name string) error { return utils.NewError(utils.ErrCodeAlreadyExists, "端口名称 '"+name+"' 已存在") }
	ErrTaskNotFound       = utils.NewError(utils.ErrCodeNotFound, "任务不存在")
	ErrParentTaskNotFound = utils.NewError(utils.ErrCodeNotFound, "父任务不存在")
)
