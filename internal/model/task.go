package model

import (
	"time"
)

// Task 任务表模型
// agv_name/from_port/to_port 都是软引用，不做外键约束
type Task struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ParentTaskID int64     `json:"parent_task_id" gorm:"default:0;index"` // 父任务ID，0表示无父任务
	WorkID       int64     `json:"work_id" gorm:"not null;index"`
	FromPort     string    `json:"from_port" gorm:"size:50;default:'na'"`
	ToPort       string    `json:"to_port" gorm:"size:50;default:'na'"`
	StatusID     int       `json:"status_id" gorm:"not null;index"` // 状态值集合由外部系统定义
	AGVName      string    `json:"agv_name" gorm:"column:agv_name;size:20;default:'na';index"`
	Priority     int       `json:"priority" gorm:"default:0"` // 数字越大优先级越高
	MaterialCode string    `json:"material_code" gorm:"size:50;default:'na'"`
	Parameter    JSONMap   `json:"parameter" gorm:"type:jsonb"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 返回表名
func (Task) TableName() string {
	return "task"
}
