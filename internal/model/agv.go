package model

import (
	"time"
)

// AGV 车辆主表模型
// 只包含静态属性，运行状态由车载系统上报，不落在此表
type AGV struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:20;uniqueIndex;not null"` // AGV 名称/编号，如 AGV01
	Description *string   `json:"description" gorm:"type:text"`
	Model       string    `json:"model" gorm:"size:50;not null"` // 型号：K400, Cargo, Loader, Unloader
	Enable      int       `json:"enable" gorm:"default:1"`       // 1=启用, 0=停用
	Parameter   JSONMap   `json:"parameter" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 返回表名
func (AGV) TableName() string {
	return "agv"
}
