package model

import (
	"time"
)

// EqpPort 设备端口表模型
// eqp_name 只是字符串归属，不是外键
type EqpPort struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:50;uniqueIndex;not null"` // 端口名称，唯一标识
	EqpName     string    `json:"eqp_name" gorm:"size:50;not null;index"`   // 所属设备名称
	Node        string    `json:"node" gorm:"size:50;not null"`             // 节点编号
	Description *string   `json:"description" gorm:"type:text"`
	Parameter   JSONMap   `json:"parameter" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 返回表名
func (EqpPort) TableName() string {
	return "eqp_port"
}
