package model

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONMap 通用JSON参数类型，对应数据库jsonb列
type JSONMap map[string]interface{}

func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*j = result
	return nil
}

func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONMap) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}

	*j = result
	return nil
}

func (j JSONMap) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]interface{}(j))
}

func (j JSONMap) Get(key string) (interface{}, bool) {
	val, ok := j[key]
	return val, ok
}

func (j JSONMap) GetString(key string) (string, bool) {
	if val, ok := j[key]; ok {
		if str, ok := val.(string); ok {
			return str, true
		}
	}
	return "", false
}
