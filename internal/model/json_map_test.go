package model

import (
	"encoding/json"
	"testing"
)

func TestJSONMapScan(t *testing.T) {
	// 驱动可能给[]byte也可能给string
	var fromBytes JSONMap
	if err := fromBytes.Scan([]byte(`{"ip":"10.0.0.1","port":8000}`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if ip, _ := fromBytes.GetString("ip"); ip != "10.0.0.1" {
		t.Fatalf("unexpected ip: %v", fromBytes)
	}

	var fromString JSONMap
	if err := fromString.Scan(`{"pr1":"na"}`); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if pr1, _ := fromString.GetString("pr1"); pr1 != "na" {
		t.Fatalf("unexpected pr1: %v", fromString)
	}

	var fromNil JSONMap
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if fromNil != nil {
		t.Fatalf("expected nil map, got %v", fromNil)
	}

	var invalid JSONMap
	if err := invalid.Scan([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestJSONMapValue(t *testing.T) {
	m := JSONMap{"work_id": 42}
	value, err := m.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(value.([]byte)) != `{"work_id":42}` {
		t.Fatalf("unexpected value: %s", value)
	}

	var nilMap JSONMap
	value, err = nilMap.Value()
	if err != nil {
		t.Fatalf("Value nil: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil driver value, got %v", value)
	}
}

func TestJSONMapMarshalNil(t *testing.T) {
	// nil参数对外序列化成空对象而不是null
	data, err := json.Marshal(JSONMap(nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected {}, got %s", data)
	}
}

func TestJSONMapGetString(t *testing.T) {
	m := JSONMap{"name": "AGV01", "port": float64(8000)}

	if name, ok := m.GetString("name"); !ok || name != "AGV01" {
		t.Fatalf("unexpected name: %q %v", name, ok)
	}
	// 非字符串值不按字符串返回
	if _, ok := m.GetString("port"); ok {
		t.Fatal("expected GetString to reject non-string value")
	}
	if _, ok := m.GetString("missing"); ok {
		t.Fatal("expected GetString to miss absent key")
	}
}
