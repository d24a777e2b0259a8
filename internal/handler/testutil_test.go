package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/agvc-system/fleet-management/internal/config"
	"github.com/agvc-system/fleet-management/internal/model"
	"github.com/agvc-system/fleet-management/internal/repository"
	"github.com/agvc-system/fleet-management/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter 用内存数据库搭建完整路由，和生产环境同一套处理链
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.AGV{}, &model.EqpPort{}, &model.Task{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	agvHandler := NewAGVHandler(service.NewAGVService(repository.NewAGVRepository(db)))
	portHandler := NewEqpPortHandler(service.NewEqpPortService(repository.NewEqpPortRepository(db)))
	taskHandler := NewTaskHandler(service.NewTaskService(repository.NewTaskRepository(db)))
	systemHandler := NewSystemHandler(&config.Config{
		Server: config.ServerConfig{Name: "AGVC System", Version: "1.0.0"},
	})

	r := gin.New()
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)

	v1 := r.Group("/api/v1")
	{
		agvs := v1.Group("/agv")
		{
			agvs.POST("/", agvHandler.CreateAGV)
			agvs.GET("/", agvHandler.ListAGVs)
			agvs.GET(":id", agvHandler.GetAGV)
			agvs.PUT(":id", agvHandler.UpdateAGV)
			agvs.PATCH(":id", agvHandler.UpdateAGV)
			agvs.DELETE(":id", agvHandler.DeleteAGV)
			agvs.GET("/count/total", agvHandler.CountAGVs)
		}

		ports := v1.Group("/eqp_port")
		{
			ports.POST("/", portHandler.CreateEqpPort)
			ports.GET("/", portHandler.ListEqpPorts)
			ports.GET(":id", portHandler.GetEqpPort)
			ports.PUT(":id", portHandler.UpdateEqpPort)
			ports.PATCH(":id", portHandler.UpdateEqpPort)
			ports.DELETE(":id", portHandler.DeleteEqpPort)
			ports.GET("/count/total", portHandler.CountEqpPorts)
		}

		tasks := v1.Group("/task")
		{
			tasks.POST("/", taskHandler.CreateTask)
			tasks.GET("/", taskHandler.ListTasks)
			tasks.GET(":id", taskHandler.GetTask)
			tasks.GET(":id/children", taskHandler.ListChildTasks)
			tasks.PUT(":id", taskHandler.UpdateTask)
			tasks.PATCH(":id", taskHandler.UpdateTask)
			tasks.DELETE(":id", taskHandler.DeleteTask)
			tasks.GET("/count/total", taskHandler.CountTasks)
		}
	}

	return r
}

// envelope 统一响应包
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode data %q: %v", string(env.Data), err)
	}
}
