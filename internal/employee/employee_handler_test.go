package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ems-console/internal/employee"
	employeeerrors "ems-console/internal/employee/errors"
	"ems-console/internal/shared/apperror"
	"ems-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	BrowseFn func(ctx context.Context, q employee.BrowseQuery) (employee.BrowseResult, error)
	CreateFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Record, error)
	UpdateFn func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Record, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeService) Browse(ctx context.Context, q employee.BrowseQuery) (employee.BrowseResult, error) {
	return f.BrowseFn(ctx, q)
}
func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Record, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Record, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newEmployeeRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := employee.NewHandler(svc)
	allow := func(c *gin.Context) { c.Next() }
	employee.RegisterRoutes(r.Group("/api/v1"), handler, allow, nil)
	return r
}

func TestEmployeeHandler_Browse(t *testing.T) {
	t.Run("passes query parameters through and wraps the page", func(t *testing.T) {
		var gotQuery employee.BrowseQuery
		svc := &fakeService{
			BrowseFn: func(ctx context.Context, q employee.BrowseQuery) (employee.BrowseResult, error) {
				gotQuery = q
				return employee.BrowseResult{
					Employees: sampleRecords()[:1],
					Stats:     employee.WorkingSetStats{Total: 4, Active: 2, Inactive: 1},
					Meta:      response.NewPaginationMeta(2, 0, 1),
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?scope=active&q=ann&status=active&page=0&size=1", nil)
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "active", gotQuery.Scope)
		assert.Equal(t, "ann", gotQuery.Term)
		assert.Equal(t, "active", gotQuery.Status)
		assert.Equal(t, 1, gotQuery.Size)

		var envelope struct {
			Ok   bool `json:"ok"`
			Data struct {
				Employees []employee.Record        `json:"employees"`
				Stats     employee.WorkingSetStats `json:"stats"`
			} `json:"data"`
			Meta *response.PaginationMeta `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Len(t, envelope.Data.Employees, 1)
		assert.Equal(t, 4, envelope.Data.Stats.Total)
		assert.Equal(t, 2, envelope.Meta.Total)
		assert.Equal(t, 2, envelope.Meta.TotalPages)
	})

	t.Run("defaults apply when the query string is empty", func(t *testing.T) {
		var gotQuery employee.BrowseQuery
		svc := &fakeService{
			BrowseFn: func(ctx context.Context, q employee.BrowseQuery) (employee.BrowseResult, error) {
				gotQuery = q
				return employee.BrowseResult{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "all", gotQuery.Scope)
		assert.Equal(t, "all", gotQuery.Status)
		assert.Equal(t, 0, gotQuery.Page)
	})

	t.Run("upstream failure maps to the envelope error", func(t *testing.T) {
		svc := &fakeService{
			BrowseFn: func(ctx context.Context, q employee.BrowseQuery) (employee.BrowseResult, error) {
				return employee.BrowseResult{}, employeeerrors.ErrLoadFailed
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to load employees")
		assert.Contains(t, w.Body.String(), apperror.CodeUpstream)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("validation error carries per-field details", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Record, error) {
				return employee.Record{}, apperror.ErrValidation.WithDetails(map[string]string{
					"salary": "Valid salary is required",
				})
			},
		}

		body := `{"user_name":"Ann","email":"ann@example.com"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code    string            `json:"code"`
				Message string            `json:"message"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Equal(t, apperror.CodeValidation, envelope.Error.Code)
		assert.Equal(t, "Please fix the errors in the form", envelope.Error.Message)
		assert.Equal(t, "Valid salary is required", envelope.Error.Details["salary"])
	})

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Record, error) {
				t.Fatal("service must not be called for a malformed body")
				return employee.Record{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})

	t.Run("created record is returned with 201", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Record, error) {
				return employee.Record{ID: "11", UserName: req.UserName}, nil
			},
		}

		body, _ := json.Marshal(validCreateRequest())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"11"`)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	var gotID string
	svc := &fakeService{
		UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Record, error) {
			gotID = id
			return employee.Record{ID: id, UserName: req.UserName}, nil
		},
	}

	body := `{"user_name":"Ann Smith","email":"ann@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newEmployeeRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", gotID)
	assert.Contains(t, w.Body.String(), "Ann Smith")
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success is an empty 204", func(t *testing.T) {
		var gotID string
		svc := &fakeService{
			DeleteFn: func(ctx context.Context, id string) error {
				gotID = id
				return nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/42", nil)
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "42", gotID)
		assert.Empty(t, w.Body.String())
	})

	t.Run("failure keeps the error envelope", func(t *testing.T) {
		svc := &fakeService{
			DeleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.ErrDeleteFailed
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/42", nil)
		newEmployeeRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to delete employee")
	})
}
