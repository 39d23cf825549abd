package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/identity"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreatedEmployeeResponse, error)
	ListFn    func(ctx context.Context, search string, page, pageSize int) ([]employee.EmployeeResponse, int64, error)
	GetByIDFn func(ctx context.Context, actor *identity.Principal, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreatedEmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeEmployeeService) List(ctx context.Context, search string, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
	return f.ListFn(ctx, search, page, pageSize)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, actor *identity.Principal, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, actor, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func withPrincipal(p *identity.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func TestHandler_Create(t *testing.T) {
	svc := &fakeEmployeeService{
		CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.CreatedEmployeeResponse, error) {
			assert.Equal(t, "Jane", req.FirstName)
			return employee.CreatedEmployeeResponse{Username: "jane.doe", Role: "employee"}, nil
		},
	}
	h := employee.NewHandler(svc, media.NewStore(t.TempDir()))

	r := setupRouter()
	r.POST("/create-employee/", h.Create)

	t.Run("created", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-employee/", strings.NewReader(`{"first_name":"Jane","last_name":"Doe"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"jane.doe"`)
	})

	t.Run("missing first name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-employee/", strings.NewReader(`{"last_name":"Doe"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "first_name")
	})
}

func TestHandler_List(t *testing.T) {
	svc := &fakeEmployeeService{
		ListFn: func(_ context.Context, search string, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, "python", search)
			assert.Equal(t, 2, page)
			assert.Equal(t, 25, pageSize)
			return []employee.EmployeeResponse{{EmpID: "WZG-AI-0026"}}, 26, nil
		},
	}
	h := employee.NewHandler(svc, nil)

	r := setupRouter()
	r.GET("/employee-list/", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee-list/?search=python&page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
	assert.Contains(t, w.Body.String(), "WZG-AI-0026")
}

func TestHandler_GetByID(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeEmployeeService{
		GetByIDFn: func(_ context.Context, _ *identity.Principal, got string) (employee.EmployeeResponse, error) {
			if got != id {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			}
			return employee.EmployeeResponse{ID: id}, nil
		},
	}
	h := employee.NewHandler(svc, nil)
	actor := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}

	t.Run("found", func(t *testing.T) {
		r := setupRouter()
		r.GET("/employees/:id/", withPrincipal(actor), h.GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id+"/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r := setupRouter()
		r.GET("/employees/:id/", withPrincipal(actor), h.GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.NewString()+"/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		r := setupRouter()
		r.GET("/employees/:id/", h.GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id+"/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
