package employeesalary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/employeesalary"
	employeesalaryerrors "go-hrm/internal/employeesalary/errors"
	"go-hrm/internal/identity"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	employeesalary.Service
	createFn func(ctx context.Context, actor *identity.Principal, req employeesalary.StructureRequest) (employeesalary.StructureResponse, error)
	deleteFn func(ctx context.Context, actor *identity.Principal, id string) error
	assignFn func(ctx context.Context, actor *identity.Principal, profileID string, req employeesalary.AssignSalaryRequest) (employeesalary.EmployeeSalaryResponse, error)
	myFn     func(ctx context.Context, actor *identity.Principal) (*employeesalary.EmployeeSalaryResponse, error)
}

func (f *fakeSalaryService) CreateStructure(ctx context.Context, actor *identity.Principal, req employeesalary.StructureRequest) (employeesalary.StructureResponse, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeSalaryService) DeleteStructure(ctx context.Context, actor *identity.Principal, id string) error {
	return f.deleteFn(ctx, actor, id)
}

func (f *fakeSalaryService) Assign(ctx context.Context, actor *identity.Principal, profileID string, req employeesalary.AssignSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
	return f.assignFn(ctx, actor, profileID, req)
}

func (f *fakeSalaryService) MySalary(ctx context.Context, actor *identity.Principal) (*employeesalary.EmployeeSalaryResponse, error) {
	return f.myFn(ctx, actor)
}

func newRouter(p *identity.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSalaryHandler_CreateStructure(t *testing.T) {
	hr := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}

	t.Run("created", func(t *testing.T) {
		svc := &fakeSalaryService{
			createFn: func(_ context.Context, actor *identity.Principal, req employeesalary.StructureRequest) (employeesalary.StructureResponse, error) {
				assert.Equal(t, hr.UserID, actor.UserID)
				assert.Equal(t, "60000.00", req.MonthlyCTC)
				return employeesalary.StructureResponse{ID: "s1", Name: req.Name, MonthlyCTC: req.MonthlyCTC, Basic: "30000.00"}, nil
			},
		}
		r := newRouter(hr)
		r.POST("/hr/salary-structures/", employeesalary.NewHandler(svc).CreateStructure)

		w := postJSON(r, "/hr/salary-structures/", `{"name":"L2 Engineer","monthly_ctc":"60000.00"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"basic":"30000.00"`)
	})

	t.Run("missing ctc", func(t *testing.T) {
		svc := &fakeSalaryService{}
		r := newRouter(hr)
		r.POST("/hr/salary-structures/", employeesalary.NewHandler(svc).CreateStructure)

		w := postJSON(r, "/hr/salary-structures/", `{"name":"L2 Engineer"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "monthly_ctc")
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &fakeSalaryService{
			createFn: func(_ context.Context, _ *identity.Principal, _ employeesalary.StructureRequest) (employeesalary.StructureResponse, error) {
				return employeesalary.StructureResponse{}, employeesalaryerrors.ErrStructureNameTaken
			},
		}
		r := newRouter(hr)
		r.POST("/hr/salary-structures/", employeesalary.NewHandler(svc).CreateStructure)

		w := postJSON(r, "/hr/salary-structures/", `{"name":"L2 Engineer","monthly_ctc":"60000.00"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSalaryHandler_DeleteStructure(t *testing.T) {
	hr := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}

	svc := &fakeSalaryService{
		deleteFn: func(_ context.Context, _ *identity.Principal, id string) error {
			if id == "in-use" {
				return employeesalaryerrors.ErrStructureInUse
			}
			return nil
		},
	}
	r := newRouter(hr)
	r.DELETE("/hr/salary-structures/:id/", employeesalary.NewHandler(svc).DeleteStructure)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/hr/salary-structures/s1/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/hr/salary-structures/in-use/", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSalaryHandler_Assign(t *testing.T) {
	hr := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}
	profileID := uuid.New().String()
	structureID := uuid.New().String()

	svc := &fakeSalaryService{
		assignFn: func(_ context.Context, _ *identity.Principal, pid string, req employeesalary.AssignSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
			assert.Equal(t, profileID, pid)
			assert.Equal(t, structureID, req.StructureID)
			return employeesalary.EmployeeSalaryResponse{ID: "es1", ProfileID: pid, EffectiveFrom: req.EffectiveFrom, IsActive: true}, nil
		},
	}
	r := newRouter(hr)
	r.POST("/hr/employees/:id/salaries/", employeesalary.NewHandler(svc).Assign)

	w := postJSON(r, "/hr/employees/"+profileID+"/salaries/", `{"structure_id":"`+structureID+`","effective_from":"2026-10-01"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)

	w = postJSON(r, "/hr/employees/"+profileID+"/salaries/", `{"structure_id":"not-a-uuid","effective_from":"2026-10-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalaryHandler_MySalary(t *testing.T) {
	emp := &identity.Principal{UserID: uuid.New(), Role: identity.RoleEmployee}

	t.Run("no active salary yields null", func(t *testing.T) {
		svc := &fakeSalaryService{
			myFn: func(_ context.Context, _ *identity.Principal) (*employeesalary.EmployeeSalaryResponse, error) {
				return nil, nil
			},
		}
		r := newRouter(emp)
		r.GET("/salary/my/", employeesalary.NewHandler(svc).MySalary)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/my/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"salary":null`)
	})
}
