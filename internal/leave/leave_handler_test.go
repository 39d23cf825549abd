package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/identity"
	"go-hrm/internal/leave"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	leave.Service
	applyFn    func(ctx context.Context, actor *identity.Principal, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error)
	hrActionFn func(ctx context.Context, actor *identity.Principal, id string, req leave.ActionRequest) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, actor *identity.Principal, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	return f.applyFn(ctx, actor, req)
}

func (f *fakeLeaveService) HRAction(ctx context.Context, actor *identity.Principal, id string, req leave.ActionRequest) (leave.LeaveResponse, error) {
	return f.hrActionFn(ctx, actor, id, req)
}

func newRouter(p *identity.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	if p != nil {
		r.Use(func(c *gin.Context) {
			middleware.SetPrincipal(c, p)
			c.Next()
		})
	}
	return r
}

func TestLeaveHandler_Apply(t *testing.T) {
	actor := &identity.Principal{UserID: uuid.New(), Role: identity.RoleEmployee}

	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(_ context.Context, p *identity.Principal, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actor.UserID, p.UserID)
				assert.Equal(t, "CASUAL", req.LeaveType)
				return leave.LeaveResponse{ID: "l1", Status: leave.StatusApplied, Days: 3}, nil
			},
		}
		r := newRouter(actor)
		r.POST("/leave/apply/", leave.NewHandler(svc).Apply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/apply/",
			strings.NewReader(`{"leave_type":"CASUAL","start_date":"2025-02-03","end_date":"2025-02-05"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"status":"applied"`)
	})

	t.Run("missing dates", func(t *testing.T) {
		r := newRouter(actor)
		r.POST("/leave/apply/", leave.NewHandler(&fakeLeaveService{}).Apply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/apply/", strings.NewReader(`{"leave_type":"CASUAL"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		r := newRouter(nil)
		r.POST("/leave/apply/", leave.NewHandler(&fakeLeaveService{}).Apply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/apply/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_HRAction(t *testing.T) {
	hr := &identity.Principal{UserID: uuid.New(), Role: identity.RoleHR}

	svc := &fakeLeaveService{
		hrActionFn: func(_ context.Context, _ *identity.Principal, id string, req leave.ActionRequest) (leave.LeaveResponse, error) {
			if id == "pending-tl" {
				return leave.LeaveResponse{}, leaveerrors.ErrTLApprovalRequired
			}
			return leave.LeaveResponse{ID: id, Status: leave.StatusHRApproved}, nil
		},
	}
	r := newRouter(hr)
	r.POST("/hr/leaves/:id/action/", leave.NewHandler(svc).HRAction)

	cases := []struct {
		name     string
		id       string
		body     string
		wantCode int
		wantErr  string
	}{
		{"approved", "l1", `{"action":"approve"}`, http.StatusOK, ""},
		{"unknown action", "l1", `{"action":"maybe"}`, http.StatusBadRequest, apperror.CodeInvalidInput},
		{"tl pending", "pending-tl", `{"action":"approve"}`, http.StatusBadRequest, apperror.CodeInvalidState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/hr/leaves/"+tc.id+"/action/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantErr != "" {
				env := decodeEnvelope(t, w.Body.Bytes())
				assert.Equal(t, tc.wantErr, env.Error.Code)
			}
		})
	}
}
