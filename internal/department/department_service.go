package department

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/employee"
	"go-hrm/internal/identity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	directoryCacheKey = "departments:directory"
	directoryCacheTTL = 5 * time.Minute
)

type Service interface {
	List(ctx context.Context, actor *identity.Principal) ([]DepartmentResponse, error)
	Members(ctx context.Context, actor *identity.Principal, code string, page, pageSize int) ([]MemberResponse, int64, error)
}

type service struct {
	repo     Repository
	profiles employee.Repository
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewService(repo Repository, profiles employee.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, profiles: profiles, rdb: rdb, logger: l}
}

// List returns every department in catalogue order, including empty ones.
func (s *service) List(ctx context.Context, actor *identity.Principal) ([]DepartmentResponse, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}

	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	counts, err := s.repo.Headcounts(ctx)
	if err != nil {
		s.logger.Error("department headcounts failed", zap.Error(err))
		return nil, err
	}
	leads, err := s.repo.ActiveTeamLeads(ctx)
	if err != nil {
		s.logger.Error("department team leads failed", zap.Error(err))
		return nil, err
	}

	byDept := map[string][]TeamLeadSummary{}
	for _, p := range leads {
		byDept[p.Department] = append(byDept[p.Department], TeamLeadSummary{
			UserID:   p.UserID.String(),
			EmpID:    p.EmpID,
			FullName: p.FullName(),
		})
	}

	out := make([]DepartmentResponse, 0, len(employee.Departments))
	for _, code := range employee.Departments {
		tls := byDept[code]
		if tls == nil {
			tls = []TeamLeadSummary{}
		}
		out = append(out, DepartmentResponse{
			Code:      code,
			Name:      Label(code),
			Headcount: counts[code],
			TeamLeads: tls,
		})
	}

	s.store(ctx, out)
	return out, nil
}

// Members is open to HR, delivery and project managers. A TL only sees the
// department on their own profile.
func (s *service) Members(ctx context.Context, actor *identity.Principal, code string, page, pageSize int) ([]MemberResponse, int64, error) {
	if actor == nil {
		return nil, 0, identity.ErrUnauthenticated
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if !employee.ValidDepartment(code) {
		return nil, 0, departmenterrors.ErrUnknownDepartment
	}

	switch {
	case identity.IsHR(actor), identity.IsDM(actor), identity.IsPM(actor):
	case identity.IsTL(actor):
		own, err := s.profiles.FindByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, identity.ErrForbidden
			}
			return nil, 0, err
		}
		if own.Department != code {
			return nil, 0, identity.ErrForbidden
		}
	default:
		return nil, 0, identity.ErrForbidden
	}

	profiles, total, err := s.repo.Members(ctx, code, page, pageSize)
	if err != nil {
		s.logger.Error("department members failed", zap.String("department", code), zap.Error(err))
		return nil, 0, err
	}

	out := make([]MemberResponse, len(profiles))
	for i, p := range profiles {
		out[i] = MemberResponse{
			UserID:      p.UserID.String(),
			EmpID:       p.EmpID,
			FullName:    p.FullName(),
			WorkEmail:   p.WorkEmail,
			Designation: p.Designation,
			Role:        string(p.Role),
		}
	}
	return out, total, nil
}

func (s *service) cached(ctx context.Context) ([]DepartmentResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, directoryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("department cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var out []DepartmentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *service) store(ctx context.Context, out []DepartmentResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, directoryCacheKey, raw, directoryCacheTTL).Err(); err != nil {
		s.logger.Warn("department cache write failed", zap.Error(err))
	}
}
