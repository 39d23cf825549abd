package employeesalary

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrm/internal/employee"
	employeesalaryerrors "go-hrm/internal/employeesalary/errors"
	"go-hrm/internal/identity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateStructure(ctx context.Context, actor *identity.Principal, req StructureRequest) (StructureResponse, error)
	ListStructures(ctx context.Context, actor *identity.Principal) ([]StructureResponse, error)
	GetStructure(ctx context.Context, actor *identity.Principal, id string) (StructureResponse, error)
	UpdateStructure(ctx context.Context, actor *identity.Principal, id string, req StructureRequest) (StructureResponse, error)
	DeleteStructure(ctx context.Context, actor *identity.Principal, id string) error

	Assign(ctx context.Context, actor *identity.Principal, profileID string, req AssignSalaryRequest) (EmployeeSalaryResponse, error)
	ListForProfile(ctx context.Context, actor *identity.Principal, profileID string) ([]EmployeeSalaryResponse, error)
	MySalary(ctx context.Context, actor *identity.Principal) (*EmployeeSalaryResponse, error)
	ActiveSalary(ctx context.Context, profileID uuid.UUID) (*EmployeeSalary, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	profiles employee.Repository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, profiles employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, profiles: profiles, logger: l}
}

func (s *service) CreateStructure(ctx context.Context, actor *identity.Principal, req StructureRequest) (StructureResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return StructureResponse{}, err
	}
	st := &SalaryStructure{ID: uuid.New()}
	if err := applyStructure(st, req); err != nil {
		return StructureResponse{}, err
	}
	if err := s.repo.CreateStructure(ctx, st); err != nil {
		s.logger.Warn("create salary structure failed", zap.String("name", st.Name), zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("salary structure created", zap.String("structure_id", st.ID.String()))
	return mapStructure(*st), nil
}

func (s *service) ListStructures(ctx context.Context, actor *identity.Principal) ([]StructureResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return nil, err
	}
	items, err := s.repo.ListStructures(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StructureResponse, len(items))
	for i, st := range items {
		out[i] = mapStructure(st)
	}
	return out, nil
}

func (s *service) GetStructure(ctx context.Context, actor *identity.Principal, id string) (StructureResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return StructureResponse{}, err
	}
	st, err := s.findStructure(ctx, s.repo, id)
	if err != nil {
		return StructureResponse{}, err
	}
	return mapStructure(*st), nil
}

func (s *service) UpdateStructure(ctx context.Context, actor *identity.Principal, id string, req StructureRequest) (StructureResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return StructureResponse{}, err
	}
	st, err := s.findStructure(ctx, s.repo, id)
	if err != nil {
		return StructureResponse{}, err
	}
	if err := applyStructure(st, req); err != nil {
		return StructureResponse{}, err
	}
	if err := s.repo.UpdateStructure(ctx, st); err != nil {
		return StructureResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("salary structure updated", zap.String("structure_id", st.ID.String()))
	return mapStructure(*st), nil
}

func (s *service) DeleteStructure(ctx context.Context, actor *identity.Principal, id string) error {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		st, err := s.findStructure(ctx, qtx, id)
		if err != nil {
			return err
		}
		inUse, err := qtx.StructureInUse(ctx, st.ID)
		if err != nil {
			return err
		}
		if inUse {
			return employeesalaryerrors.ErrStructureInUse
		}
		return qtx.DeleteStructure(ctx, st.ID)
	})
}

// Assign creates the new active row and deactivates every other row of the
// profile in one transaction.
func (s *service) Assign(ctx context.Context, actor *identity.Principal, profileID string, req AssignSalaryRequest) (EmployeeSalaryResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return EmployeeSalaryResponse{}, err
	}
	pid, err := uuid.Parse(strings.TrimSpace(profileID))
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidID
	}
	effective, err := time.Parse(dateLayout, strings.TrimSpace(req.EffectiveFrom))
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}
	s.logger.Debug("assign salary requested",
		zap.String("actor_id", actor.UserID.String()),
		zap.String("profile_id", pid.String()),
		zap.String("structure_id", req.StructureID),
	)

	if _, err := s.profiles.FindByID(ctx, pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeSalaryResponse{}, employeesalaryerrors.ErrProfileNotFound
		}
		return EmployeeSalaryResponse{}, err
	}

	var out EmployeeSalary
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		st, err := s.findStructure(ctx, qtx, req.StructureID)
		if err != nil {
			return err
		}
		es := &EmployeeSalary{
			ID:            uuid.New(),
			ProfileID:     pid,
			StructureID:   st.ID,
			EffectiveFrom: effective,
			IsActive:      true,
		}
		if err := qtx.CreateAssignment(ctx, es); err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.DeactivateOthers(ctx, pid, es.ID); err != nil {
			return err
		}
		es.Structure = st
		out = *es
		return nil
	})
	if err != nil {
		s.logger.Warn("assign salary failed", zap.String("profile_id", pid.String()), zap.Error(err))
		return EmployeeSalaryResponse{}, err
	}

	s.logger.Info("salary assigned",
		zap.String("profile_id", pid.String()),
		zap.String("employee_salary_id", out.ID.String()),
	)
	return mapSalary(out), nil
}

func (s *service) ListForProfile(ctx context.Context, actor *identity.Principal, profileID string) ([]EmployeeSalaryResponse, error) {
	if err := identity.Require(actor, identity.IsHR); err != nil {
		return nil, err
	}
	pid, err := uuid.Parse(strings.TrimSpace(profileID))
	if err != nil {
		return nil, employeesalaryerrors.ErrInvalidID
	}
	items, err := s.repo.ListByProfile(ctx, pid)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeSalaryResponse, len(items))
	for i, es := range items {
		out[i] = mapSalary(es)
	}
	return out, nil
}

// MySalary returns nil when nothing is assigned yet.
func (s *service) MySalary(ctx context.Context, actor *identity.Principal) (*EmployeeSalaryResponse, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}
	profile, err := s.profiles.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesalaryerrors.ErrProfileNotFound
		}
		return nil, err
	}
	es, err := s.repo.FindActive(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := mapSalary(*es)
	return &resp, nil
}

func (s *service) ActiveSalary(ctx context.Context, profileID uuid.UUID) (*EmployeeSalary, error) {
	es, err := s.repo.FindActive(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesalaryerrors.ErrNoActiveSalary
		}
		return nil, err
	}
	if es.Structure == nil {
		st, err := s.repo.FindStructure(ctx, es.StructureID)
		if err != nil {
			return nil, err
		}
		es.Structure = st
	}
	return es, nil
}

func (s *service) findStructure(ctx context.Context, repo Repository, raw string) (*SalaryStructure, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, employeesalaryerrors.ErrInvalidID
	}
	st, err := repo.FindStructure(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesalaryerrors.ErrStructureNotFound
		}
		return nil, err
	}
	return st, nil
}

func applyStructure(st *SalaryStructure, req StructureRequest) error {
	name := strings.TrimSpace(req.Name)
	ctc, err := parseAmount(req.MonthlyCTC, decimal.Zero, false)
	if err != nil {
		return err
	}
	basic, err := parseAmount(req.BasicPercent, DefaultBasicPercent, true)
	if err != nil {
		return err
	}
	hra, err := parseAmount(req.HRAPercent, DefaultHRAPercent, true)
	if err != nil {
		return err
	}
	other, err := parseAmount(req.OtherAllowances, decimal.Zero, false)
	if err != nil {
		return err
	}
	multiplier, err := parseAmount(req.OvertimeMultiplier, DefaultOvertimeMultiplier, false)
	if err != nil {
		return err
	}

	st.Name = name
	st.MonthlyCTC = ctc
	st.BasicPercent = basic
	st.HRAPercent = hra
	st.OtherAllowances = other
	st.OvertimeMultiplier = multiplier
	return nil
}

func parseAmount(raw string, def decimal.Decimal, percent bool) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, employeesalaryerrors.ErrInvalidAmount
	}
	if percent && v.GreaterThan(hundred) {
		return decimal.Zero, employeesalaryerrors.ErrInvalidAmount
	}
	return v, nil
}

func money(d decimal.Decimal) string {
	return d.RoundBank(2).StringFixedBank(2)
}

func mapStructure(st SalaryStructure) StructureResponse {
	return StructureResponse{
		ID:                 st.ID.String(),
		Name:               st.Name,
		MonthlyCTC:         money(st.MonthlyCTC),
		BasicPercent:       money(st.BasicPercent),
		HRAPercent:         money(st.HRAPercent),
		OtherAllowances:    money(st.OtherAllowances),
		OvertimeMultiplier: money(st.OvertimeMultiplier),
		Basic:              money(st.Basic()),
		HRA:                money(st.HRA()),
		PF:                 money(st.PF()),
	}
}

func mapSalary(es EmployeeSalary) EmployeeSalaryResponse {
	resp := EmployeeSalaryResponse{
		ID:            es.ID.String(),
		ProfileID:     es.ProfileID.String(),
		EffectiveFrom: es.EffectiveFrom.Format(dateLayout),
		IsActive:      es.IsActive,
	}
	if es.Structure != nil {
		st := mapStructure(*es.Structure)
		resp.Structure = &st
	}
	return resp
}
