package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/identity"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	TeamLeadOptionsKey       = EmployeeOptionsKeyPrefix + "team-leads"
	optionsCacheTTL          = time.Hour
	dateLayout               = "2006-01-02"
)

type Service interface {
	CreateUserWithProfile(ctx context.Context, in NewUserInput) (CreatedEmployeeResponse, error)
	Signup(ctx context.Context, req SignupRequest) (CreatedEmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error)
	List(ctx context.Context, search string, page, pageSize int) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, actor *identity.Principal, id string) (EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (EmployeeResponse, error)
	Update(ctx context.Context, actor *identity.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SetProfilePhoto(ctx context.Context, actor *identity.Principal, id, path string) (EmployeeResponse, error)
	GetTeamLeadOptions(ctx context.Context) ([]OptionResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	users       user.Repository
	counter     counter.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	sf          *singleflight.Group
	emailDomain string
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	emailDomain string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		users:       users,
		counter:     counter,
		outbox:      outboxRepo,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		emailDomain: emailDomain,
		logger:      l,
	}
}

// CreateUserWithProfile is the single insert path for users. Roles that
// carry a profile get one in the same transaction with a freshly allocated emp_id.
func (s *service) CreateUserWithProfile(ctx context.Context, in NewUserInput) (CreatedEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if in.Role == "" {
		in.Role = identity.RoleEmployee
	}
	in.FirstName = displayName(in.FirstName)
	in.LastName = displayName(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	s.logger.Debug("create user with profile requested",
		zap.String("request_id", rid),
		zap.String("role", string(in.Role)),
		zap.String("email", in.Email),
	)

	if in.FirstName == "" {
		return CreatedEmployeeResponse{}, employeeerrors.ErrNameRequired
	}
	if !in.Role.Valid() {
		return CreatedEmployeeResponse{}, identity.ErrUnknownRole
	}
	if in.Department != "" && !ValidDepartment(in.Department) {
		return CreatedEmployeeResponse{}, employeeerrors.ErrInvalidDepartment
	}

	hash, err := hashPassword(in)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return CreatedEmployeeResponse{}, err
	}

	var (
		u       user.User
		profile *Profile
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		profiles := s.repo.WithTx(tx)

		username, err := s.resolveUsername(ctx, users, in)
		if err != nil {
			return err
		}
		email, err := s.resolveEmail(ctx, users, profiles, in)
		if err != nil {
			return err
		}

		u = user.User{
			ID:        uuid.New(),
			Username:  username,
			Email:     email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Password:  hash,
			Role:      in.Role,
			IsActive:  true,
		}
		if err := users.Create(ctx, &u); err != nil {
			s.logger.Error("create user persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if in.Role.HasProfile() {
			n, err := s.counter.WithTx(tx).NextValue(ctx, counter.EmployeeIDSequence)
			if err != nil {
				s.logger.Error("allocate emp_id failed", zap.Error(err))
				return err
			}
			profile = &Profile{
				ID:            uuid.New(),
				UserID:        u.ID,
				EmpID:         FormatEmpID(n),
				WorkEmail:     u.Email,
				Username:      u.Username,
				FirstName:     u.FirstName,
				LastName:      u.LastName,
				PhoneNumber:   in.PhoneNumber,
				Department:    in.Department,
				Designation:   in.Designation,
				DateOfJoining: in.DateOfJoining,
				TeamLeadID:    in.TeamLeadID,
				ManagerID:     in.ManagerID,
				Role:          u.Role,
				IsActive:      true,
			}
			if err := profiles.Create(ctx, profile); err != nil {
				s.logger.Error("create profile persist failed", zap.String("request_id", rid), zap.Error(err))
				return mapRepositoryError(err)
			}
		}

		return s.queueCreatedEvent(ctx, tx, rid, u, profile)
	})
	if err != nil {
		return CreatedEmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	resp := CreatedEmployeeResponse{
		UserID:   u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
	if profile != nil {
		pr := mapToResponse(*profile)
		resp.Profile = &pr
	}

	s.logger.Info("create user with profile success",
		zap.String("request_id", rid),
		zap.String("user_id", resp.UserID),
		zap.Bool("has_profile", profile != nil),
	)
	return resp, nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *gorm.DB, rid string, u user.User, p *Profile) error {
	if s.outbox == nil {
		return nil
	}
	event := events.EmployeeCreatedEvent{
		EventType:  events.TypeEmployeeCreated,
		RequestID:  rid,
		UserID:     u.ID.String(),
		Role:       string(u.Role),
		OccurredAt: time.Now().UTC(),
	}
	if p != nil {
		event.ProfileID = p.ID.String()
		event.EmpID = p.EmpID
	}

	row, err := kafka.NewOutboxEvent(rid, "employee", u.ID.String(), event.EventType, events.EmployeeLifecycleTopic, event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) resolveUsername(ctx context.Context, users user.Repository, in NewUserInput) (string, error) {
	if in.Username != "" {
		taken, err := users.UsernameExists(ctx, in.Username)
		if err != nil {
			return "", err
		}
		if taken {
			return "", usererrors.ErrUsernameTaken
		}
		return in.Username, nil
	}
	return uniqueCandidate(ctx, nameBase(in.FirstName, in.LastName),
		func(c string) string { return c },
		users.UsernameExists,
	)
}

func (s *service) resolveEmail(ctx context.Context, users user.Repository, profiles Repository, in NewUserInput) (string, error) {
	exists := func(ctx context.Context, email string) (bool, error) {
		taken, err := users.EmailExists(ctx, email)
		if err != nil || taken {
			return taken, err
		}
		return profiles.WorkEmailExists(ctx, email)
	}

	if in.Email != "" {
		taken, err := exists(ctx, in.Email)
		if err != nil {
			return "", err
		}
		if taken {
			return "", usererrors.ErrEmailTaken
		}
		return in.Email, nil
	}
	return uniqueCandidate(ctx, nameBase(in.FirstName, in.LastName),
		func(c string) string { return c + "@" + s.emailDomain },
		exists,
	)
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (CreatedEmployeeResponse, error) {
	if req.Password != req.Password2 {
		return CreatedEmployeeResponse{}, usererrors.ErrPasswordMismatch
	}
	if problems := user.ValidatePassword(req.Password); len(problems) > 0 {
		return CreatedEmployeeResponse{}, apperror.Validation(map[string]string{
			"password": strings.Join(problems, " "),
		})
	}

	return s.CreateUserWithProfile(ctx, NewUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Role:      identity.RoleEmployee,
	})
}

// CreateEmployee is the HR flow. The account cannot log in until a
// password reset completes.
func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error) {
	in := NewUserInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Username:         req.Username,
		UnusablePassword: true,
		Role:             identity.RoleEmployee,
		Department:       strings.ToUpper(strings.TrimSpace(req.Department)),
		Designation:      req.Designation,
		PhoneNumber:      req.PhoneNumber,
	}

	if req.Role != "" {
		role, err := identity.ParseRole(req.Role)
		if err != nil {
			return CreatedEmployeeResponse{}, err
		}
		in.Role = role
	}
	if req.DateOfJoining != "" {
		d, err := time.Parse(dateLayout, req.DateOfJoining)
		if err != nil {
			s.logger.Warn("create employee invalid date_of_joining", zap.String("date_of_joining", req.DateOfJoining))
			return CreatedEmployeeResponse{}, employeeerrors.ErrInvalidDate
		}
		in.DateOfJoining = &d
	}
	if req.TeamLeadID != "" {
		id, err := s.checkTeamLead(ctx, req.TeamLeadID)
		if err != nil {
			return CreatedEmployeeResponse{}, err
		}
		in.TeamLeadID = &id
	}
	if req.ManagerID != "" {
		id, err := s.checkManager(ctx, req.ManagerID)
		if err != nil {
			return CreatedEmployeeResponse{}, err
		}
		in.ManagerID = &id
	}

	return s.CreateUserWithProfile(ctx, in)
}

func (s *service) checkTeamLead(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, employeeerrors.ErrInvalidTeamLead
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, employeeerrors.ErrInvalidTeamLead
		}
		return uuid.Nil, err
	}
	if !u.IsActive || u.Role != identity.RoleTL {
		return uuid.Nil, employeeerrors.ErrInvalidTeamLead
	}
	return id, nil
}

func (s *service) checkManager(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, employeeerrors.ErrInvalidManager
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, employeeerrors.ErrInvalidManager
		}
		return uuid.Nil, err
	}
	if !u.IsActive {
		return uuid.Nil, employeeerrors.ErrInvalidManager
	}
	return id, nil
}

func (s *service) List(ctx context.Context, search string, page, pageSize int) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("list employees requested", zap.String("search", search), zap.Int("page", page))

	items, total, err := s.repo.List(ctx, ListFilter{Search: search, Page: page, PageSize: pageSize})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(items), total, nil
}

func (s *service) GetByID(ctx context.Context, actor *identity.Principal, id string) (EmployeeResponse, error) {
	p, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetByUserID(ctx context.Context, userID uuid.UUID) (EmployeeResponse, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrProfileNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

// findVisible loads a profile readable by the owner or HR.
func (s *service) findVisible(ctx context.Context, actor *identity.Principal, id string) (*Profile, error) {
	if actor == nil {
		return nil, identity.ErrUnauthenticated
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee by id failed", zap.Error(err))
		}
		return nil, mapRepositoryError(err)
	}
	if p.UserID != actor.UserID && !identity.IsHR(actor) {
		s.logger.Warn("employee profile access denied",
			zap.String("profile_id", id),
			zap.String("actor_id", actor.UserID.String()),
		)
		return nil, identity.ErrForbidden
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, actor *identity.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("profile_id", id))

	p, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	isHR := identity.IsHR(actor)
	if req.touchesHRFields() && !isHR {
		s.logger.Warn("non-hr attempted hr field update", zap.String("profile_id", id))
		return EmployeeResponse{}, employeeerrors.ErrHRFieldsOnly
	}

	if err := applyContactFields(p, req); err != nil {
		return EmployeeResponse{}, err
	}

	var newRole identity.Role
	if isHR {
		if err := s.applyHRFields(ctx, p, req); err != nil {
			return EmployeeResponse{}, err
		}
		if req.Role != nil {
			role, err := identity.ParseRole(*req.Role)
			if err != nil {
				return EmployeeResponse{}, err
			}
			newRole = role
			p.Role = role
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, p); err != nil {
			return mapRepositoryError(err)
		}
		if newRole != "" {
			// role di profile hanya mirror, sumber utamanya tetap users.role
			if err := s.users.WithTx(tx).UpdateRole(ctx, p.UserID, newRole); err != nil {
				return mapRepositoryError(err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("update employee persist failed", zap.String("profile_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("profile_id", id))
	return mapToResponse(*p), nil
}

func (s *service) SetProfilePhoto(ctx context.Context, actor *identity.Principal, id, path string) (EmployeeResponse, error) {
	p, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	p.ProfilePhoto = path
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update profile photo failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func applyContactFields(p *Profile, req UpdateEmployeeRequest) error {
	setString(&p.PhoneNumber, req.PhoneNumber)
	setString(&p.AlternateNumber, req.AlternateNumber)
	setString(&p.PersonalEmail, req.PersonalEmail)
	setString(&p.BloodGroup, req.BloodGroup)
	setString(&p.Gender, req.Gender)
	setString(&p.MaritalStatus, req.MaritalStatus)
	if req.DOB != nil {
		d, err := parseOptionalDate(*req.DOB)
		if err != nil {
			return err
		}
		p.DOB = d
	}
	return nil
}

func (s *service) applyHRFields(ctx context.Context, p *Profile, req UpdateEmployeeRequest) error {
	if req.Department != nil {
		dept := strings.ToUpper(strings.TrimSpace(*req.Department))
		if dept != "" && !ValidDepartment(dept) {
			return employeeerrors.ErrInvalidDepartment
		}
		p.Department = dept
	}
	if req.DateOfJoining != nil {
		d, err := parseOptionalDate(*req.DateOfJoining)
		if err != nil {
			return err
		}
		p.DateOfJoining = d
	}
	if req.TeamLeadID != nil {
		if *req.TeamLeadID == "" {
			p.TeamLeadID = nil
		} else {
			id, err := s.checkTeamLead(ctx, *req.TeamLeadID)
			if err != nil {
				return err
			}
			p.TeamLeadID = &id
		}
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			p.ManagerID = nil
		} else {
			id, err := s.checkManager(ctx, *req.ManagerID)
			if err != nil {
				return err
			}
			p.ManagerID = &id
		}
	}
	setString(&p.JobTitle, req.JobTitle)
	setString(&p.Designation, req.Designation)
	setString(&p.EmploymentType, req.EmploymentType)
	setString(&p.Location, req.Location)
	setString(&p.BankName, req.BankName)
	setString(&p.AccountNumber, req.AccountNumber)
	setString(&p.IFSCCode, req.IFSCCode)
	setString(&p.Branch, req.Branch)
	setString(&p.PAN, req.PAN)
	return nil
}

func (s *service) GetTeamLeadOptions(ctx context.Context) ([]OptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TeamLeadOptionsKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya form HR yang dibuka bersamaan cuma query sekali
	v, err, _ := s.sf.Do(TeamLeadOptionsKey, func() (interface{}, error) {
		leads, err := s.repo.ListActiveTeamLeads(ctx, "")
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, 0, len(leads))
		for _, p := range leads {
			resp = append(resp, OptionResponse{
				UserID:     p.UserID.String(),
				EmpID:      p.EmpID,
				FullName:   p.FullName(),
				Department: p.Department,
			})
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TeamLeadOptionsKey, jsonData, optionsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get team lead options failed", zap.Error(err))
		return nil, err
	}

	return v.([]OptionResponse), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TeamLeadOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", TeamLeadOptionsKey),
		)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &d, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func mapToResponse(p Profile) EmployeeResponse {
	return EmployeeResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		EmpID:           p.EmpID,
		Username:        p.Username,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		FullName:        p.FullName(),
		WorkEmail:       p.WorkEmail,
		PersonalEmail:   p.PersonalEmail,
		PhoneNumber:     p.PhoneNumber,
		AlternateNumber: p.AlternateNumber,
		DOB:             formatDate(p.DOB),
		BloodGroup:      p.BloodGroup,
		Gender:          p.Gender,
		MaritalStatus:   p.MaritalStatus,
		ProfilePhoto:    p.ProfilePhoto,
		JobTitle:        p.JobTitle,
		Department:      p.Department,
		Designation:     p.Designation,
		DateOfJoining:   formatDate(p.DateOfJoining),
		EmploymentType:  p.EmploymentType,
		Location:        p.Location,
		TeamLeadID:      uuidString(p.TeamLeadID),
		ManagerID:       uuidString(p.ManagerID),
		BankName:        p.BankName,
		AccountNumber:   p.AccountNumber,
		IFSCCode:        p.IFSCCode,
		Branch:          p.Branch,
		PAN:             p.PAN,
		Role:            string(p.Role),
		IsActive:        p.IsActive,
	}
}

func mapToListResponse(items []Profile) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, p := range items {
		out = append(out, mapToResponse(p))
	}
	return out
}
