package rbac

import (
	"sort"
	"sync"

	"go-hrm/internal/identity"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
	PermissionsFor(role string) ([]PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for group, roles := range groupMembers {
		for _, role := range roles {
			if _, err := s.enforcer.AddGroupingPolicy(string(role), group); err != nil {
				return err
			}
		}
	}
	for _, p := range permissionTable {
		if _, err := s.enforcer.AddPolicy(p.Group, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("permissions", len(permissionTable)))
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	r, err := identity.ParseRole(role)
	if err != nil {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(string(r), resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", string(r)),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(r)),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role string) ([]PermissionResponse, error) {
	r, err := identity.ParseRole(role)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	perms, err := s.enforcer.GetImplicitPermissionsForUser(string(r))
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	out := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, PermissionResponse{Resource: p[1], Action: p[2]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource == out[j].Resource {
			return out[i].Action < out[j].Action
		}
		return out[i].Resource < out[j].Resource
	})
	return out, nil
}
