package employee

import (
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/shared/pgerr"
	usererrors "go-hrm/internal/user/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case pgerr.IsUniqueViolation(err, "uq_users_username"):
		return usererrors.ErrUsernameTaken
	case pgerr.IsUniqueViolation(err, "uq_users_email"):
		return usererrors.ErrEmailTaken
	case pgerr.IsUniqueViolation(err, "uq_profiles_work_email"):
		return employeeerrors.ErrWorkEmailTaken
	case pgerr.IsUniqueViolation(err, "uq_profiles_emp_id"):
		return employeeerrors.ErrEmpIDConflict
	}
	return err
}
