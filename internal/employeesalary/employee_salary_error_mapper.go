package employeesalary

import (
	employeesalaryerrors "go-hrm/internal/employeesalary/errors"
	"go-hrm/internal/shared/pgerr"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case pgerr.IsUniqueViolation(err, "uq_employee_salary_effective"):
		return employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists
	case pgerr.IsUniqueViolation(err, "uq_salary_structures_name"):
		return employeesalaryerrors.ErrStructureNameTaken
	}
	return err
}
