package department

import "go-hrm/internal/employee"

var labels = map[string]string{
	employee.DepartmentPython:           "Python",
	employee.DepartmentQA:               "QA",
	employee.DepartmentJava:             "Java",
	employee.DepartmentUIUX:             "UI/UX",
	employee.DepartmentReact:            "React",
	employee.DepartmentCyberSecurity:    "Cyber Security",
	employee.DepartmentDigitalMarketing: "Digital Marketing",
	employee.DepartmentHR:               "HR",
	employee.DepartmentBDM:              "BDM",
	employee.DepartmentNetworking:       "Networking",
	employee.DepartmentCloud:            "Cloud",
}

func Label(code string) string {
	if l, ok := labels[code]; ok {
		return l
	}
	return code
}

// headcount is one row of the active-profile aggregate.
type headcount struct {
	Department string
	Total      int64
}
