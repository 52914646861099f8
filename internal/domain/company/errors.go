package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameExists = errors.New("a company with this name already exists")
	ErrCompanyInUse      = errors.New("company still has payslips attached")
)
