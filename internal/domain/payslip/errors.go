package payslip

import "errors"

var (
	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrLineItemNotFound = errors.New("payslip line item not found")
	ErrCompanyNotFound  = errors.New("company not found for payslip")
	ErrInvalidItemKind  = errors.New("invalid line item kind")
)
