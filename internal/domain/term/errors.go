package term

import "errors"

var (
	ErrTermNotFound    = errors.New("term not found")
	ErrTermKeyExists   = errors.New("a term with this key already exists")
	ErrDefaultReadOnly = errors.New("seeded default terms cannot be modified")
)
