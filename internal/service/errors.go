package service

import "errors"

var (
	ErrWalletExists         = errors.New("wallet already exists")
	ErrCategoryExists       = errors.New("category already exists")
	ErrNotExpenseCategory   = errors.New("budgets can only be set on expense categories")
	ErrCategoryKindMismatch = errors.New("category kind does not match transaction kind")
	ErrAmbiguousTransaction = errors.New("transaction id prefix matches more than one transaction")
	ErrUserNotConfigured    = errors.New("user.id is not configured")
	ErrRemoteNotConfigured  = errors.New("remote.base_url is not configured")
)
