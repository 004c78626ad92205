package usecase

import "errors"

var (
	ErrEmptySkillSet     = errors.New("empty skill set")
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	ErrInternal          = errors.New("internal error")
)
