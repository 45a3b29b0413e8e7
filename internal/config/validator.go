package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/validation"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

// ValidateSettings performs schema and cross-field validation on settings.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return auditerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validation.Struct(s); err != nil {
		return err
	}

	seen := make(map[model.CheckType]int, len(s.Checks))
	for i, name := range s.Checks {
		check, err := model.ParseCheckType(name)
		if err != nil {
			return auditerrors.NewUnknownCheckError(fmt.Sprintf("checks[%d]", i), name, model.CheckTypeNames())
		}
		if first, ok := seen[check]; ok {
			return auditerrors.NewValidationError(fmt.Sprintf("checks[%d]", i), fmt.Sprintf("duplicate check %q (first listed at checks[%d])", name, first), nil)
		}
		seen[check] = i
	}

	return nil
}
