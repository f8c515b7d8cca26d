package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
)

// translateError maps gorm's sentinel to the repository-level not-found
// error so services never import gorm to classify failures.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
