package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

// storeError converts a repository error into the sentinel returned to
// callers. Anything that is not a missing record or a malformed id is logged
// and reported as common.ErrorInternal.
func storeError(ctx context.Context, log logging.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return common.ErrorNotFound
	case errors.Is(err, common.ErrorInvalidID):
		return common.ErrorBadRequest
	default:
		log.Error(ctx, msg, "error", err)
		return common.ErrorInternal
	}
}
