package adaptor

import (
	"errors"
	"net/http"

	"github.com/Eughami/cinema-dj-be/internal/usecase"
	"github.com/Eughami/cinema-dj-be/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Seat conflicts are 409, distinct from 500, so clients can re-fetch
// availability and retry instead of treating the failure as fatal.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var svcErr *usecase.Error
	if !errors.As(err, &svcErr) {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error", nil)
		return
	}

	switch svcErr.Code {
	case usecase.CodeValidation:
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.Any("fields", svcErr.Fields),
		)
		utils.ResponseBadRequest(w, svcErr.Message, svcErr.Fields)

	case usecase.CodeNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, svcErr.Message)

	case usecase.CodeSeatConflict:
		log.Info(operation+" failed - seat conflict",
			zap.Strings("seats", svcErr.Seats),
		)
		utils.ResponseConflict(w, svcErr.Message, map[string]any{
			"code":  svcErr.Code,
			"seats": svcErr.Seats,
		})

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, svcErr.Message, map[string]any{
			"code": usecase.CodeStoreUnavailable,
		})
	}
}
