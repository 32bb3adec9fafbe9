package http

import (
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindInvalid:            http.StatusBadRequest,
	errs.KindInvalidWeight:      http.StatusBadRequest,
	errs.KindUnknownItemType:    http.StatusUnprocessableEntity,
	errs.KindInvalidStage:       http.StatusConflict,
	errs.KindInvalidTransition:  http.StatusConflict,
	errs.KindDuplicateJob:       http.StatusConflict,
	errs.KindConflict:           http.StatusConflict,
	errs.KindForbidden:          http.StatusForbidden,
	errs.KindOutsideShiftWindow: http.StatusForbidden,
}

// StatusOf maps an error kind to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	if status, ok := kindStatus[errs.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	status := StatusOf(err)
	kind := errs.KindOf(err).String()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return writeError(c, status, kind, "Internal server error")
	}
	return writeError(c, status, kind, err.Error())
}

func writeError(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, Error{Code: status, Kind: kind, Message: message})
}

// reject answers a command or query that could not be constructed. Those
// failures come from request input, so unclassified ones are 400 rather than 500.
func (s *Server) reject(c echo.Context, err error) error {
	if errs.KindOf(err) == errs.KindInternal {
		return writeError(c, http.StatusBadRequest, errs.KindInvalid.String(), err.Error())
	}
	return s.fail(c, err)
}
