package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/session"
)

// Response is the envelope every endpoint returns. Degraded marks
// answers produced by a fallback path instead of the primary one.
type Response struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Data     any    `json:"data,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "ok", Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data})
}

// respondDegraded returns 200 with the fallback payload and the marker
// set, per the engine's degrade-over-halt rule.
func respondDegraded(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "ok", Data: data, Degraded: true})
}

func respondCreatedDegraded(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data, Degraded: true})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}

// writeError maps the engine's error taxonomy onto status codes:
// invalid setup 400, operations on a finished session 409, unknown
// session 404, out-of-range references 422. Anything else is a server
// fault.
func (s *Server) writeError(c *gin.Context, err error) {
	var cfgErr *session.ConfigurationError
	var rangeErr *session.OutOfRangeError

	switch {
	case errors.As(err, &cfgErr):
		if strings.HasPrefix(cfgErr.Reason, "session is ") {
			fail(c, http.StatusConflict, cfgErr.Error())
			return
		}
		fail(c, http.StatusBadRequest, cfgErr.Error())
	case errors.As(err, &rangeErr):
		if rangeErr.Field == "sessionId" {
			fail(c, http.StatusNotFound, rangeErr.Error())
			return
		}
		fail(c, http.StatusUnprocessableEntity, rangeErr.Error())
	default:
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "internal error")
	}
}

// taxonomy reports whether err is one of the engine's documented error
// types, as opposed to an infrastructure fault that should degrade.
func taxonomy(err error) bool {
	var cfgErr *session.ConfigurationError
	var rangeErr *session.OutOfRangeError
	return errors.As(err, &cfgErr) || errors.As(err, &rangeErr)
}
