package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alfredhq/alfred/internal/api/middleware"
	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/service"
)

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "id inválido: "+c.Param(name))
		return 0, false
	}
	return uint(id), true
}

// fail maps service errors onto HTTP statuses. Unknown errors are logged
// and hidden behind a generic message.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrListNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Error(c, http.StatusForbidden, "sem permissão para este recurso")
	case errors.Is(err, service.ErrChatBusy):
		response.Error(c, http.StatusConflict, "ainda estou processando a mensagem anterior")
	default:
		slog.Error("request failed", "path", c.FullPath(), "uid", currentUser(c), "err", err)
		response.Error(c, http.StatusInternalServerError, "erro interno, tente novamente")
	}
}

func badRequest(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "parâmetros inválidos: "+err.Error())
}

var dayLayouts = []string{"2006-01-02", time.RFC3339}

// parseDay accepts a plain date or an RFC 3339 timestamp. Plain dates are
// taken in the server's local zone.
func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dayLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// dateRange parses optional start_date/end_date query values; the end date
// is inclusive, so the returned end is the following midnight.
func dateRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = parseDay(start); err != nil {
			return from, to, err
		}
	}
	if end != "" {
		if to, err = parseDay(end); err != nil {
			return from, to, err
		}
		to = to.AddDate(0, 0, 1)
	}
	return from, to, nil
}

type RecurrenceRequest struct {
	Period   string `json:"period" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	Interval int    `json:"interval" binding:"omitempty,min=1"`
	Limit    *int   `json:"limit" binding:"omitempty,min=1"`
}

func (r *RecurrenceRequest) toModel() model.Recurrence {
	if r == nil || r.Period == "" {
		return model.Recurrence{}
	}
	interval := r.Interval
	if interval == 0 {
		interval = 1
	}
	return model.Recurrence{Period: model.RecurrencePeriod(r.Period), Interval: interval, Limit: r.Limit}
}

type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}
