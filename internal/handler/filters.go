package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leskita/internal/domain"
)

// parseRowFilter reads the shared list-filter query params. Time bounds accept
// RFC 3339 timestamps or bare dates; "until" is exclusive.
func parseRowFilter(c *gin.Context) (domain.RowFilter, bool) {
	filter := domain.RowFilter{
		Status:    c.Query("status"),
		OrderDesc: c.DefaultQuery("order", "desc") == "desc",
	}
	filter.Offset, filter.Limit = pagination(c)

	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, 400, "INVALID_ID", "invalid student_id filter")
			return filter, false
		}
		filter.StudentID = &id
	}
	if raw := c.Query("from"); raw != "" {
		t, err := parseTimeParam(raw)
		if err != nil {
			RespondError(c, 400, "INVALID_TIME", "invalid from timestamp")
			return filter, false
		}
		filter.From = &t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := parseTimeParam(raw)
		if err != nil {
			RespondError(c, 400, "INVALID_TIME", "invalid until timestamp")
			return filter, false
		}
		filter.Until = &t
	}
	return filter, true
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
