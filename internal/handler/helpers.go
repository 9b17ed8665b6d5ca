package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseLimit clamps missing, malformed, and negative limits to the kind's
// default. A zero limit is honored and yields an empty list.
func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}

// formFields flattens the request form into the partial-update field map.
func formFields(c *gin.Context) (map[string]string, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(c.Request.PostForm))
	for name, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}
	return fields, nil
}
