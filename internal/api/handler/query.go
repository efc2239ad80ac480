package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vcplatform/marketplace/internal/core/ports"
)

// queryList collects a multi-valued query parameter. It accepts repeated keys
// (?industry=a&industry=b), the bracket form (?industry[]=a) and
// comma-separated values (?industry=a,b).
func queryList(c echo.Context, key string) []string {
	params := c.QueryParams()
	raw := append(append([]string{}, params[key]...), params[key+"[]"]...)

	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// pageRequest reads page and limit. Missing, non-numeric or non-positive
// values are left at zero so the service applies its defaults.
func pageRequest(c echo.Context) ports.PageRequest {
	return ports.PageRequest{
		Page:  positiveInt(c.QueryParam("page")),
		Limit: positiveInt(c.QueryParam("limit")),
	}
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
