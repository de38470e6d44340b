package ginutil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// QueryPage reads the "page" query parameter, falling back to 1 when it is
// missing, malformed or below 1
func QueryPage(c *gin.Context) int {
	page := QueryInt(c, "page", 1)
	if page < 1 {
		return 1
	}
	return page
}

// QueryOptional returns a pointer to the query value, or nil when the key is absent.
// A present-but-empty value is returned as a pointer to "".
func QueryOptional(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &value
}

// ParamInt extracts an integer from path parameters
// Returns the parsed int and error if parsing fails
func ParamInt(c *gin.Context, key string) (int, error) {
	valueStr := c.Param(key)
	return strconv.Atoi(valueStr)
}
