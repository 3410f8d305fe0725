package endpoints

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Query parameter helpers. An absent or unparsable value is a wildcard, so
// a bad filter input never fails the request.

func queryBoolPtr(ctx *gin.Context, name string) *bool {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

func queryIntPtr(ctx *gin.Context, name string) *int {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func queryInt(ctx *gin.Context, name string) int {
	n, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return n
}

func queryFlag(ctx *gin.Context, name string) bool {
	b, err := strconv.ParseBool(ctx.Query(name))
	return err == nil && b
}
