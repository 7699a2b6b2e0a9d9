package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseUintParam reads a positive integer route parameter.
func ParseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
