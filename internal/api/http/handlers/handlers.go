package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/pkg/util"
)

// parseID validates the :id route parameter as an integer before any
// store access. Decimals and junk are rejected outright.
func parseID(c *fiber.Ctx, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("invalid "+resource+" id", nil)
	}
	return id, nil
}
