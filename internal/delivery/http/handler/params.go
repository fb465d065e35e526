package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/carrier-hotel-map/internal/pkg/errors"
)

// buildingIDParam - идентификаторы OSM содержат "/", клиенты передают их экранированными
func buildingIDParam(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "invalid building id",
		})
	}
	return id, nil
}

func sessionIDParam(c *fiber.Ctx) string {
	return c.Params("id")
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid request body",
		})
	}
	return nil
}
