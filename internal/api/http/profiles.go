package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/moveguider/moveguider/internal/profile"
	"github.com/moveguider/moveguider/internal/wellness"
)

// registerProfileRoutes wires the profile CRUD handlers.
func registerProfileRoutes(router fiber.Router, store *profile.FileStore) {
	router.Get("/profiles", func(c *fiber.Ctx) error {
		names, err := store.Names()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list profiles")
		}
		return c.JSON(fiber.Map{"profiles": names})
	})

	router.Get("/profiles/:name", func(c *fiber.Ctx) error {
		prof, err := store.Get(c.Params("name"))
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "unknown profile")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load profile")
		}
		return c.JSON(prof)
	})

	router.Put("/profiles/:name", func(c *fiber.Ctx) error {
		var body wellness.UserProfile
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid profile body")
		}
		body.Name = c.Params("name")
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Clamp now so stored profiles come back clean; warnings travel to
		// the caller once rather than on every dashboard build.
		clean, warnings := wellness.SanitizeProfile(body)
		saved, err := store.Put(body.Name, clean)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save profile")
		}
		return c.JSON(fiber.Map{
			"profile":  saved,
			"warnings": warnings,
		})
	})

	router.Delete("/profiles/:name", func(c *fiber.Ctx) error {
		err := store.Delete(c.Params("name"))
		if errors.Is(err, profile.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "unknown profile")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete profile")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
