package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every page and form route. Mutations are POST routes
// because HTML forms only submit GET/POST; the API client translates them to
// the backend's real verbs.
func RegisterRoutes(app *fiber.App, products *ProductHandler, orders *OrderHandler) {
	app.Get("/", products.Index)

	app.Post("/products", products.Create)
	app.Post("/products/import", products.Import)
	app.Post("/products/:id", products.Update)
	app.Post("/products/:id/delete", products.Delete)

	app.Post("/orders", orders.Place)
	app.Get("/orders", orders.List)
	app.Get("/orders/:id", orders.Detail)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
