// handlers/inventory_routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"futureproof-backend/services"
)

func SetupInventoryRoutes(app *fiber.App, admin fiber.Router, jwtAuth fiber.Handler, inventoryService *services.InventoryService) {
	inventory := app.Group("/inventory", jwtAuth)

	inventory.Get("/owned", inventoryService.ListOwnedHandler)
	inventory.Get("/equipped", inventoryService.ListEquippedHandler)
	inventory.Post("/equip", inventoryService.EquipHandler)
	inventory.Delete("/equip/:slot", inventoryService.UnequipHandler)
	inventory.Post("/purchase", inventoryService.PurchaseHandler)
	inventory.Get("/purchases", inventoryService.ListPurchasesHandler)

	admin.Post("/inventory/grant", inventoryService.AddOwnedHandler)
}
