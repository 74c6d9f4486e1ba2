package handlers

import "github.com/gofiber/fiber/v2"

// Docs serves the OpenAPI description of the JSON API. It sits outside
// the session gate so the surface is discoverable without logging in.
func Docs(c *fiber.Ctx) error {
	return c.JSON(apiSpec)
}

var apiSpec = fiber.Map{
	"openapi": "3.0.3",
	"info": fiber.Map{
		"title":       "Finanzas API",
		"description": "Personal finance tracking API with cookie sessions and role-based access.",
		"version":     "1.0.0",
	},
	"components": fiber.Map{
		"securitySchemes": fiber.Map{
			"cookieAuth": fiber.Map{"type": "apiKey", "in": "cookie", "name": "sid"},
		},
		"schemas": fiber.Map{
			"Transaction": fiber.Map{
				"type": "object",
				"properties": fiber.Map{
					"id":       fiber.Map{"type": "string"},
					"concepto": fiber.Map{"type": "string", "minLength": 3, "maxLength": 100},
					"monto":    fiber.Map{"type": "number", "description": "non-zero; sign encodes income vs expense"},
					"fecha":    fiber.Map{"type": "string", "format": "date"},
					"userId":   fiber.Map{"type": "string"},
					"user": fiber.Map{
						"type": "object",
						"properties": fiber.Map{
							"name":  fiber.Map{"type": "string"},
							"email": fiber.Map{"type": "string"},
						},
					},
				},
			},
			"User": fiber.Map{
				"type": "object",
				"properties": fiber.Map{
					"id":    fiber.Map{"type": "string"},
					"name":  fiber.Map{"type": "string"},
					"email": fiber.Map{"type": "string"},
					"role":  fiber.Map{"type": "string", "enum": []string{"admin", "user"}},
				},
			},
			"Error": fiber.Map{
				"type":       "object",
				"properties": fiber.Map{"message": fiber.Map{"type": "string"}},
			},
		},
	},
	"security": []fiber.Map{{"cookieAuth": []string{}}},
	"paths": fiber.Map{
		"/api/transactions": fiber.Map{
			"get": fiber.Map{
				"summary": "List all transactions, newest fecha first",
				"responses": fiber.Map{
					"200": fiber.Map{"description": "Array of transactions with owner name and email"},
					"401": fiber.Map{"description": "No valid session"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
			"post": fiber.Map{
				"summary": "Create a transaction (admin only)",
				"responses": fiber.Map{
					"201": fiber.Map{"description": "Created transaction with owner"},
					"400": fiber.Map{"description": "Validation failure"},
					"401": fiber.Map{"description": "No valid session"},
					"403": fiber.Map{"description": "Caller is not an admin"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
		},
		"/api/users": fiber.Map{
			"get": fiber.Map{
				"summary": "List users without password hashes (admin only)",
				"responses": fiber.Map{
					"200": fiber.Map{"description": "Array of user projections, name ascending"},
					"401": fiber.Map{"description": "No valid session"},
					"403": fiber.Map{"description": "Caller is not an admin"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
			"put": fiber.Map{
				"summary": "Update a user's name and role (admin only)",
				"responses": fiber.Map{
					"200": fiber.Map{"description": "Updated user projection"},
					"400": fiber.Map{"description": "Validation failure"},
					"401": fiber.Map{"description": "No valid session"},
					"403": fiber.Map{"description": "Caller is not an admin"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
		},
		"/api/profile": fiber.Map{
			"get": fiber.Map{
				"summary": "Current user's profile with transaction statistics",
				"responses": fiber.Map{
					"200": fiber.Map{"description": "Profile with transactionCount and totalAmount"},
					"401": fiber.Map{"description": "No valid session"},
					"404": fiber.Map{"description": "User no longer exists"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
			"put": fiber.Map{
				"summary": "Update the current user's name and email",
				"responses": fiber.Map{
					"200": fiber.Map{"description": "Updated profile"},
					"400": fiber.Map{"description": "Validation failure"},
					"401": fiber.Map{"description": "No valid session"},
					"500": fiber.Map{"description": "Store failure"},
				},
			},
		},
	},
}
