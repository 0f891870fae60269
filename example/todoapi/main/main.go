package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sicko7947/gotodo"
	"github.com/sicko7947/gotodo/store"
)

// Shared state used by all handlers
var service *gotodo.Service

// createRequest is the body for POST /api/v1/todos
type createRequest struct {
	Task string `json:"task"`
}

// initializeApp wires the store and the todo service. The backend is
// in-memory unless TODO_TABLE names a DynamoDB table.
func initializeApp() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	var todoStore gotodo.TodoStore
	if tableName := os.Getenv("TODO_TABLE"); tableName != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load AWS config")
		}
		todoStore = store.NewDynamoDBStore(dynamodb.NewFromConfig(cfg), tableName)
		log.Info().Str("table", tableName).Msg("Using DynamoDB todo store")
	} else {
		todoStore = store.NewMemoryStore()
		log.Info().Msg("Using in-memory todo store")
	}

	service = gotodo.NewService(todoStore, gotodo.WithLogger(log.Logger))

	log.Info().Msg("Todo service initialized successfully")
}

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App) {
	// Health check endpoint
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "todoapi",
			"version": "1.0.0",
		})
	})

	// Root endpoint
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "Todo API Server",
			"version":     "1.0.0",
			"description": "CRUD todo store example",
			"endpoints": fiber.Map{
				"health": "GET /health",
				"create": "POST /api/v1/todos",
				"list":   "GET /api/v1/todos?offset=0&limit=10",
				"get":    "GET /api/v1/todos/:id",
				"update": "PUT /api/v1/todos/:id",
				"delete": "DELETE /api/v1/todos/:id",
			},
		})
	})

	// API v1 routes
	v1 := app.Group("/api/v1")
	todos := v1.Group("/todos")

	todos.Post("/", handleCreate)
	todos.Get("/", handleList)
	todos.Get("/:id", handleGet)
	todos.Put("/:id", handleUpdate)
	todos.Delete("/:id", handleDelete)
}

// parseID parses the :id path parameter as an unsigned 32-bit integer
func parseID(c fiber.Ctx) (uint32, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

// parseQueryU32 parses an optional unsigned query parameter, defaulting to 0
func parseQueryU32(c fiber.Ctx, key string) (uint32, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// handleCreate inserts a new todo
func handleCreate(c fiber.Ctx) error {
	var req createRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	todo, err := service.Create(c.Context(), req.Task)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create todo")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create todo",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(todo)
}

// handleList returns one page of todos in insertion order
func handleList(c fiber.Ctx) error {
	offset, err := parseQueryU32(c, "offset")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offset",
		})
	}
	limit, err := parseQueryU32(c, "limit")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid limit",
		})
	}

	todos, err := service.List(c.Context(), offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list todos")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list todos",
		})
	}

	return c.JSON(todos)
}

// handleGet returns a single todo by id
func handleGet(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo id",
		})
	}

	todo, err := service.GetByID(c.Context(), id)
	if err != nil {
		if gotodo.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Todo not found",
			})
		}
		log.Error().Err(err).Uint32("id", id).Msg("Failed to get todo")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get todo",
		})
	}

	return c.JSON(todo)
}

// handleUpdate replaces a todo's task and done state
func handleUpdate(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo id",
		})
	}

	var partial gotodo.PartialTodo
	if err := c.Bind().JSON(&partial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	todo, err := service.Update(c.Context(), id, partial)
	if err != nil {
		if gotodo.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Todo not found",
			})
		}
		log.Error().Err(err).Uint32("id", id).Msg("Failed to update todo")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update todo",
		})
	}

	return c.JSON(todo)
}

// handleDelete removes a todo; deleting an absent id succeeds
func handleDelete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo id",
		})
	}

	if err := service.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint32("id", id).Msg("Failed to delete todo")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete todo",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func main() {
	// Initialize shared components
	initializeApp()

	// Create Fiber app with routes
	app := fiber.New()

	// Register routes
	registerRoutes(app)

	// Start server in a goroutine
	go func() {
		addr := ":3000"
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
		log.Info().Str("address", addr).Msg("Starting HTTP server")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
