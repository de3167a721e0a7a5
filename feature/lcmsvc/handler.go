package lcmsvc

import (
	"strconv"

	"bookledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// nanSentinel is returned for any invalid input.
const nanSentinel = "NaN"

// Handler handles HTTP requests for the calculation endpoint.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers the calculation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/lcm", h.HandleLCM)
}

// HandleLCM computes the least common multiple of the x and y query
// parameters. Anything that does not parse as a non-negative integer
// answers "NaN".
func (h *Handler) HandleLCM(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.logger, c)

	x, errX := strconv.ParseInt(c.Query("x"), 10, 64)
	y, errY := strconv.ParseInt(c.Query("y"), 10, 64)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		l.Info("Rejecting invalid lcm input",
			zap.String("x", c.Query("x")),
			zap.String("y", c.Query("y")),
		)
		return c.SendString(nanSentinel)
	}

	return c.SendString(strconv.FormatInt(LCM(x, y), 10))
}

// Feature wires the handler into the application's feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the calculation feature.
func NewFeature(logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(logger)}
}

// Name returns the feature's identifier.
func (f *Feature) Name() string { return "lcm" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
