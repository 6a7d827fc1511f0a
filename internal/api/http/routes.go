package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/skysense/airspace-agent/internal/agent"
	"github.com/skysense/airspace-agent/internal/flight"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The region
// snapshot route must precede the callsign route so "region" is not eaten
// by the :callsign parameter.
func RegisterRoutes(app *fiber.App, flights *flight.Service, router *agent.Router) {
	app.Get("/flights/region/:region", func(c *fiber.Ctx) error {
		return c.JSON(flights.Snapshot(c.Params("region")))
	})

	app.Get("/flights/:callsign", func(c *fiber.Ctx) error {
		region := c.Query("region", agent.DefaultRegion)

		record, err := flights.Lookup(region, c.Params("callsign"))
		if err != nil {
			if errors.Is(err, flight.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Not found",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to look up flight")
		}
		return c.JSON(record)
	})

	app.Get("/alerts/active", func(c *fiber.Ctx) error {
		return c.JSON(flights.Alerts())
	})

	app.Post("/traveler/query", func(c *fiber.Ctx) error {
		var req travelerQueryBody
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Missing callsign/question is handled inside the router with a
		// clarification message, not a 400: the conversation must go on.
		result := router.Route(c.UserContext(), agent.QueryRequest{
			Callsign: req.Callsign,
			Question: req.Question,
			Region:   req.Region,
		})

		return c.JSON(travelerQueryResponse{
			TravelerResponse: result.TravelerResponse,
			NeedOps:          result.NeedOps,
			OpsSummary:       result.OpsSummary,
		})
	})

	app.Post("/ops/analyze", func(c *fiber.Ctx) error {
		var req opsAnalyzeBody
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot := flights.Snapshot(req.Region)
		summary := router.OpsPass(c.UserContext(), req.Region)

		return c.JSON(fiber.Map{
			"region":  req.Region,
			"summary": summary,
			"flights": snapshot.States,
		})
	})
}

// travelerQueryBody is the request body for POST /traveler/query.
type travelerQueryBody struct {
	Callsign string `json:"callsign"`
	Question string `json:"question"`
	Region   string `json:"region"`
}

// travelerQueryResponse mirrors the front-end contract; ops_summary is null
// unless the region-wide pass ran.
type travelerQueryResponse struct {
	TravelerResponse string  `json:"traveler_response"`
	NeedOps          bool    `json:"need_ops"`
	OpsSummary       *string `json:"ops_summary"`
}

// opsAnalyzeBody is the request body for POST /ops/analyze.
type opsAnalyzeBody struct {
	Region string `json:"region" validate:"required"`
}
