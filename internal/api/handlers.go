package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/selene-app/selene/internal/cycle"
	"github.com/selene-app/selene/internal/models"
	"github.com/selene-app/selene/internal/store"
)

// Handler serves the read-only JSON surface over the cycle engine. It never
// renders anything itself and never mutates a snapshot; the only write-ish
// operation is forcing a reload.
type Handler struct {
	engine   *cycle.Engine
	loader   *store.Loader
	location *time.Location
}

func NewHandler(engine *cycle.Engine, loader *store.Loader, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{engine: engine, loader: loader, location: location}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Day resolves one date. A null cycle_info means cold start: no period data
// was ever recorded, which is a legitimate state, not an error.
func (handler *Handler) Day(c *fiber.Ctx) error {
	date, err := time.ParseInLocation(models.DateLayout, c.Params("date"), handler.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid date, expected YYYY-MM-DD",
		})
	}

	snapshot := handler.loader.Snapshot()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "observations not loaded",
		})
	}

	response := fiber.Map{
		"date":       date.Format(models.DateLayout),
		"cycle_info": handler.engine.Resolve(snapshot.Cycles, snapshot.Symptoms, date),
	}
	if record, ok := snapshot.Symptoms[date.Format(models.DateLayout)]; ok {
		response["record"] = record
	}
	return c.JSON(response)
}

func (handler *Handler) Calendar(c *fiber.Ctx) error {
	year, yearErr := c.ParamsInt("year")
	month, monthErr := c.ParamsInt("month")
	if yearErr != nil || monthErr != nil || month < 1 || month > 12 || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid year or month",
		})
	}

	snapshot := handler.loader.Snapshot()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "observations not loaded",
		})
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location)
	return c.JSON(fiber.Map{
		"month": monthStart.Format("2006-01"),
		"days":  BuildCalendarDayStates(handler.engine, snapshot, monthStart, handler.engine.Now()),
	})
}

func (handler *Handler) Stats(c *fiber.Ctx) error {
	snapshot := handler.loader.Snapshot()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "observations not loaded",
		})
	}

	response := fiber.Map{
		"cycle_count":          len(snapshot.Cycles),
		"average_cycle_length": handler.engine.AverageCycleLength(snapshot.Cycles),
		"range":                snapshot.Range,
		"today":                handler.engine.Resolve(snapshot.Cycles, snapshot.Symptoms, handler.engine.Now()),
	}
	if first := cycle.FirstRecordedPeriodStart(snapshot.Cycles); !first.IsZero() {
		response["first_recorded_period_start"] = first.Format(models.DateLayout)
	}
	if next := handler.engine.NextPredictedPeriodStart(snapshot.Cycles); !next.IsZero() {
		response["next_predicted_period_start"] = next.Format(models.DateLayout)
	}
	return c.JSON(response)
}

func (handler *Handler) Reload(c *fiber.Ctx) error {
	if err := handler.loader.Reload(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "reloaded"})
}
