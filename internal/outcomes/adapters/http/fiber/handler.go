package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"conversions-adapter/internal/outcomes/core/domain"
	"conversions-adapter/internal/outcomes/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type GetOutcomeStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error)
}

type StatsHandler struct {
	uc GetOutcomeStatsUseCase
}

func NewStatsHandler(uc GetOutcomeStatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary Query translation outcome statistics
// @Description Counts translated and rejected events, optionally grouped by reason or time bucket
// @Tags Stats
// @Produce json
// @Param event_name query string true "Provider event name, e.g. PAGE_VIEW"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param destination_id query string false "Destination (pixel) id"
// @Param group_by query string false "Group by: reason | time"
// @Param interval query string false "Interval: hour | day"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	eventName := utils.CopyString(c.Query("event_name"))
	if eventName == "" {
		return badQuery(c, "event_name is required")
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		return badQuery(c, "from and to are required")
	}

	from, err := strconv.ParseInt(fromStr, 10, 64)
	if err != nil {
		return badQuery(c, "invalid 'from' parameter")
	}
	to, err := strconv.ParseInt(toStr, 10, 64)
	if err != nil {
		return badQuery(c, "invalid 'to' parameter")
	}

	in := usecase.GetOutcomeStatsInput{
		EventName: eventName,
		From:      from,
		To:        to,
		GroupBy:   utils.CopyString(c.Query("group_by")),
		Interval:  utils.CopyString(c.Query("interval")),
	}
	if dest := utils.CopyString(c.Query("destination_id")); dest != "" {
		in.DestinationID = &dest
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatsQuery),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrInvalidGroupBy),
			errors.Is(err, usecase.ErrInvalidInterval):
			return badQuery(c, err.Error())
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toStatsResponse(res))
}

func badQuery(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}
