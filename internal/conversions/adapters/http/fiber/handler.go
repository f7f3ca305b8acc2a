package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/translator"
	"conversions-adapter/internal/conversions/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type TranslateEventUseCase interface {
	Execute(ctx context.Context, in usecase.TranslateEventInput) (*domain.RequestDescriptor, error)
}

type DeliverEventUseCase interface {
	Execute(ctx context.Context, in usecase.TranslateEventInput) (*domain.DeliveryResult, error)
}

type EventHandler struct {
	translateUC TranslateEventUseCase
	deliverUC   DeliverEventUseCase
}

func NewEventHandler(translateUC TranslateEventUseCase, deliverUC DeliverEventUseCase) *EventHandler {
	return &EventHandler{translateUC: translateUC, deliverUC: deliverUC}
}

// Translate godoc
// @Summary Translate an event into a Conversions API request
// @Description Builds the provider request for a page, track or user event without sending it
// @Tags Conversions
// @Accept json
// @Produce json
// @Param kind path string true "Event kind: page | track | user"
// @Param request body TranslateRequest true "Event and settings"
// @Success 200 {object} RequestDescriptorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Event rejected"
// @Failure 500 {object} ErrorResponse
// @Router /v1/translate/{kind} [post]
func (h *EventHandler) Translate(c *fiber.Ctx) error {
	in, bad := parseInput(c)
	if bad != nil {
		return c.Status(http.StatusBadRequest).JSON(bad)
	}

	req, err := h.translateUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toDescriptorResponse(req))
}

// Deliver godoc
// @Summary Translate an event and send it to the provider
// @Description Sends the translated request once; the provider's status and body are echoed back
// @Tags Conversions
// @Accept json
// @Produce json
// @Param kind path string true "Event kind: page | track | user"
// @Param request body TranslateRequest true "Event and settings"
// @Success 200 {object} DeliveryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Event rejected"
// @Failure 502 {object} ErrorResponse "Provider unreachable"
// @Router /v1/events/{kind} [post]
func (h *EventHandler) Deliver(c *fiber.Ctx) error {
	in, bad := parseInput(c)
	if bad != nil {
		return c.Status(http.StatusBadRequest).JSON(bad)
	}

	res, err := h.deliverUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeliveryResponse{
		StatusCode: res.StatusCode,
		Body:       res.Body,
	})
}

// forwardedClientHeaders are the visitor headers passed on to the provider
// when a translated request asks for client headers.
var forwardedClientHeaders = []string{
	fiber.HeaderUserAgent,
	fiber.HeaderAcceptLanguage,
	fiber.HeaderXForwardedFor,
}

func parseInput(c *fiber.Ctx) (usecase.TranslateEventInput, *ErrorResponse) {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return usecase.TranslateEventInput{}, &ErrorResponse{Error: "invalid_json", Message: err.Error()}
	}
	if req.Event == nil {
		return usecase.TranslateEventInput{}, &ErrorResponse{Error: "event_required", Message: "event is required"}
	}

	kind := domain.EventType(utils.CopyString(c.Params("kind")))
	if req.Event.Type != "" && req.Event.Type != kind {
		return usecase.TranslateEventInput{}, &ErrorResponse{
			Error:   "event_type_mismatch",
			Message: fmt.Sprintf("event_type %q does not match path kind %q", req.Event.Type, kind),
		}
	}

	return usecase.TranslateEventInput{
		Kind:          kind,
		Event:         req.Event,
		Settings:      req.Settings,
		ClientHeaders: clientHeaders(c),
	}, nil
}

func clientHeaders(c *fiber.Ctx) []domain.Header {
	var out []domain.Header
	for _, name := range forwardedClientHeaders {
		if v := c.Get(name); v != "" {
			out = append(out, domain.Header{Name: name, Value: utils.CopyString(v)})
		}
	}
	return out
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case translator.IsRejection(err):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   translator.Reason(err),
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownKind),
		errors.Is(err, usecase.ErrMissingEvent):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "delivery_failed",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
