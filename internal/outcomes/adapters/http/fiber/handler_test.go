package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	httpadapter "conversions-adapter/internal/outcomes/adapters/http/fiber"
	"conversions-adapter/internal/outcomes/core/domain"
	"conversions-adapter/internal/outcomes/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeGetOutcomeStatsUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error)
	lastInput usecase.GetOutcomeStatsInput
	called    bool
}

func (f *fakeGetOutcomeStatsUseCase) Execute(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.OutcomeStats{}, nil
}

func setupApp(t *testing.T, uc httpadapter.GetOutcomeStatsUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewStatsHandler(uc)
	app.Get("/stats", h.GetStats)
	return app
}

func baseParams() url.Values {
	params := url.Values{}
	params.Set("event_name", "PAGE_VIEW")
	params.Set("from", "100")
	params.Set("to", "200")
	return params
}

func get(t *testing.T, app *fiber.App, params url.Values) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/stats?"+params.Encode(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetStats_Success(t *testing.T) {
	uc := &fakeGetOutcomeStatsUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
			if in.EventName != "PAGE_VIEW" {
				t.Fatalf("expected event_name=PAGE_VIEW, got %s", in.EventName)
			}
			if in.From != 100 || in.To != 200 {
				t.Fatalf("expected from=100,to=200 got from=%d,to=%d", in.From, in.To)
			}
			if in.DestinationID != nil {
				t.Fatalf("expected no destination filter")
			}
			return &domain.OutcomeStats{
				EventName:  in.EventName,
				From:       in.From,
				To:         in.To,
				Total:      10,
				Translated: 8,
				Rejected:   2,
			}, nil
		},
	}

	app := setupApp(t, uc)

	resp, body := get(t, app, baseParams())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var got httpadapter.StatsResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.Total != 10 || got.Translated != 8 || got.Rejected != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}
}

func TestGetStats_Success_GroupByReason(t *testing.T) {
	uc := &fakeGetOutcomeStatsUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
			if in.GroupBy != "reason" {
				t.Fatalf("expected group_by=reason, got %s", in.GroupBy)
			}
			if in.DestinationID == nil || *in.DestinationID != "pixel-1" {
				t.Fatalf("expected destination_id=pixel-1, got %v", in.DestinationID)
			}
			return &domain.OutcomeStats{
				EventName:  in.EventName,
				Total:      5,
				Translated: 3,
				Rejected:   2,
				GroupBy:    "reason",
				Groups: []domain.StatsGroup{
					{Key: "insufficient_identity", Total: 2, Rejected: 2},
					{Key: "translated", Total: 3, Translated: 3},
				},
			}, nil
		},
	}

	app := setupApp(t, uc)

	params := baseParams()
	params.Set("group_by", "reason")
	params.Set("destination_id", "pixel-1")

	resp, body := get(t, app, params)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var got httpadapter.StatsResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.GroupBy != "reason" || len(got.Groups) != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Groups[0].Key != "insufficient_identity" || got.Groups[0].Rejected != 2 {
		t.Fatalf("unexpected first group: %+v", got.Groups[0])
	}
}

// ------------------------------------------------------------
// INVALID QUERY PARAMS
// ------------------------------------------------------------

func TestGetStats_InvalidQueryParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(url.Values)
	}{
		{"missing_event_name", func(p url.Values) { p.Del("event_name") }},
		{"missing_to", func(p url.Values) { p.Del("to") }},
		{"bad_from", func(p url.Values) { p.Set("from", "abc") }},
		{"bad_to", func(p url.Values) { p.Set("to", "1.5") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeGetOutcomeStatsUseCase{}
			app := setupApp(t, uc)

			params := baseParams()
			tt.mutate(params)

			resp, _ := get(t, app, params)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}
			if uc.called {
				t.Fatalf("usecase should not be called on invalid query params")
			}
		})
	}
}

// ------------------------------------------------------------
// USECASE ERRORS
// ------------------------------------------------------------

func TestGetStats_UsecaseValidationErrors(t *testing.T) {
	for _, ucErr := range []error{
		usecase.ErrInvalidStatsQuery,
		usecase.ErrInvalidTimeRange,
		usecase.ErrInvalidGroupBy,
		usecase.ErrInvalidInterval,
	} {
		t.Run(ucErr.Error(), func(t *testing.T) {
			uc := &fakeGetOutcomeStatsUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
					return nil, ucErr
				},
			}

			app := setupApp(t, uc)

			resp, body := get(t, app, baseParams())
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}

			var got httpadapter.ErrorResponse
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("invalid json response: %v", err)
			}
			if got.Error != "invalid_query" || got.Message != ucErr.Error() {
				t.Fatalf("unexpected error response: %+v", got)
			}
		})
	}
}

func TestGetStats_InternalError(t *testing.T) {
	uc := &fakeGetOutcomeStatsUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
			return nil, context.DeadlineExceeded
		},
	}

	app := setupApp(t, uc)

	resp, _ := get(t, app, baseParams())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
