package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-schedule-view/internal/animation"
	"github.com/i474232898/weather-schedule-view/internal/render"
	"github.com/i474232898/weather-schedule-view/internal/store"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
	"github.com/i474232898/weather-schedule-view/internal/weather"
)

var validate = validator.New()

// Deps bundles what the routes need.
type Deps struct {
	Schedule   *store.ScheduleStore
	Controller *viewstate.Controller
	Compositor *render.Compositor
	// SelectLimiter throttles tab selection; nil means unlimited.
	SelectLimiter *rate.Limiter
}

// NewSelectLimiter allows perSecond selections with the given burst. A
// non-positive rate disables limiting.
func NewSelectLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/schedule", func(c *fiber.Ctx) error {
		scale, err := parseScale(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{
			"scale":   scale,
			"entries": deps.Schedule.All(scale),
		})
	})

	v1.Get("/schedule/next-days", func(c *fiber.Ctx) error {
		scale, err := parseScale(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{
			"scale":   scale,
			"entries": deps.Schedule.FilterNextDays(scale),
		})
	})

	v1.Get("/schedule/:kind", func(c *fiber.Ctx) error {
		screen, scale, err := parseScreenParams(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry, err := deps.Schedule.FindByScreen(scale, screen)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no scheduled weather for requested screen")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to look up schedule")
		}
		return c.JSON(entry)
	})

	v1.Get("/schedule/:kind/hourly", func(c *fiber.Ctx) error {
		screen, scale, err := parseScreenParams(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		parts, err := deps.Schedule.Hourly(scale, screen)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no scheduled weather for requested screen")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to look up schedule")
		}
		return c.JSON(fiber.Map{
			"screen": screen,
			"hours":  parts,
		})
	})

	v1.Get("/tabs", func(c *fiber.Ctx) error {
		tabs := deps.Controller.Tabs()
		out := make([]tabResponse, len(tabs))
		for i, tab := range tabs {
			out[i] = tabResponse{Screen: tab, Position: tab.Position(), Title: tab.Title()}
		}
		return c.JSON(out)
	})

	v1.Get("/view", func(c *fiber.Ctx) error {
		return c.JSON(deps.Controller.State())
	})

	v1.Post("/view/select", func(c *fiber.Ctx) error {
		if deps.SelectLimiter != nil && !deps.SelectLimiter.Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many tab selections")
		}

		var req selectRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		screen, err := req.toScreen()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := viewstate.Validate(screen); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		if screen.Kind == weather.ScreenNextDays {
			if _, err := deps.Schedule.FindByScreen(weather.ScaleSmall, screen); errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no scheduled weather for requested day")
			}
		}

		deps.Controller.SelectScreen(screen)
		return c.JSON(deps.Controller.State())
	})

	v1.Get("/scene", func(c *fiber.Ctx) error {
		return c.JSON(deps.Compositor.Scene())
	})

	v1.Get("/animation/:descriptor", func(c *fiber.Ctx) error {
		var req sampleQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		kind, err := weather.ParseDescriptorKind(req.Descriptor)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		scale, err := weather.ParseScalePreset(req.Scale)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		elapsed := time.Duration(req.ElapsedMs) * time.Millisecond
		a := animation.NewAnimator(kind.String(), weather.NewDescriptor(kind, scale.Config()), 0)
		return c.JSON(a.Frame(elapsed))
	})
}

type tabResponse struct {
	Screen   weather.Screen `json:"screen"`
	Position int            `json:"position"`
	Title    string         `json:"title"`
}

// selectRequest is the body of a tab selection.
type selectRequest struct {
	Kind string `json:"kind" validate:"required"`
	Day  string `json:"day" validate:"required_if=Kind next_days"`
	Hour string `json:"hour"`
}

func (r selectRequest) toScreen() (weather.Screen, error) {
	kind, err := weather.ParseScreenKind(r.Kind)
	if err != nil {
		return weather.Screen{}, err
	}
	switch kind {
	case weather.ScreenToday:
		return weather.Today(), nil
	case weather.ScreenTomorrow:
		return weather.Tomorrow(), nil
	case weather.ScreenNextDays:
		if r.Day == "" {
			return weather.Screen{}, errors.New("day is required for next_days")
		}
		return weather.NextDays(r.Day), nil
	default:
		return weather.Hourly(r.Hour), nil
	}
}

// sampleQuery holds parameters for the animation sampling endpoint.
// ElapsedMs is capped at the longest time.Duration expressible in ms.
type sampleQuery struct {
	Descriptor string `validate:"required"`
	ElapsedMs  int64  `validate:"gte=0,lte=9223372036854"`
	Scale      string `validate:"omitempty,oneof=large small"`
}

func (q *sampleQuery) bind(c *fiber.Ctx) error {
	q.Descriptor = c.Params("descriptor")
	q.Scale = c.Query("scale")

	if s := c.Query("elapsed"); s != "" {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.New("elapsed must be an integer number of milliseconds")
		}
		q.ElapsedMs = ms
	}
	return nil
}

func parseScale(c *fiber.Ctx) (weather.ScalePreset, error) {
	return weather.ParseScalePreset(c.Query("scale"))
}

// parseScreenParams reads the :kind path parameter plus day/hour/scale queries.
func parseScreenParams(c *fiber.Ctx) (weather.Screen, weather.ScalePreset, error) {
	scale, err := parseScale(c)
	if err != nil {
		return weather.Screen{}, scale, err
	}

	kind, err := weather.ParseScreenKind(c.Params("kind"))
	if err != nil {
		return weather.Screen{}, scale, err
	}

	switch kind {
	case weather.ScreenNextDays:
		day := c.Query("day")
		if day == "" {
			return weather.Screen{}, scale, errors.New("day query parameter is required for next_days")
		}
		return weather.NextDays(day), scale, nil
	case weather.ScreenHourly:
		return weather.Hourly(c.Query("hour")), scale, nil
	case weather.ScreenTomorrow:
		return weather.Tomorrow(), scale, nil
	default:
		return weather.Today(), scale, nil
	}
}
