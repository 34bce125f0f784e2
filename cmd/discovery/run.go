package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"activity_discovery/internal/domain"
	"activity_discovery/internal/scheduler"
	"activity_discovery/internal/service"
)

var errUnknownOp = errors.New("unknown op")

func newRunCmd(configPath *string) *cobra.Command {
	var (
		userID   int64
		lat, lon float64
		radius   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the discovery engine from newline-delimited JSON on stdin",
		Long: `Reads one JSON command per line from stdin, for example:

  {"op":"release","dx":0,"dy":-150}
  {"op":"location","lat":51.5,"lon":-0.12}
  {"op":"radius","km":100}
  {"op":"refresh"}
  {"op":"reset"} then {"op":"confirm"} or {"op":"cancel"}
  {"op":"login","user":7} / {"op":"logout"}

The engine view is logged after every event.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger = logger.With("session_id", uuid.NewString())

			ctx := cmd.Context()
			b, err := buildBackend(ctx, cfg, logger)
			if err != nil {
				logger.Error("failed to build backend", "error", err)
				return err
			}
			defer b.Close()

			dispatcher := service.NewDecisionDispatcher(b.sink, cfg.API.Timeout, logger)
			go func() {
				if err := dispatcher.Run(context.WithoutCancel(ctx)); err != nil {
					logger.Error("dispatcher stopped", "error", err)
				}
			}()

			engine := service.NewEngine(service.Deps{
				Feed:      b.feed,
				Resetter:  b.resetter,
				Decisions: dispatcher,
				Radius:    b.radius,
				Navigator: logNavigator{logger: logger},
			}, cfg.Discovery, logger)
			defer engine.Close()

			sched := scheduler.NewScheduler(cfg.Discovery.RefreshInterval, logger)
			go func() { _ = sched.Start(ctx) }()

			h := &host{engine: engine, ticks: sched.C(), logger: logger}

			engine.Login(ctx, domain.UserID(userID))
			if radius > 0 {
				if err := engine.SetRadius(ctx, radius); err != nil {
					return fmt.Errorf("set radius: %w", err)
				}
			}
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				engine.UpdateLocation(domain.Location{Latitude: lat, Longitude: lon})
			}
			h.logView("start")

			runErr := h.run(ctx, readLines(cmd.InOrStdin(), logger))

			dispatcher.Close()
			<-dispatcher.Done()
			stats := dispatcher.Stats()
			logger.Info("session finished",
				"submitted", stats.Submitted,
				"failed", stats.Failed,
				"dropped", stats.Dropped,
			)

			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	cmd.Flags().Float64Var(&lat, "lat", 0, "initial latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "initial longitude")
	cmd.Flags().IntVar(&radius, "radius", 0, "search radius in km, overriding the stored one")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// op is one line of input.
type op struct {
	Op   string   `json:"op"`
	DX   float64  `json:"dx"`
	DY   float64  `json:"dy"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
	KM   int      `json:"km"`
	User int64    `json:"user"`
}

// host serializes every engine call onto the goroutine running run.
type host struct {
	engine *service.Engine
	ticks  <-chan time.Time
	logger *slog.Logger
}

func (h *host) run(ctx context.Context, lines <-chan []byte) error {
	for {
		if lines == nil && !h.engine.Fetching() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			var o op
			if err := json.Unmarshal(line, &o); err != nil {
				h.logger.Warn("invalid input", "line", string(line), "error", err)
				continue
			}
			if err := h.handle(ctx, o); err != nil {
				h.logger.Warn("command failed", "op", o.Op, "error", err)
				continue
			}
			h.logView(o.Op)

		case res := <-h.engine.Results():
			delta := h.engine.ApplyResult(res)
			if delta.Changed() {
				h.logView("fetch")
			}

		case <-h.ticks:
			if h.engine.Tick() {
				h.logger.Debug("scheduled refresh started")
			}
		}
	}
}

func (h *host) handle(ctx context.Context, o op) error {
	e := h.engine

	switch o.Op {
	case "move":
		off := e.Drag(o.DX, o.DY)
		h.logger.Debug("drag", "x", off.X, "y", off.Y)
	case "release":
		in := e.Release(o.DX, o.DY)
		t := in.Transition()
		h.logger.Info("gesture",
			"kind", in.Kind,
			"direction", in.Direction,
			"activity_id", in.ActivityID,
			"transition", t.Kind,
			"duration", t.Duration,
		)
		// No animation runs here, so the transition completes immediately.
		if in.Mutates() {
			e.ApplyIntent(in)
		}
	case "location":
		if o.Lat == nil || o.Lon == nil {
			return errors.New("location needs lat and lon")
		}
		e.UpdateLocation(domain.Location{Latitude: *o.Lat, Longitude: *o.Lon})
	case "denied":
		e.LocationDenied()
	case "retry_location":
		e.RetryLocation()
	case "radius":
		return e.SetRadius(ctx, domain.ClampRadius(o.KM))
	case "refresh":
		e.Refresh()
	case "reset":
		return e.RequestResetDeclined()
	case "confirm":
		return e.ConfirmResetDeclined()
	case "cancel":
		e.CancelResetDeclined()
	case "login":
		e.Login(ctx, domain.UserID(o.User))
	case "logout":
		e.Logout()
	default:
		return fmt.Errorf("%w %q", errUnknownOp, o.Op)
	}
	return nil
}

func (h *host) logView(event string) {
	v := h.engine.View()
	attrs := []any{
		"event", event,
		"state", v.State,
		"queue_len", v.Len,
		"radius_km", v.Radius,
	}
	if v.Active != nil {
		attrs = append(attrs,
			"activity_id", v.Active.ID,
			"name", v.Active.Name,
			"image", v.Image,
			"image_index", v.ImageIndex,
			"free", v.Active.IsFree(),
			"availability", v.Active.Availability.String(),
		)
	}
	if len(v.Options) > 0 {
		opts := make([]string, len(v.Options))
		for i, a := range v.Options {
			opts[i] = a.String()
		}
		attrs = append(attrs, "options", opts)
	}
	h.logger.Info("view", attrs...)
}

// logNavigator stands in for the detail screen.
type logNavigator struct {
	logger *slog.Logger
}

func (n logNavigator) ShowDetail(activity domain.Activity, image string) {
	attrs := []any{
		"activity_id", activity.ID,
		"name", activity.Name,
		"description", activity.Description,
		"location", activity.Location,
		"image", image,
	}
	if activity.URL != nil {
		attrs = append(attrs, "url", *activity.URL)
	}
	n.logger.Info("detail", attrs...)
}

func readLines(r io.Reader, logger *slog.Logger) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := sc.Bytes()
			if len(line) == 0 {
				continue
			}
			out <- append([]byte(nil), line...)
		}
		if err := sc.Err(); err != nil {
			logger.Warn("read input", "error", err)
		}
	}()
	return out
}
