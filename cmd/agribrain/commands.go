package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"agribrain/backend/internal/app"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(false)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
}

// withApp wires the application without starting the HTTP server and runs fn
// with a context that is cancelled on interrupt. Cancelling mid-request
// cancels the flow's session.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the farm assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				exchange, err := a.Chat.Send(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), exchange.Answer.Text)
				return err
			})
		},
	}
}

func newWeatherCmd() *cobra.Command {
	var (
		city     string
		lat, lon float64
	)
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch current weather for a city or coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := &service.WeatherQuery{City: city}
			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return fmt.Errorf("%w: --lat and --lon must be given together", app_errors.ErrValidation)
			}
			if latSet {
				q.Lat, q.Lon = &lat, &lon
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				snap, err := a.Weather.Fetch(ctx, q)
				if err != nil {
					if snap != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Showing last known weather for %s\n", snap.City)
						_ = printJSON(cmd.OutOrStdout(), snap)
					}
					return err
				}
				return printJSON(cmd.OutOrStdout(), snap)
			})
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "City name (defaults to the configured default city)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	return cmd
}

func newCropCmd() *cobra.Command {
	var input model.CropInput
	fields := []struct {
		name  string
		usage string
		dst   **float64
	}{
		{"nitrogen", "Nitrogen content (kg/ha)", &input.Nitrogen},
		{"phosphorus", "Phosphorus content (kg/ha)", &input.Phosphorus},
		{"potassium", "Potassium content (kg/ha)", &input.Potassium},
		{"temperature", "Temperature (°C)", &input.Temperature},
		{"humidity", "Relative humidity (%)", &input.Humidity},
		{"ph", "Soil pH", &input.Ph},
		{"rainfall", "Rainfall (mm)", &input.Rainfall},
	}
	values := make([]float64, len(fields))

	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Recommend a crop from soil and climate readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Only flags the user set are filled in so the service can report
			// missing fields.
			for i, f := range fields {
				if cmd.Flags().Changed(f.name) {
					*f.dst = &values[i]
				}
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				rec, err := a.Crop.Recommend(ctx, &input)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.Message)
				return err
			})
		},
	}
	for i, f := range fields {
		cmd.Flags().Float64Var(&values[i], f.name, 0, f.usage)
	}
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var useCamera bool
	cmd := &cobra.Command{
		Use:   "analyze [image]",
		Short: "Analyze a crop image file or a camera frame for disease",
		Args: func(cmd *cobra.Command, args []string) error {
			if useCamera {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if useCamera {
				return withApp(cmd, func(ctx context.Context, a *app.App) error {
					rec, err := a.Analysis.Analyze(ctx, a.Camera)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), rec)
				})
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open image: %w", err)
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("could not stat image: %w", err)
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				rec, err := a.Analysis.AnalyzeUpload(ctx, filepath.Base(args[0]), info.Size(), f)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			})
		},
	}
	cmd.Flags().BoolVar(&useCamera, "camera", false, "Capture one frame with CAMERA_COMMAND instead of reading a file")
	return cmd
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the farm performance summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				report, err := a.Report.Summary(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

var errUnknownHistory = errors.New("unknown history")

func newHistoryCmd() *cobra.Command {
	var clearHistory bool
	cmd := &cobra.Command{
		Use:       "history <chat|analysis|weather|crop>",
		Short:     "Print or clear a stored history",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{service.KindChat, service.KindAnalysis, service.KindWeather, service.KindCrop},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if clearHistory {
					if kind != service.KindChat {
						return fmt.Errorf("%w: only the chat history can be cleared", app_errors.ErrValidation)
					}
					return a.Chat.ClearHistory(ctx)
				}

				var (
					entries any
					err     error
				)
				switch kind {
				case service.KindChat:
					entries, err = a.Chat.History(ctx)
				case service.KindAnalysis:
					entries, err = a.Analysis.History(ctx)
				case service.KindWeather:
					entries, err = a.Weather.History(ctx)
				case service.KindCrop:
					entries, err = a.Crop.History(ctx)
				default:
					return fmt.Errorf("%w %q", errUnknownHistory, kind)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "Clear the history instead of printing it")
	return cmd
}
