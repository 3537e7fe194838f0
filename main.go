// gravbox is an interactive n-body gravity sandbox: click to drop bodies,
// watch them attract, bounce off the walls and push each other apart.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quillaja/gravbox/internal/config"
	"github.com/quillaja/gravbox/internal/physics"
	"github.com/quillaja/gravbox/internal/record"
	"github.com/quillaja/gravbox/internal/render"
	"github.com/quillaja/gravbox/internal/scenario"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	config   string
	scenario string
	scatter  int
	seed     int64

	headless bool
	frames   int

	db       string
	chunks   string
	img      string
	imgScale float64
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.config, "config", os.Getenv("GRAVBOX_CONFIG"), "TOML settings file")
	flag.StringVar(&o.scenario, "scenario", "", "YAML scenario with the initial bodies")
	flag.IntVar(&o.scatter, "scatter", 0, "start with this many procedurally placed bodies")
	flag.Int64Var(&o.seed, "seed", 0, "random seed for colours and -scatter (0 = time based)")
	flag.BoolVar(&o.headless, "headless", false, "run without a window")
	flag.IntVar(&o.frames, "frames", 600, "frames to simulate in headless mode")
	flag.StringVar(&o.db, "db", "", "record frames to this new sqlite database")
	flag.StringVar(&o.chunks, "chunks", "", "record frames as compressed chunks in this directory")
	flag.StringVar(&o.img, "img", "", "render frames as PNG images in this directory")
	flag.Float64Var(&o.imgScale, "imgscale", 1, "PNG pixels per arena unit")
	flag.Parse()
	return o
}

func run() (err error) {
	opts := parseFlags()

	cfg, err := config.Load(opts.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(opts.seed))

	params := cfg.Params()
	world := physics.NewWorld(params)
	colors, err := populate(world, opts, cfg, rng)
	if err != nil {
		return err
	}
	log.Info("world ready",
		zap.Int("bodies", world.Len()),
		zap.Float64("width", params.Width),
		zap.Float64("height", params.Height),
		zap.Float64("g", params.G),
		zap.Int64("seed", opts.seed))

	rec, err := openRecorder(opts, cfg, log)
	if err != nil {
		return err
	}
	if rec != nil {
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("recording: %w", cerr))
			}
		}()
	}

	if opts.headless {
		return runHeadless(world, colors, opts.frames, rec, cfg.Record.Every, log)
	}
	return runWindow(world, colors, cfg, rng, rec, log)
}

// populate fills w from -scenario or -scatter and returns the body colours.
func populate(w *physics.World, opts options, cfg *config.Config, rng *rand.Rand) ([]color.RGBA, error) {
	var s *scenario.Scenario
	switch {
	case opts.scenario != "":
		loaded, err := scenario.Load(opts.scenario)
		if err != nil {
			return nil, err
		}
		s = loaded
	case opts.scatter > 0:
		s = scenario.Scatter(opts.scatter, opts.seed, w.Params(), cfg.SpawnDefaults())
	default:
		return nil, nil
	}
	return s.Populate(w, rng)
}

// openRecorder starts a recorder for the sinks requested on the command
// line. It returns nil when recording is off.
func openRecorder(opts options, cfg *config.Config, log *zap.Logger) (*record.Recorder, error) {
	sinks := make(map[string]record.Sink)
	fail := func(err error) (*record.Recorder, error) {
		for _, s := range sinks {
			s.Close()
		}
		return nil, err
	}

	if opts.db != "" {
		s, err := record.OpenSQLite(opts.db)
		if err != nil {
			return fail(fmt.Errorf("sqlite: %w", err))
		}
		sinks["sqlite"] = s
	}
	if opts.chunks != "" {
		s, err := record.NewChunkSink(opts.chunks, cfg.Record.FramesPerChunk, cfg.Record.Compression)
		if err != nil {
			return fail(fmt.Errorf("chunks: %w", err))
		}
		sinks["chunks"] = s
	}
	if opts.img != "" {
		s, err := render.NewPNGSink(opts.img, cfg.Params(), opts.imgScale)
		if err != nil {
			return fail(fmt.Errorf("png: %w", err))
		}
		sinks["png"] = s
	}
	if len(sinks) == 0 {
		return nil, nil
	}

	for name := range sinks {
		log.Info("recording", zap.String("sink", name), zap.Int("every", cfg.Record.Every))
	}
	return record.NewRecorder(log, cfg.Record.QueueSize, sinks), nil
}

// snapshot copies the world for a recorder.
func snapshot(w *physics.World, colors []color.RGBA) *record.Frame {
	return &record.Frame{
		Index:  int(w.Ticks()),
		Bodies: w.Bodies(),
		Colors: append([]color.RGBA(nil), colors...),
	}
}

// runHeadless steps w frames times, recording every Nth frame.
func runHeadless(w *physics.World, colors []color.RGBA, frames int, rec *record.Recorder, every int, log *zap.Logger) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	if w.Len() == 0 {
		log.Warn("headless run with an empty world; use -scenario or -scatter")
	}

	start := time.Now()
	for frame := 1; frame <= frames; frame++ {
		w.Step()
		if rec != nil && frame%every == 0 {
			rec.Record(snapshot(w, colors))
		}

		// progress
		avgTimePerFrame := time.Since(start) / time.Duration(frame)
		estTimeLeft := avgTimePerFrame * time.Duration(frames-frame)
		fmt.Printf("%.1f%%, %d bodies, %s/frame, %s remaining, %s elapsed                    \r",
			100*float64(frame)/float64(frames),
			w.Len(),
			avgTimePerFrame,
			estTimeLeft.Truncate(time.Second),
			time.Since(start).Truncate(time.Second),
		)
	}
	fmt.Println()

	s := physics.Measure(w.Bodies())
	log.Info("done",
		zap.Uint64("ticks", w.Ticks()),
		zap.Duration("took", time.Since(start)),
		zap.Float64("kinetic", s.Kinetic),
		zap.Float64("momentum", s.Momentum.Len()),
		zap.Float64s("center_of_mass", s.CenterOfMass[:]))
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
