package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scottkirkwood/gart/gallery"
)

const (
	keyArt        = "art_name"
	keyParameterA = "parameter_a"
	keyParameterB = "parameter_b"
	keySeed       = "seed"
	keyWidth      = "width"
	keyHeight     = "height"
	keyFormat     = "format"
	keyOut        = "out"
	keyState      = "state"
	keyLogLevel   = "log_level"
	keyRaster     = "raster"
	keyElapsed    = "elapsed"
)

// ErrSize is returned for pictures without area.
var ErrSize = errors.New("bad picture size")

type config struct {
	Art        string  `mapstructure:"art_name"`
	ParameterA float64 `mapstructure:"parameter_a"`
	ParameterB float64 `mapstructure:"parameter_b"`
	Seed       string  `mapstructure:"seed"`

	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Format string `mapstructure:"format"`
	Out    string `mapstructure:"out"`
	Raster bool   `mapstructure:"raster"`
	// Elapsed is how far into an animation a render is taken, in ms.
	Elapsed float64 `mapstructure:"elapsed"`

	StateFile string `mapstructure:"state"`
	LogLevel  string `mapstructure:"log_level"`
}

func (c config) state() gallery.State {
	return gallery.State{
		ArtName:    c.Art,
		ParameterA: c.ParameterA,
		ParameterB: c.ParameterB,
		Seed:       c.Seed,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GART")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyArt, gallery.DefaultPiece)
	v.SetDefault(keyParameterA, gallery.DefaultParameter)
	v.SetDefault(keyParameterB, gallery.DefaultParameter)
	v.SetDefault(keySeed, "")
	v.SetDefault(keyWidth, 800)
	v.SetDefault(keyHeight, 800)
	v.SetDefault(keyFormat, "png")
	v.SetDefault(keyOut, ".")
	v.SetDefault(keyRaster, false)
	v.SetDefault(keyElapsed, 10000)
	v.SetDefault(keyState, "")
	v.SetDefault(keyLogLevel, "info")
	return v
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"art":         keyArt,
	"parameter-a": keyParameterA,
	"parameter-b": keyParameterB,
	"seed":        keySeed,
	"width":       keyWidth,
	"height":      keyHeight,
	"format":      keyFormat,
	"out":         keyOut,
	"raster":      keyRaster,
	"elapsed":     keyElapsed,
	"state":       keyState,
	"log-level":   keyLogLevel,
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	pf := cmd.PersistentFlags()
	pf.String("art", gallery.DefaultPiece, "art piece to show, see gart list")
	pf.Float64("parameter-a", gallery.DefaultParameter, "parameter A, 0 to 10")
	pf.Float64("parameter-b", gallery.DefaultParameter, "parameter B, 0 to 10")
	pf.String("seed", "", "random seed, empty picks one")
	pf.Int("width", 800, "picture width")
	pf.Int("height", 800, "picture height")
	pf.String("format", "png", "png, svg or pdf")
	pf.String("out", ".", "directory pictures are saved in")
	pf.Bool("raster", false, "draw with the raster surface (png only)")
	pf.Float64("elapsed", 10000, "ms into an animation to render")
	pf.String("state", "", "state file (yaml, json or toml) read at start and kept up to date by view")
	pf.String("log-level", "info", "trace, debug, info, warn or error")
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadConfig merges flags, GART_* environment variables, the state file
// and the defaults, in that order of precedence. A missing state file is
// fine, view creates it.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString(keyState); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return config{}, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrSize)
	}
	cfg.Format = strings.TrimPrefix(strings.ToLower(cfg.Format), ".")
	return cfg, nil
}

var logLevels = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

func setupLogging(level string) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
	}
	l, ok := logLevels[strings.ToUpper(level)]
	if !ok {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
}

func logFatal(err error) {
	log.Fatal().Err(err).Msg("gart")
}
