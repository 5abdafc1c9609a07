package main

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/sync/errgroup"

	"github.com/scottkirkwood/gart"
	"github.com/scottkirkwood/gart/gallery"
	"github.com/scottkirkwood/gart/terrain"
)

const (
	frameInterval = time.Second / 60
	paramStep     = 0.5
)

// tickEvent asks the window loop for the next animation frame.
type tickEvent struct{}

// stateEvent carries a state file that was edited outside the viewer.
type stateEvent struct {
	state gallery.State
}

func viewCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the gallery in a window",
		Long: `Open a window on the gallery.

  left, right  previous or next piece
  up, down     parameter A
  [, ]         parameter B
  space        new seed
  s            save a png in --out
  f            log the frame rate
  q, escape    quit

With --state the state file is rewritten on every change and the window
follows edits made to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return view(cmd.Context(), cfg)
		},
	}
}

func view(ctx context.Context, cfg config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	worker := terrain.NewWorker()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})

	var winErr error
	driver.Main(func(s screen.Screen) {
		winErr = runWindow(ctx, s, cfg, worker, g)
		cancel()
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return winErr
}

func runWindow(ctx context.Context, s screen.Screen, cfg config, worker *terrain.Worker, g *errgroup.Group) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	if cfg.StateFile != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		// editors replace files, so watch the directory
		if err := watcher.Add(filepath.Dir(cfg.StateFile)); err != nil {
			return err
		}
		g.Go(func() error {
			return watchState(ctx, watcher, cfg.StateFile, w)
		})
	}

	var pending atomic.Bool
	g.Go(func() error {
		return tick(ctx, w, &pending)
	})

	vw := newViewer(cfg, worker)
	vw.show(ctx, cfg.state())
	log.Info().Str("art", vw.gallery.State().ArtName).Msg("monitoring")

	var b screen.Buffer
	defer func() {
		if b != nil {
			b.Release()
		}
	}()
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape || e.Code == key.CodeQ {
				return nil
			}
			vw.key(ctx, e.Code)
			w.Send(paint.Event{})

		case size.Event:
			if b != nil {
				b.Release()
			}
			b, err = s.NewBuffer(e.Size())
			if err != nil {
				return err
			}

		case tickEvent:
			pending.Store(false)
			if vw.tick() {
				w.Send(paint.Event{})
			}

		case stateEvent:
			vw.reload(ctx, e.state)
			w.Send(paint.Event{})

		case paint.Event:
			if b == nil {
				continue
			}
			gart.Fit(b.RGBA(), vw.raster.Image())
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()

		case error:
			log.Error().Err(e).Msg("screen")
			return e
		}
	}
}

// tick asks for a frame every frameInterval. A tick the window hasn't
// handled yet isn't doubled up.
func tick(ctx context.Context, w screen.Window, pending *atomic.Bool) error {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if pending.CompareAndSwap(false, true) {
				w.Send(tickEvent{})
			}
		}
	}
}

func watchState(ctx context.Context, watcher *fsnotify.Watcher, file string, w screen.Window) error {
	file = filepath.Clean(file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			st, err := loadState(file)
			if err != nil {
				log.Warn().Err(err).Msg("reloading state")
				continue
			}
			w.Send(stateEvent{state: st})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watching state")
		}
	}
}

// viewer is everything the window loop changes. It is only used from that
// loop.
type viewer struct {
	cfg     config
	raster  *gart.RasterContext
	gallery *gallery.Gallery
	pieces  []gallery.Piece
	// saved is the last state written to or read from the state file.
	saved gallery.State
	start time.Time
}

func newViewer(cfg config, worker *terrain.Worker) *viewer {
	r := gart.NewRasterContext(cfg.Width, cfg.Height)
	return &viewer{
		cfg:     cfg,
		raster:  r,
		gallery: gallery.New(surfaces{canvas: r}, float64(cfg.Width), float64(cfg.Height), worker),
		pieces:  gallery.Catalog(),
		start:   time.Now(),
	}
}

func (v *viewer) nowMS() float64 {
	return float64(time.Since(v.start).Microseconds()) / 1000
}

func (v *viewer) show(ctx context.Context, st gallery.State) {
	if err := v.gallery.Select(ctx, st); err != nil {
		log.Error().Err(err).Str("art", st.ArtName).Msg("can't show")
		return
	}
	v.persist()
}

func (v *viewer) persist() {
	st := v.gallery.State()
	if v.cfg.StateFile == "" || st == v.saved {
		return
	}
	if err := saveState(v.cfg.StateFile, st); err != nil {
		log.Warn().Err(err).Str("file", v.cfg.StateFile).Msg("saving state")
		return
	}
	v.saved = st
}

// reload shows st unless it is what the viewer wrote itself.
func (v *viewer) reload(ctx context.Context, st gallery.State) {
	if st.Clamped() == v.saved {
		return
	}
	v.saved = st.Clamped()
	v.show(ctx, st)
}

func (v *viewer) tick() bool {
	if !v.gallery.Animating() {
		return false
	}
	if err := v.gallery.Tick(v.nowMS()); err != nil {
		log.Error().Err(err).Msg("drawing frame")
	}
	return true
}

// next returns the name step pieces away from name, wrapping around.
func (v *viewer) next(name string, step int) string {
	i := 0
	for j, p := range v.pieces {
		if p.Name == name {
			i = j
			break
		}
	}
	n := len(v.pieces)
	return v.pieces[((i+step)%n+n)%n].Name
}

func (v *viewer) key(ctx context.Context, code key.Code) {
	st := v.gallery.State()
	switch code {
	case key.CodeRightArrow:
		st.ArtName = v.next(st.ArtName, 1)
	case key.CodeLeftArrow:
		st.ArtName = v.next(st.ArtName, -1)
	case key.CodeUpArrow:
		st.ParameterA += paramStep
	case key.CodeDownArrow:
		st.ParameterA -= paramStep
	case key.CodeRightSquareBracket:
		st.ParameterB += paramStep
	case key.CodeLeftSquareBracket:
		st.ParameterB -= paramStep
	case key.CodeSpacebar:
		st.Seed = ""
	case key.CodeS:
		v.save()
		return
	case key.CodeF:
		log.Info().Float64("fps", v.gallery.FPS()).Msg("frame rate")
		return
	default:
		return
	}
	v.show(ctx, st)
}

func (v *viewer) save() {
	st := v.gallery.State()
	prefix := filepath.Join(v.cfg.Out, st.ArtName) + "-"
	// SafeWrite logs the outcome
	_, _ = gart.Init(st.Seed).SafeWrite(v.raster, prefix, ".png")
}
