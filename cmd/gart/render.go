package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/scottkirkwood/gart"
	"github.com/scottkirkwood/gart/gallery"
	"github.com/scottkirkwood/gart/geom"
)

// drawSurface is a canvas that can also save itself.
type drawSurface interface {
	geom.Painter
	gart.Writer
}

// surfaces hands the same canvas to every piece. GL pieces are rasterized
// onto it by SoftGL.
type surfaces struct {
	canvas geom.Painter
}

func (s surfaces) Canvas(width, height float64) (geom.Painter, error) {
	return s.canvas, nil
}

func (s surfaces) GL(width, height float64) (gart.GLSurface, error) {
	return gart.NewSoftGL(s.canvas, width, height), nil
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the art pieces",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list(cmd.OutOrStdout())
		},
	}
}

func list(out io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSURFACE\tUSES")
	for _, p := range gallery.Catalog() {
		var uses []string
		if p.NeedsRandomPool {
			uses = append(uses, "seed")
		}
		if p.UsesParameterA {
			uses = append(uses, "a")
		}
		if p.UsesParameterB {
			uses = append(uses, "b")
		}
		if p.Animated() {
			uses = append(uses, "time")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Surface, strings.Join(uses, ","))
	}
	tw.Flush()
}

func renderCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render one art piece to a file",
		Long: `Render the piece named by --art to a png, svg or pdf in --out. Animated
pieces are taken --elapsed ms after they start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			fname, err := renderPiece(cmd.Context(), cfg, cfg.state())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fname)
			return nil
		},
	}
}

func allCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Render every art piece with the same seed and parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			files, err := renderAll(cmd.Context(), cfg)
			for _, f := range files {
				if f != "" {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			return err
		},
	}
}

func newSurface(cfg config) drawSurface {
	if cfg.Raster {
		return gart.NewRasterContext(cfg.Width, cfg.Height)
	}
	return gart.NewContext(float64(cfg.Width), float64(cfg.Height))
}

// renderPiece draws st onto a fresh surface and saves it in cfg.Out as
// <art>-<seed>.<format>. It returns the file name.
func renderPiece(ctx context.Context, cfg config, st gallery.State) (string, error) {
	surface := newSurface(cfg)
	g := gallery.New(surfaces{canvas: surface}, float64(cfg.Width), float64(cfg.Height), nil)
	if err := g.Select(ctx, st); err != nil {
		return "", err
	}
	if g.Animating() {
		if err := g.Tick(0); err != nil {
			return "", err
		}
		if cfg.Elapsed > 0 {
			if err := g.Tick(cfg.Elapsed); err != nil {
				return "", err
			}
		}
		g.Stop()
	}
	shown := g.State()
	prefix := filepath.Join(cfg.Out, shown.ArtName) + "-"
	return gart.Init(shown.Seed).SafeWrite(surface, prefix, "."+cfg.Format)
}

// renderAll renders the whole catalog in parallel. The returned names line
// up with gallery.Catalog; a piece that failed has an empty name.
func renderAll(ctx context.Context, cfg config) ([]string, error) {
	pieces := gallery.Catalog()
	files := make([]string, len(pieces))

	st := cfg.state()
	st.Seed = gart.Init(st.Seed).String()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range pieces {
		g.Go(func() error {
			ps := st
			ps.ArtName = p.Name
			fname, err := renderPiece(ctx, cfg, ps)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			files[i] = fname
			return nil
		})
	}
	err := g.Wait()
	log.Info().Str("seed", st.Seed).Int("pieces", len(pieces)).Msg("rendered catalog")
	return files, err
}
