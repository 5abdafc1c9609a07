// Command gart lists, renders and shows the pieces of the gallery.
//
//	gart list
//	gart render --art schotter --parameter-a 7 --seed hello --format svg
//	gart all --out pics
//	gart view --state gart.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "gart",
		Short:         "Generative art gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(v.GetString(keyLogLevel))
		},
	}
	bindFlags(root, v)
	root.AddCommand(
		listCommand(),
		renderCommand(v),
		allCommand(v),
		viewCommand(v),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand(newViper()).ExecuteContext(ctx); err != nil {
		logFatal(err)
	}
}
