package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-asset/internal/asset"
	"github.com/ironsheep/image-asset/internal/config"
	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// newLogger configures logging to stderr (stdout is for MCP protocol)
func newLogger(w io.Writer) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(config.LogLevel())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logrus.NewEntry(l).WithField("component", "image-asset")
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "image-asset",
		Short: "MCP server for loading, clipping and resizing images",
		Long: "image-asset serves image asset tools over the MCP protocol on stdin/stdout.\n" +
			"Configure it in your MCP client (e.g., Claude Desktop).",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr())
			log.WithFields(logrus.Fields{
				"version": Version,
				"built":   BuildTime,
				"commit":  GitCommit,
			}).Debug("starting server")

			srv := server.New(server.Config{
				Logger:       log,
				AutoOrient:   config.AutoOrient(),
				MaxFileBytes: config.MaxFileBytes(),
				Version:      Version,
			})
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}

			hits, misses := pixbuf.PoolMetrics()
			log.WithFields(logrus.Fields{"pool_hits": hits, "pool_misses": misses}).Debug("server stopped")
			return nil
		},
	}

	rootCmd.AddCommand(newVersionCmd(), newInfoCmd(), newEnvCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image-asset %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH",
		Short: "Load an image and print its dimensions, channels and format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := asset.New(
				asset.WithLogger(newLogger(cmd.ErrOrStderr())),
				asset.WithAutoOrient(config.AutoOrient()),
				asset.WithMaxFileBytes(config.MaxFileBytes()),
			)
			if err := a.LoadFile(args[0]); err != nil {
				return err
			}
			defer a.Unload()

			format, _ := a.Format()
			origin, _ := a.Origin()
			topLeft, err := a.Pixel(0, 0)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", args[0])
			fmt.Fprintf(out, "size:     %dx%d\n", a.Width(), a.Height())
			fmt.Fprintf(out, "channels: %d\n", a.ChannelCount())
			fmt.Fprintf(out, "format:   %s\n", format)
			fmt.Fprintf(out, "origin:   %s\n", origin)
			fmt.Fprintf(out, "top-left: %v\n", topLeft)
			return nil
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the environment variables image-asset reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vars := config.AsMap()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				v := vars[name]
				fmt.Fprintf(out, "%s=%v\n    %s\n", v.Name, v.Value, v.Description)
			}
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
