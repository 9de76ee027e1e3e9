package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/internal/render"
	"github.com/philipparndt/snapcircle/internal/script"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

var (
	pngPath string
	quiet   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a pointer-event script without opening a window",
	Long: `Replay feeds the events of a script into the widget and prints the state
after each one. Each line holds one event:

  down X Y [radius|start|end]
  move X Y
  up [X Y]
  leave [X Y]

A down without a handle name hits whatever handle is under the pointer.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&pngPath, "png", "", "Write the final state to a PNG file")
	replayCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final state")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	s, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := interaction.NewWidget(cfg.WidgetLayout(), cfg.WidgetTunables())
	final := script.Replay(w, s, func(r script.Result) {
		if quiet {
			return
		}
		fmt.Fprintf(out, "%3d  %-28s %s\n", r.Step.Line, r.Event, changeLabel(r.Changed))
		printSnapshot(out, r.Snapshot, "     ")
	})

	fmt.Fprintf(out, "Final state after %d events:\n", len(s.Steps))
	printSnapshot(out, final, "  ")

	if pngPath != "" {
		opts := render.DefaultOptions()
		opts.Width = cfg.Window.Width
		opts.Height = cfg.Window.Height
		if err := render.SavePNG(pngPath, final, opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", pngPath)
	}
	return nil
}

func changeLabel(changed bool) string {
	if changed {
		return "changed"
	}
	return chalk.Dim.TextStyle("ignored")
}

func printSnapshot(out io.Writer, s interaction.Snapshot, indent string) {
	fmt.Fprintf(out, "%scircle %s r=%.2f\n", indent, s.Circle.Center, s.Circle.Radius)
	fmt.Fprintf(out, "%sstart %s %s\n", indent, s.Line.Start, attachedLabel(s.Line.StartAttached))
	fmt.Fprintf(out, "%send   %s %s\n", indent, s.Line.End, attachedLabel(s.Line.EndAttached))
}

func attachedLabel(attached bool) string {
	if attached {
		return chalk.Green.Color("attached")
	}
	return chalk.Yellow.Color("free")
}
