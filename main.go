package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	"github.com/katistix/statusicon/pkg/status"
	"github.com/katistix/statusicon/pkg/statusicon"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:           "statusicon",
	Short:         "Render lifecycle status icons for pods and virtual machines",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			return initDebugLogger("")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeDebugLogger()
	},
}

var boardCmd = &cobra.Command{
	Use:   "board [config]",
	Short: "Open the status board for the resources in a config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := defaultConfigPath
		if len(args) > 0 {
			configPath = args[0]
		}

		watcher, err := newConfigWatcher(configPath)
		if err != nil {
			// The board still works without live reload.
			logDebug(err.Error())
			watcher = nil
		}

		p := tea.NewProgram(initialModel(configPath, watcher), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	},
}

type renderOptions struct {
	spin   bool
	testID string
	html   bool
	pod    string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render [status]",
	Short: "Print the icon for a status",
	Long: `Print the icon for a status, either as a styled terminal glyph or as
an HTML element. Unrecognized statuses render as the unknown icon with the
label "Other". With --pod the status is derived from a Pod manifest.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if renderOpts.pod != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if renderOpts.pod != "" {
			st, err := statusFromPodFile(renderOpts.pod)
			if err != nil {
				return err
			}
			raw = st.String()
		} else {
			raw = args[0]
		}

		el := statusicon.Render(statusicon.Props{Status: raw, Spin: renderOpts.spin, TestID: renderOpts.testID})
		logDebug(fmt.Sprintf("render %q: icon=%s title=%s", raw, el.Icon, el.Title))

		out := cmd.OutOrStdout()
		if renderOpts.html {
			fmt.Fprintln(out, el.HTML())
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", el.View(0), el.Title)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known status with its icon and label",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tICON\tLABEL")
		for _, st := range status.All() {
			el := statusicon.Render(statusicon.Props{Status: st.String()})
			fmt.Fprintf(w, "%s\t%s %s\t%s\n", st, el.View(0), st.Icon(), st.Label())
		}
		return w.Flush()
	},
}

func statusFromPodFile(path string) (status.Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return status.Unknown, fmt.Errorf("reading pod manifest: %w", err)
	}
	var pod corev1.Pod
	if err := yaml.Unmarshal(data, &pod); err != nil {
		return status.Unknown, fmt.Errorf("parsing pod manifest %s: %w", path, err)
	}
	if kind := strings.TrimSpace(pod.Kind); kind != "" && kind != "Pod" {
		return status.Unknown, fmt.Errorf("%s: expected kind Pod, got %s", path, kind)
	}
	return status.FromPod(&pod), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Write debug output to debug.log")

	renderCmd.Flags().BoolVar(&renderOpts.spin, "spin", false, "Render a spinning icon")
	renderCmd.Flags().StringVar(&renderOpts.testID, "test-id", "", "Value of the data-test-id attribute")
	renderCmd.Flags().BoolVar(&renderOpts.html, "html", false, "Print an HTML element instead of a terminal glyph")
	renderCmd.Flags().StringVar(&renderOpts.pod, "pod", "", "Derive the status from a Pod manifest (YAML or JSON)")

	rootCmd.AddCommand(boardCmd, renderCmd, listCmd)
}

// --- MAIN ---
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
