package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/meshpath/internal/config"
	"github.com/philipparndt/meshpath/internal/render"
	"github.com/philipparndt/meshpath/internal/script"
	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/mesh"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/philipparndt/meshpath/pkg/watcher"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	runConfig string
	runWatch  bool
	runQuiet  bool
	runSelect string
	runSeam   string
	runSharp  string
	runGap    bool
)

var runCmd = &cobra.Command{
	Use:   "run [mesh] [script]",
	Short: "Play an interaction script as a path session",
	Long: `Replay the clicks, drags and keys of an interaction script against a mesh.
Every frame of the session is printed unless --quiet is given; the final
selection, seams and sharp edges are printed once the path is confirmed.

With --watch the session is replayed whenever the script or mesh file changes.`,
	Args: cobra.ExactArgs(2),
	Run:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "Session options file (.yaml or .toml); also receives tool defaults")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Replay when the script or mesh changes")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Only print notices and the result")
	runCmd.Flags().StringVar(&runSelect, "select", "", "Selection mode: Extend, None, Subtract or Invert")
	runCmd.Flags().StringVar(&runSeam, "seam", "", "Seam mode: Mark, None, Clear or Toggle")
	runCmd.Flags().StringVar(&runSharp, "sharp", "", "Sharp mode: Mark, None, Clear or Toggle")
	runCmd.Flags().BoolVarP(&runGap, "gap", "g", false, "Start with the gap fill enabled")
}

func runRun(cmd *cobra.Command, args []string) {
	meshSource, scriptFile := args[0], args[1]

	if err := playScript(cmd, os.Stdout, meshSource, scriptFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !runWatch {
			os.Exit(1)
		}
	}
	if !runWatch {
		return
	}

	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	files := []string{scriptFile}
	if !strings.HasPrefix(meshSource, gridPrefix) {
		files = append(files, meshSource)
	}

	var mu sync.Mutex
	err = fw.Watch(files, func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("\n%s changed, replaying\n", changed)
		if err := playScript(cmd, os.Stdout, meshSource, scriptFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", strings.Join(files, ", "))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
}

// sessionConfig loads the options file and applies flag overrides. The
// second result is the file's own content, which tool defaults are merged into.
func sessionConfig(cmd *cobra.Command) (session.Config, session.Config, error) {
	cfg := session.DefaultConfig()
	if runConfig != "" {
		var err error
		if cfg, err = config.LoadOrDefault(runConfig); err != nil {
			return cfg, cfg, err
		}
	}
	stored := cfg

	flags := cmd.Flags()
	if flags.Changed("select") {
		cfg.Select = topology.SelectMode(runSelect)
	}
	if flags.Changed("seam") {
		cfg.Seam = topology.EdgeMode(runSeam)
	}
	if flags.Changed("sharp") {
		cfg.Sharp = topology.EdgeMode(runSharp)
	}
	if flags.Changed("gap") {
		cfg.GapFill = runGap
	}
	return cfg, stored, errors.Wrap(cfg.Validate(), "flags")
}

func playScript(cmd *cobra.Command, w io.Writer, meshSource, scriptFile string) error {
	cfg, stored, err := sessionConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMesh(meshSource)
	if err != nil {
		return err
	}
	s, err := script.ParseFile(scriptFile)
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithNotifier(render.Printer{W: w})}
	if !runQuiet {
		opts = append(opts, session.WithRenderer(render.NewText(w, m)))
	}
	if runConfig != "" {
		opts = append(opts, session.WithToolDefaults(&config.ToolDefaults{Filename: runConfig, Config: stored}))
	}

	c, err := script.Play(m, s.Commands(), cfg, opts...)
	if c != nil {
		printResult(w, c, m)
	}
	return err
}

func printResult(w io.Writer, c *session.Controller, m *mesh.Mesh) {
	model := c.Model()
	fmt.Fprintln(w)
	switch c.State() {
	case session.Finished:
		resolved := model.ResolvedPath()
		fmt.Fprintf(w, "Path applied (%d elements): %s\n", len(resolved.Elements), render.Elements(resolved.Elements))
		fmt.Fprintf(w, "Selection: %s\n", render.Elements(m.Selection(model.Kind())))
		fmt.Fprintf(w, "Seams: %s\n", edgeList(m, m.Seams()))
		fmt.Fprintf(w, "Sharp: %s\n", edgeList(m, m.SharpEdges()))
	case session.Cancelled:
		fmt.Fprintln(w, "Session cancelled, mesh unchanged")
	default:
		fmt.Fprintf(w, "Session still open (%s) with %d control points; end the script with confirm to apply\n",
			c.State(), model.Len())
	}
}

func edgeList(m *mesh.Mesh, edges []int) string {
	if len(edges) == 0 {
		return "-"
	}
	parts := make([]string, len(edges))
	for i, ei := range edges {
		e := m.Edge(ei)
		parts[i] = fmt.Sprintf("v%d-v%d", e.V[0], e.V[1])
	}
	return strings.Join(parts, " ")
}
