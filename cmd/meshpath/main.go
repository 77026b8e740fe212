package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/philipparndt/meshpath/version"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshpath",
	Short: "Build editable shortest paths across mesh vertices and faces",
	Long: `meshpath loads a mesh (STL or a generated grid) and runs interactive path
sessions on it: control points are clicked, the shortest route between them is
filled in, and the confirmed path becomes selection, seam and sharp edits.
Sessions are driven by interaction scripts so they can be replayed and watched.`,
	Version: version.GetFullVersion(),
}

func init() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	rootCmd.PersistentFlags().AddGoFlagSet(fset)
}

func main() {
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		klog.Flush()
		os.Exit(1)
	}
}
