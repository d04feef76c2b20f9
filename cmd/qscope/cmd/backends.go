package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/internal/snapstore"
	"github.com/perclft/QubitScope/provider"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Inspect the backend catalog",
}

var backendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backends",
	Args:  cobra.NoArgs,
	RunE:  runBackendsList,
}

var backendsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a backend's full calibration report",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackendsShow,
}

var backendsErrorsCmd = &cobra.Command{
	Use:   "errors <name>",
	Short: "Print per-gate error rates",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackendsErrors,
}

var backendsPullCmd = &cobra.Command{
	Use:   "pull <store-path>",
	Short: "Snapshot every backend into a local store for offline use",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackendsPull,
}

func init() {
	backendsCmd.AddCommand(backendsListCmd)
	backendsCmd.AddCommand(backendsShowCmd)
	backendsCmd.AddCommand(backendsErrorsCmd)
	backendsCmd.AddCommand(backendsPullCmd)
}

func runBackendsList(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tQUBITS\tMAX CIRCUITS\tTYPE")
	for _, b := range p.Backends() {
		kind := "hardware"
		if b.IsSimulator() {
			kind = "simulator"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			b.Name(), b.Version(), b.NumQubits(), b.MaxCircuits(), kind)
	}
	return w.Flush()
}

func runBackendsShow(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	b := provider.Search(p, args[0])
	if b == nil {
		return fmt.Errorf("backend not found: %s", args[0])
	}
	backend.CollectInfo(b).Print(os.Stdout)
	return nil
}

func runBackendsErrors(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	b := provider.Search(p, args[0])
	if b == nil {
		return fmt.Errorf("backend not found: %s", args[0])
	}

	errs := backend.GateErrors(b)
	gates := make([]string, 0, len(errs))
	for g := range errs {
		gates = append(gates, g)
	}
	sort.Strings(gates)

	target := b.Target()
	for _, gate := range gates {
		fmt.Printf("%s:\n", gate)
		for _, key := range target.Qargs(gate) {
			if e := errs[gate][key]; e != nil {
				fmt.Printf("\t%s: %g\n", key, *e)
			} else {
				fmt.Printf("\t%s: None\n", key)
			}
		}
	}
	return nil
}

func runBackendsPull(cmd *cobra.Command, args []string) error {
	p, cleanup, err := openProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := snapstore.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	n := 0
	for _, b := range p.Backends() {
		if err := store.Put(backend.SnapshotOf(b)); err != nil {
			return err
		}
		n++
	}
	fmt.Printf("stored %d snapshots in %s\n", n, args[0])
	return nil
}
