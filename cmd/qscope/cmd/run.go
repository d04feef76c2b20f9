package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/circuit"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
	"github.com/perclft/QubitScope/runtime"
)

var (
	flagShots      int
	flagRunBackend string
	flagNoise      string
	flagInspect    []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reference two-qubit circuit, ideal and noisy",
	Long: "Prints calibration reports for the inspected devices, then runs a " +
		"fixed two-qubit circuit (h, x, cx, measure) through the runtime " +
		"service twice: once ideal and once with the noise profile of a real " +
		"device.",
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagShots, "shots", 1024, "shots per run")
	runCmd.Flags().StringVar(&flagRunBackend, "backend", "ibmq_qasm_simulator", "backend to run on")
	runCmd.Flags().StringVar(&flagNoise, "noise", "fake_melbourne", "device whose noise profile the noisy run mimics")
	runCmd.Flags().StringSliceVar(&flagInspect, "inspect", []string{"fake_melbourne", "fake_armonk"}, "devices to print calibration reports for")
}

func runRun(cmd *cobra.Command, args []string) error {
	local := fake.NewProvider()

	for _, name := range flagInspect {
		b := provider.Search(local, name)
		if b == nil {
			return fmt.Errorf("backend not found: %s", name)
		}
		backend.CollectInfo(b).Print(os.Stdout)
		fmt.Println()
	}

	c := circuit.New(2, 2)
	if err := buildReference(c); err != nil {
		return err
	}
	fmt.Println("Circuit:")
	fmt.Println(c.QASM())

	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	target, err := svc.Backend(ctx, flagRunBackend)
	if err != nil {
		return err
	}
	if c.NumQubits > target.NumQubits() {
		return fmt.Errorf("%s has %d qubits, circuit needs %d",
			target.Name(), target.NumQubits(), c.NumQubits)
	}

	transpiled, err := svc.Transpile(ctx, target.Name(), c)
	if err != nil {
		return err
	}

	session, err := svc.OpenSession(ctx, target.Name())
	if err != nil {
		return err
	}
	defer session.Close(context.Background())

	sampler := runtime.NewSampler(session)

	// ideal run
	ideal, err := execute(ctx, sampler, transpiled, runtime.NewOptions(flagShots, nil))
	if err != nil {
		return err
	}
	fmt.Println("Ideal run:")
	fmt.Print(ideal)

	// noisy run mimicking a real device
	noisy := provider.Search(local, flagNoise)
	if noisy == nil {
		return fmt.Errorf("backend not found: %s", flagNoise)
	}
	withNoise, err := execute(ctx, sampler, transpiled, runtime.NewOptions(flagShots, noisy))
	if err != nil {
		return err
	}
	fmt.Printf("Noisy run (%s profile):\n", flagNoise)
	fmt.Print(withNoise)

	return nil
}

// buildReference constructs the fixed circuit: h q0, x q1, cx q0 q1,
// measure everything.
func buildReference(c *circuit.Circuit) error {
	if err := c.H(0); err != nil {
		return err
	}
	if err := c.X(1); err != nil {
		return err
	}
	if err := c.CX(0, 1); err != nil {
		return err
	}
	return c.MeasureAll()
}

func execute(ctx context.Context, sampler *runtime.Sampler, c *circuit.Circuit, opts *runtime.Options) (*runtime.Result, error) {
	job, err := sampler.Run(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	fmt.Printf(">>> Job ID: %s\n", job.ID())
	return job.Result(ctx)
}
