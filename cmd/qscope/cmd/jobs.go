package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagJobsBackend string
	flagJobsLimit   int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List recent jobs from the service audit trail",
	Args:  cobra.NoArgs,
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&flagJobsBackend, "backend", "", "only jobs for this backend")
	jobsCmd.Flags().IntVar(&flagJobsLimit, "limit", 20, "maximum number of jobs")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jobs, err := svc.Jobs(ctx, flagJobsBackend, flagJobsLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JOB\tBACKEND\tSTATE\tSHOTS\tNOISY\tSUBMITTED\tERROR")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%s\t%s\n",
			j.ID, j.Backend, j.State, j.Shots, j.Noisy,
			j.Submitted.Format(time.RFC3339), j.Err)
	}
	return w.Flush()
}
