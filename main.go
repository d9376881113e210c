package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// A .env next to the binary can carry POLYBENCH_OPTIONS and
	// POLYBENCH_LOG_LEVEL defaults for a machine.
	_ = godotenv.Load()

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		Logger.Errorf("%v", err)
		os.Exit(exitCode(err))
	}
}

type runFlags struct {
	options         string
	dataset         string
	output          string
	verifyFile      string
	verifyTolerance float64
	resultsDb       string
}

func newRootCmd() *cobra.Command {
	flags := runFlags{}
	cmd := &cobra.Command{
		Use:   "polybench [kernel]",
		Short: "Run a PolyBench kernel under controlled measurement conditions",
		Long: "polybench initializes a numerical kernel for a named problem size, flushes the CPU cache,\n" +
			"times the kernel run (or samples hardware performance counters around it) and optionally\n" +
			"dumps or verifies the live-out arrays. Without a kernel argument it lists the available kernels.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listKernels(cmd.OutOrStdout())
			}
			return runBenchmark(args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.options, "polybench-options", os.Getenv("POLYBENCH_OPTIONS"),
		"comma-separated POLYBENCH_* option list (NAME or NAME=VALUE)")
	cmd.Flags().StringVar(&flags.dataset, "dataset", string(Large),
		"problem size variant: MINI, SMALL, MEDIUM, LARGE or EXTRALARGE")
	cmd.Flags().StringVar(&flags.output, "output", "stderr",
		"array dump target: stderr, stdout or a file path")
	cmd.Flags().StringVar(&flags.verifyFile, "verify-file", "",
		"reference dump to verify the live-out arrays against")
	cmd.Flags().Float64Var(&flags.verifyTolerance, "verify-tolerance", DefaultVerifyTolerance,
		"numeric tolerance used by --verify-file")
	cmd.Flags().StringVar(&flags.resultsDb, "results-db", "",
		"SQLite file to append the measurement to")
	return cmd
}

func listKernels(w io.Writer) error {
	fmt.Fprintln(w, "List of available kernels:")
	for _, kernel := range AllKernels() {
		fmt.Fprintf(w, "  %v\n", kernel.Name())
	}
	return nil
}

func runBenchmark(name string, flags runFlags) error {
	opts, err := ParseOptions(flags.options)
	if err != nil {
		return err
	}
	size, err := ParseDatasetSize(flags.dataset)
	if err != nil {
		return err
	}
	kernel := KernelByName(name)
	if kernel == nil {
		return fmt.Errorf("%w: unknown kernel %q (run without arguments for the list)", ErrConfiguration, name)
	}

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	arrays, measurement, err := Execute(kernel, size, opts)
	if err != nil {
		return err
	}
	printMeasurement(os.Stdout, measurement, opts)

	if opts.DumpArrays {
		target, closeTarget, err := dumpTarget(flags.output)
		if err != nil {
			return err
		}
		err = DumpArrays(target, arrays)
		closeTarget()
		if err != nil {
			return fmt.Errorf("failed to dump arrays: %w", err)
		}
	}

	if flags.resultsDb != "" {
		if err := saveResults(flags.resultsDb, kernel.Name(), size, info, measurement); err != nil {
			return err
		}
	}

	if flags.verifyFile != "" {
		return verifyAgainstFile(arrays, flags.verifyFile, flags.verifyTolerance)
	}
	return nil
}

func printMeasurement(w io.Writer, m Measurement, opts Options) {
	switch m.Mode {
	case ModeTime:
		fmt.Fprintf(w, "%0.6f\n", m.Seconds)
	case ModeCycles:
		fmt.Fprintf(w, "%d\n", m.Cycles)
	case ModePapi:
		for _, counter := range m.Counters {
			if opts.PapiVerbose {
				fmt.Fprintf(w, "%v=%v\n", counter.Name, counter.Value)
			} else {
				fmt.Fprintf(w, "%v\n", counter.Value)
			}
		}
	}
}

func dumpTarget(name string) (io.Writer, func(), error) {
	switch name {
	case "", "stderr":
		return os.Stderr, func() {}, nil
	case "stdout":
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dump target %v: %w", name, err)
	}
	return file, func() { file.Close() }, nil
}

func verifyAgainstFile(arrays *ArraySet, path string, tolerance float64) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open reference dump: %v", ErrConfiguration, err)
	}
	defer file.Close()

	reference, err := ParseReferenceDump(file)
	if err != nil {
		return fmt.Errorf("%w: failed to parse reference dump %v: %v", ErrConfiguration, path, err)
	}
	result := Verify(arrays, reference, tolerance)
	fmt.Printf("Verifying against %v... %v\n", path, result)
	if !result.Match {
		return fmt.Errorf("%w: produced arrays differ from %v", ErrMismatch, path)
	}
	return nil
}

func saveResults(path string, kernel string, size DatasetSize, info SysInfo, m Measurement) error {
	storage, err := OpenStorage(path)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.InitResultsDb(info); err != nil {
		return fmt.Errorf("failed to initialize results db %v: %w", path, err)
	}
	if err := storage.SaveMeasurement(kernel, size, m); err != nil {
		return fmt.Errorf("failed to save measurement to %v: %w", path, err)
	}
	Logger.Infof("saved measurement to %v", path)
	return nil
}
