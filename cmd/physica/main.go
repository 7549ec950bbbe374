package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/physica/internal/config"
	"github.com/san-kum/physica/internal/dispatch"
	"github.com/san-kum/physica/internal/parse"
	"github.com/san-kum/physica/internal/registry"
	"github.com/san-kum/physica/internal/server"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/storage"
	"github.com/san-kum/physica/internal/tui"
)

var (
	dataDir    string
	configFile string
	addr       string
	noArchive  bool
	// Sweep parameters
	sweepVar   string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	sweepOut   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physica",
		Short: "symbolic-numeric physics problem solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive session when no command given.
			d, err := newDispatcher()
			if err != nil {
				return err
			}
			return tui.Run(d)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	solveCmd := &cobra.Command{
		Use:   "solve [assignments]",
		Short: `solve for the unknown, e.g. physica solve "Q=100, W=40"`,
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&noArchive, "no-archive", false, "skip writing the solve record")

	explainCmd := &cobra.Command{
		Use:   "explain [assignments]",
		Short: "show every solver's filter verdicts for an input",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}

	solversCmd := &cobra.Command{
		Use:   "solvers",
		Short: "list registered solvers",
		RunE:  runSolvers,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [assignments]",
		Short: "re-solve across a range of one input and plot the derived value",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepVar, "var", "", "input symbol to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of sweep points")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "derived symbol to plot (default: the newly derived one)")
	sweepCmd.MarkFlagRequired("var")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list archived solve records",
		RunE:  runHistory,
	}

	exportCmd := &cobra.Command{
		Use:   "export [record_id] [csv_path]",
		Short: "export an archived record to CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(args[0], args[1])
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher()
			if err != nil {
				return err
			}
			return tui.Run(d)
		},
	}

	rootCmd.AddCommand(solveCmd, explainCmd, solversCmd, sweepCmd, historyCmd, exportCmd, serveCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newDispatcher builds the production dispatcher, carrying the config
// file's inference thresholds when one was given.
func newDispatcher() (*dispatch.Dispatcher, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return dispatch.New(registry.Default(), dispatch.WithThresholds(cfg.Thresholds)), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	store, err := parse.Assignments(args[0])
	if err != nil {
		return err
	}
	input := store.Map()

	d, err := newDispatcher()
	if err != nil {
		return err
	}
	out := d.Dispatch(store)

	if !noArchive {
		if _, err := storage.New(dataDir).Save(input, out); err != nil {
			fmt.Fprintf(os.Stderr, "warning: archiving failed: %v\n", err)
		}
	}

	fmt.Printf("context: %s / %s\n", out.Context.Regime, out.Context.Substance)
	switch out.Status {
	case dispatch.Solved:
		fmt.Printf("solved by %s (%s)\n\n", out.Solver, out.Domain)
		units := map[string]string{}
		for _, s := range d.Solvers() {
			if s.Name() != out.Solver {
				continue
			}
			if um, ok := s.(solver.UnitMapper); ok {
				units = um.OutputUnits()
			}
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, sym := range out.Values.Names() {
			val, _ := out.Values.Get(sym)
			derived := ""
			if _, wasInput := input[sym]; !wasInput {
				derived = "← derived"
			}
			fmt.Fprintf(w, "  %s\t= %g %s\t%s\n", sym, val, units[sym], derived)
		}
		return w.Flush()
	case dispatch.NoMatch:
		fmt.Printf("no matching law: %s\n", out.Reason)
	case dispatch.Failed:
		fmt.Printf("%s failed: %s\n", out.Solver, out.Reason)
	}
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	store, err := parse.Assignments(args[0])
	if err != nil {
		return err
	}

	d, err := newDispatcher()
	if err != nil {
		return err
	}
	ctx, verdicts := d.Explain(store)
	fmt.Printf("context: %s / %s\n\n", ctx.Regime, ctx.Substance)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tDOMAIN\tPRIORITY\tCONTEXT\tNAMES\tVALUES\tELIGIBLE")
	for _, v := range verdicts {
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\t%v\t%v\n",
			v.Name, v.Domain, v.Priority, v.ContextOK, v.Structural, v.Validated, v.Eligible())
	}
	return w.Flush()
}

func runSolvers(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tDOMAIN\tPRIORITY\tEQUATION\tDESCRIPTION")
	for _, s := range d.Solvers() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			s.Name(), s.Domain(), s.Priority(), solver.EquationOf(s), solver.DescriptionOf(s))
	}
	return w.Flush()
}

func runHistory(cmd *cobra.Command, args []string) error {
	records, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no records")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTATUS\tSOLVER\tINPUT")
	for _, rec := range records {
		inputs := make([]string, 0, len(rec.Input))
		for sym, val := range rec.Input {
			inputs = append(inputs, fmt.Sprintf("%s=%g", sym, val))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Status, rec.Solver, strings.Join(inputs, ","))
	}
	return w.Flush()
}

// runSweep re-dispatches the same assignments with one input varied
// across [from, to] and plots the derived value.
func runSweep(cmd *cobra.Command, args []string) error {
	base, err := parse.Assignments(args[0])
	if err != nil {
		return err
	}
	if !base.Has(sweepVar) {
		return fmt.Errorf("sweep variable %q is not among the inputs", sweepVar)
	}
	if sweepSteps < 2 {
		return fmt.Errorf("need at least 2 sweep steps")
	}

	d, err := newDispatcher()
	if err != nil {
		return err
	}
	series := make([]float64, 0, sweepSteps)
	outSym := sweepOut
	skipped := 0

	for i := 0; i < sweepSteps; i++ {
		x := sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)
		trial := base.Clone()
		if err := trial.Set(sweepVar, x); err != nil {
			return err
		}
		before := trial.Map()

		out := d.Dispatch(trial)
		if out.Status != dispatch.Solved {
			skipped++
			continue
		}
		if outSym == "" {
			for _, sym := range out.Values.Names() {
				if _, wasInput := before[sym]; !wasInput {
					outSym = sym
					break
				}
			}
		}
		val, ok := out.Values.Get(outSym)
		if !ok {
			skipped++
			continue
		}
		series = append(series, val)
	}

	if len(series) == 0 {
		return fmt.Errorf("no sweep point produced a solution")
	}

	fmt.Printf("%s over %s ∈ [%g, %g]\n\n", outSym, sweepVar, sweepFrom, sweepTo)
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(12), asciigraph.Width(64)))
	if skipped > 0 {
		fmt.Printf("\n(%d of %d points had no solution)\n", skipped, sweepSteps)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = addr
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	d := dispatch.New(registry.Default(), dispatch.WithThresholds(cfg.Thresholds))
	srv := server.New(d, storage.New(cfg.DataDir))
	return srv.Run(cfg.Server.Addr)
}
