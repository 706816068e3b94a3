// Command msaexec drives the msa integer-lane emulation core from the
// command line: replay a JSON instruction trace, run the literal
// boundary self-test, or fuzz the universal properties.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/oisee/msa-core/pkg/conform"
	"github.com/oisee/msa-core/pkg/msa"
	"github.com/spf13/cobra"
)

// traceInstr is one line of a JSON instruction trace: the mnemonic (as
// it appears in pkg/msa's Catalog) plus a df suffix and whichever
// operand fields that instruction family reads.
type traceInstr struct {
	Op  string `json:"op"`
	DF  string `json:"df,omitempty"`
	WD  int    `json:"wd"`
	WS  int    `json:"ws"`
	WT  int    `json:"wt,omitempty"`
	Imm uint64 `json:"imm,omitempty"`
	GPR int    `json:"gpr,omitempty"`
	M   uint   `json:"m,omitempty"`
}

// traceState is the JSON-serializable snapshot of a CPU's register
// bank, used both to seed "exec" and to print its result.
type traceState struct {
	VReg [msa.NumRegs]string `json:"vreg"`
	GPR  [msa.NumRegs]uint64 `json:"gpr,omitempty"`
}

func main() {
	root := &cobra.Command{
		Use:   "msaexec",
		Short: "MSA integer-lane core: replay traces, self-test, and fuzz",
	}
	root.AddCommand(newExecCmd(), newSelftestCmd(), newFuzzCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newExecCmd() *cobra.Command {
	var inputPath, statePath string
	cmd := &cobra.Command{
		Use:   "exec [trace.json]",
		Short: "Execute a JSON instruction trace and print the resulting register state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath = args[0]
			trace, err := loadTrace(inputPath)
			if err != nil {
				return fmt.Errorf("load trace: %w", err)
			}

			c := msa.NewCPU()
			if statePath != "" {
				if err := loadState(statePath, c); err != nil {
					return fmt.Errorf("load initial state: %w", err)
				}
			}

			for i, ti := range trace {
				op, operands, err := resolveInstr(ti)
				if err != nil {
					return fmt.Errorf("instruction %d: %w", i, err)
				}
				if execErr := msa.Guarded(func() {
					msa.Exec(c, op, operands)
				}); execErr != nil {
					return fmt.Errorf("instruction %d (%s): %w", i, ti.Op, execErr)
				}
			}

			return printState(c)
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "initial register state JSON file (default: all zero)")
	return cmd
}

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the literal boundary scenarios and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := conform.RunScenarios()
			for _, s := range conform.Scenarios {
				status := "PASS"
				for _, f := range failures {
					if f.Property == s.Name {
						status = "FAIL: " + f.Detail
					}
				}
				fmt.Printf("  %-40s %s\n", s.Name, status)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d scenario(s) failed", len(failures))
			}
			fmt.Println("all scenarios passed")
			return nil
		},
	}
}

func newFuzzCmd() *cobra.Command {
	var numWorkers int
	var trials int64
	var verbose bool
	var outputPath string
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run random property trials against the kernel library",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := conform.NewRunner(numWorkers)
			fmt.Printf("Running %d propert(y/ies), %d trials each, %d workers\n",
				len(conform.Properties), trials, runner.NumWorkers)
			runner.Run(conform.Properties, trials, verbose)

			checked, failed := runner.Stats()
			fmt.Printf("\n%d trials checked, %d failed\n", checked, failed)
			for _, f := range runner.Failures {
				fmt.Printf("  FAIL %s (trial %d): %s\n", f.Property, f.Trial, f.Detail)
			}

			if outputPath != "" {
				rep := conform.NewReport(runner, trials)
				if err := rep.Save(outputPath); err != nil {
					return fmt.Errorf("save report: %w", err)
				}
				fmt.Printf("report written to %s\n", outputPath)
			}

			if failed > 0 {
				return fmt.Errorf("%d trial(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numWorkers, "workers", 0, "number of workers (0 = NumCPU)")
	cmd.Flags().Int64Var(&trials, "trials", 1000, "trials per property")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress every 5 seconds")
	cmd.Flags().StringVar(&outputPath, "output", "", "gob report output path")
	return cmd
}

func loadTrace(path string) ([]traceInstr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var trace []traceInstr
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, err
	}
	return trace, nil
}

func loadState(path string, c *msa.CPU) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var st traceState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	for i, hexReg := range st.VReg {
		if hexReg == "" {
			continue
		}
		decoded, err := hex.DecodeString(hexReg)
		if err != nil {
			return fmt.Errorf("vreg[%d]: %w", i, err)
		}
		if len(decoded) != 16 {
			return fmt.Errorf("vreg[%d]: want 16 bytes, got %d", i, len(decoded))
		}
		copy(c.VReg[i][:], decoded)
	}
	c.GPR = st.GPR
	return nil
}

func printState(c *msa.CPU) error {
	var st traceState
	for i := range c.VReg {
		st.VReg[i] = hex.EncodeToString(c.VReg[i][:])
	}
	st.GPR = c.GPR
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

func resolveInstr(ti traceInstr) (msa.OpCode, msa.Operands, error) {
	op, ok := msa.Lookup(ti.Op)
	if !ok {
		return 0, msa.Operands{}, fmt.Errorf("unknown mnemonic %q", ti.Op)
	}
	df := msa.Byte
	if ti.DF != "" {
		d, ok := msa.DFByName(ti.DF)
		if !ok {
			return 0, msa.Operands{}, fmt.Errorf("unknown df %q", ti.DF)
		}
		df = d
	}
	operands := msa.Operands{
		DF:  df,
		WD:  ti.WD,
		WS:  ti.WS,
		WT:  ti.WT,
		Imm: ti.Imm,
		GPR: ti.GPR,
		M:   ti.M,
	}
	return op, operands, nil
}
