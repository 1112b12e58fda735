package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rv32i-asm/rv32i-asm/config"
	"github.com/rv32i-asm/rv32i-asm/encoder"
	"github.com/rv32i-asm/rv32i-asm/hexfmt"
)

// Exit codes: 0 success, 1 assembly failure (bad source), 2 usage/IO
// failure (bad flags, unreadable input, unwritable output).
const (
	exitOK       = 0
	exitAssembly = 1
	exitUsage    = 2
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvasm",
		Short: "Two-pass RV32I assembler emitting Intel HEX",
	}

	var configPath string
	var output string

	assembleCmd := &cobra.Command{
		Use:   "assemble [source.s]",
		Short: "Assemble an RV32I source file to Intel HEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				os.Exit(exitUsage)
			}

			lines, err := readLines(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "rvasm: %v\n", err)
				os.Exit(exitUsage)
			}

			asm := encoder.NewAssembler(defaultDict(), cfg.Symtab.LabelBuckets, !cfg.Addressing.ByteMode, cfg.Addressing.DefaultOrigin)
			buf, err := asm.Assemble(lines)
			if err != nil {
				fmt.Fprintf(os.Stderr, "rvasm: %v\n", err)
				os.Exit(exitAssembly)
			}

			out := os.Stdout
			if output != "" {
				f, ferr := os.Create(output)
				if ferr != nil {
					fmt.Fprintf(os.Stderr, "rvasm: %v\n", ferr)
					os.Exit(exitUsage)
				}
				defer f.Close()
				out = f
			}

			w := bufio.NewWriter(out)
			defer w.Flush()
			for {
				n, ok := buf.PopNode()
				if !ok {
					break
				}
				fmt.Fprint(w, hexfmt.FormatDataRecord(n.Word, n.Address))
			}
			if cfg.Output.EmitEOFRecord {
				fmt.Fprint(w, hexfmt.EOFRecord())
			}
			return nil
		},
	}
	assembleCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	assembleCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: platform config dir)")

	symbolsCmd := &cobra.Command{
		Use:   "symbols [source.s]",
		Short: "Assemble and print the resolved label table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				os.Exit(exitUsage)
			}

			lines, err := readLines(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "rvasm: %v\n", err)
				os.Exit(exitUsage)
			}

			asm := encoder.NewAssembler(defaultDict(), cfg.Symtab.LabelBuckets, !cfg.Addressing.ByteMode, cfg.Addressing.DefaultOrigin)
			if _, err := asm.Assemble(lines); err != nil {
				fmt.Fprintf(os.Stderr, "rvasm: %v\n", err)
				os.Exit(exitAssembly)
			}

			for _, name := range labelNames(lines) {
				addr, lerr := asm.Labels.Get(name)
				if lerr != nil {
					continue
				}
				fmt.Printf("%-16s 0x%04X\n", name, addr)
			}
			return nil
		},
	}
	symbolsCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: platform config dir)")

	rootCmd.AddCommand(assembleCmd, symbolsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}

// labelNames scans the raw source for label declarations, in the order
// they're defined, so symbols can be listed without exposing the label
// table's internal bucket order.
func labelNames(lines []string) []string {
	var names []string
	for _, line := range lines {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		first := fields[0]
		if len(first) > 1 && first[len(first)-1] == ':' {
			names = append(names, first[:len(first)-1])
		}
	}
	return names
}

func defaultDict() *encoder.Dictionary {
	dict, err := encoder.NewDefaultDictionary(64)
	if err != nil {
		// The built-in RV32I table is a compile-time constant; a failure
		// here means the binary itself is broken, not the user's input.
		panic(err)
	}
	return dict
}
