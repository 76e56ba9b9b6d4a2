package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bazarkua/molexa/pkg/converter/export"
	"github.com/bazarkua/molexa/pkg/converter/molfile"
	"github.com/bazarkua/molexa/pkg/converter/scene"
)

var convertFlags struct {
	format  string
	formula string
	seed    int64
}

var cmdConvert = &cobra.Command{
	Use:   "convert [molfile]",
	Short: "convert a connection table offline",
	Long: "parses a V2000 connection table from a file (or stdin when the " +
		"argument is omitted), reconstructs depth for flat records and " +
		"writes the requested output format to stdout",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args); err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	cmdConvert.Flags().StringVarP(
		&convertFlags.format, "format", "f", "scene",
		"output format: scene, mol, xyz, obj or mtl",
	)
	cmdConvert.Flags().StringVar(
		&convertFlags.formula, "formula", "",
		"molecular formula recorded in the output",
	)
	cmdConvert.Flags().Int64Var(
		&convertFlags.seed, "seed", 1,
		"seed for the depth reconstruction jitter",
	)
}

func runConvert(args []string) error {
	text, readErr := readConvertInput(args)
	if readErr != nil {
		return readErr
	}

	molecule, processErr := molfile.Process(
		text, convertFlags.formula, molfile.Options{Seed: convertFlags.seed},
	)
	if processErr != nil {
		return processErr
	}

	switch convertFlags.format {
	case "scene":
		marshaled, marshalErr := json.MarshalIndent(scene.Build(molecule), "", "  ")
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Println(string(marshaled))
	case "mol":
		fmt.Print(export.Molfile(molecule))
	case "xyz":
		fmt.Print(export.XYZ(molecule))
	case "obj":
		obj, _ := export.Wavefront(scene.Build(molecule))
		fmt.Print(obj)
	case "mtl":
		_, mtl := export.Wavefront(scene.Build(molecule))
		fmt.Print(mtl)
	default:
		return fmt.Errorf("unknown output format %q", convertFlags.format)
	}
	return nil
}

func readConvertInput(args []string) (string, error) {
	if len(args) == 0 {
		content, readErr := io.ReadAll(os.Stdin)
		return string(content), readErr
	}
	content, readErr := os.ReadFile(args[0])
	return string(content), readErr
}
