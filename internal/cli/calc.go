package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sealsel/sealsel/pkg/seal"
)

// GrooveResult is the JSON payload of the groove command.
type GrooveResult struct {
	BoreMM           float64 `json:"bore_mm"`
	SealType         string  `json:"seal_type"`
	GrooveDiameterMM float64 `json:"groove_diameter_mm"`
}

// SqueezeResult is the JSON payload of the squeeze command.
type SqueezeResult struct {
	PartNumber     string  `json:"part_number,omitempty"`
	CrossSectionMM float64 `json:"cross_section_mm"`
	GrooveCSMM     float64 `json:"groove_cs_mm"`
	SqueezePct     float64 `json:"squeeze_pct"`
}

// DerateResult is the JSON payload of the derate command.
type DerateResult struct {
	TempC           int     `json:"temp_c"`
	Factor          float64 `json:"factor"`
	PartNumber      string  `json:"part_number,omitempty"`
	MaxPressureBar  float64 `json:"max_pressure_bar,omitempty"`
	DeratedAllowBar float64 `json:"derated_allow_bar,omitempty"`
}

// ChemResult is the JSON payload of the chem command.
type ChemResult struct {
	Medium   string      `json:"medium"`
	Material string      `json:"material"`
	Rating   seal.Rating `json:"rating"`
}

// NewGrooveCommand creates the groove command.
func NewGrooveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bore     float64
		sealType string
	)
	cmd := &cobra.Command{
		Use:   "groove",
		Short: "Compute the groove diameter for a bore",
		Long: `Compute the groove diameter for a bore. A seal type containing "Internal"
uses 0.952 x bore, one containing "External" uses 1.048 x bore, anything
else 0.975 x bore. Matching is case-sensitive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := GrooveResult{
				BoreMM:           bore,
				SealType:         sealType,
				GrooveDiameterMM: round6(seal.GrooveDiameter(bore, sealType)),
			}
			return rootOpts.formatter(cmd).Success(res, func(w io.Writer) {
				fmt.Fprintf(w, "groove_diameter_mm: %.3f\n", res.GrooveDiameterMM)
			})
		},
	}
	cmd.Flags().Float64Var(&bore, "bore", 0, "bore diameter in mm")
	cmd.Flags().StringVar(&sealType, "type", "", `seal type, e.g. "Internal Seal" or "External Seal"`)
	return cmd
}

// NewSqueezeCommand creates the squeeze command.
func NewSqueezeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		part     string
		cs       float64
		grooveCS float64
	)
	cmd := &cobra.Command{
		Use:   "squeeze",
		Short: "Compute seal squeeze for a groove depth",
		Long: `Compute the squeeze percentage of a catalog part (--part) or of a nominal
cross-section (--cs) installed in a groove of the given depth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)

			r := seal.Record{CrossSectionMM: cs}
			if part != "" {
				found, ok := rootOpts.Selector.Lookup(part)
				if !ok {
					return notFound(out, part)
				}
				r = found
			}

			pct, err := seal.SqueezePercent(r, grooveCS)
			if err != nil {
				if werr := out.Error(ErrCodeInvalidInput, err.Error()); werr != nil {
					return werr
				}
				return WrapExitError(ExitCommandError, "squeeze", err)
			}

			res := SqueezeResult{
				PartNumber:     r.PartNumber,
				CrossSectionMM: r.CrossSectionMM,
				GrooveCSMM:     grooveCS,
				SqueezePct:     round6(pct),
			}
			return out.Success(res, func(w io.Writer) {
				fmt.Fprintf(w, "squeeze_pct: %.2f\n", res.SqueezePct)
			})
		},
	}
	cmd.Flags().StringVar(&part, "part", "", "catalog part number")
	cmd.Flags().Float64Var(&cs, "cs", 0, "nominal cross-section in mm, used when --part is not given")
	cmd.Flags().Float64Var(&grooveCS, "groove-cs", 0, "groove depth in mm")
	cmd.MarkFlagsMutuallyExclusive("part", "cs")
	return cmd
}

// NewDerateCommand creates the derate command.
func NewDerateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		part  string
		tempC int
	)
	cmd := &cobra.Command{
		Use:   "derate",
		Short: "Show the temperature derating factor and derated pressure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			res := DerateResult{TempC: tempC, Factor: seal.TemperatureDerateFactor(tempC)}

			if part != "" {
				r, ok := rootOpts.Selector.Lookup(part)
				if !ok {
					return notFound(out, part)
				}
				res.PartNumber = r.PartNumber
				res.MaxPressureBar = r.MaxPressureBar
				res.DeratedAllowBar = round6(seal.DeratePressure(r, tempC))
			}

			return out.Success(res, func(w io.Writer) {
				fmt.Fprintf(w, "factor: %.2f\n", res.Factor)
				if res.PartNumber != "" {
					fmt.Fprintf(w, "derated_allow_bar: %.2f (rated %.2f)\n", res.DeratedAllowBar, res.MaxPressureBar)
				}
			})
		},
	}
	cmd.Flags().StringVar(&part, "part", "", "catalog part number")
	cmd.Flags().IntVar(&tempC, "temp", 20, "operating temperature in C")
	return cmd
}

// NewChemCommand creates the chem command.
func NewChemCommand(rootOpts *RootOptions) *cobra.Command {
	var medium, material string
	cmd := &cobra.Command{
		Use:   "chem",
		Short: "Rate chemical compatibility of a material with a medium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if material == "" {
				return WrapExitError(ExitCommandError, "chem", errors.New("--material is required"))
			}
			res := ChemResult{
				Medium:   medium,
				Material: material,
				Rating:   seal.ChemicalCompatibility(medium, material),
			}
			return rootOpts.formatter(cmd).Success(res, func(w io.Writer) {
				fmt.Fprintf(w, "rating: %s\n", res.Rating)
			})
		},
	}
	cmd.Flags().StringVar(&medium, "medium", "", `process fluid, e.g. "Hydraulic Oil"`)
	cmd.Flags().StringVar(&material, "material", "", "material code, e.g. FKM")
	return cmd
}

func notFound(out *OutputFormatter, part string) error {
	msg := fmt.Sprintf("unknown part number %q", part)
	if err := out.Error(ErrCodeNotFound, msg); err != nil {
		return err
	}
	return WrapExitError(ExitCommandError, msg, nil)
}
