package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sealsel/sealsel/internal/request"
	"github.com/sealsel/sealsel/pkg/seal"
)

// RecommendResult is the JSON payload of a successful recommendation.
type RecommendResult struct {
	Request seal.Request `json:"request"`
	Match   seal.Match   `json:"match"`
}

type recommendFlags struct {
	requestPath string
	bore        float64
	grooveCS    float64
	tempC       int
	medium      string
	pressure    float64
	motion      string
	speed       float64
	prefer      []string
}

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the best catalog seal for an operating envelope",
		Long: `Rank every catalog seal against the requested bore, groove cross-section,
temperature, medium, pressure and motion, and print the best match with an
itemized penalty breakdown.

Preferred materials are a hard filter: seals compatible with none of them are
never considered. The request can be given with flags or as a YAML file.`,
		Example: `  sealsel recommend --bore 95.2 --cs 4 --temp 120 --medium "Mineral Oil" --pressure 150
  sealsel recommend --request envelope.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(cmd, rootOpts)
			if err != nil {
				return err
			}
			return runRecommend(rootOpts, rootOpts.formatter(cmd), req)
		},
	}

	cmd.Flags().StringVarP(&flags.requestPath, "request", "r", "", "YAML request file (overrides the envelope flags)")
	cmd.Flags().Float64Var(&flags.bore, "bore", 0, "target inner diameter in mm")
	cmd.Flags().Float64Var(&flags.grooveCS, "cs", 0, "groove cross-section in mm")
	cmd.Flags().IntVar(&flags.tempC, "temp", 0, "operating temperature in C (default from config)")
	cmd.Flags().StringVar(&flags.medium, "medium", "", "process fluid description (default from config)")
	cmd.Flags().Float64Var(&flags.pressure, "pressure", 0, "system pressure in bar, 0 for no constraint")
	cmd.Flags().StringVar(&flags.motion, "motion", "", "static|dynamic|both (default from config)")
	cmd.Flags().Float64Var(&flags.speed, "speed", 0, "dynamic sliding speed in m/s")
	cmd.Flags().StringSliceVar(&flags.prefer, "prefer", nil, "preferred materials, first one is scored (e.g. FKM,FFKM)")

	return cmd
}

// build assembles the request from the file or the flags, filling unset
// fields from the config defaults.
func (f *recommendFlags) build(cmd *cobra.Command, rootOpts *RootOptions) (seal.Request, error) {
	defaults := rootOpts.Config.Defaults

	if f.requestPath != "" {
		req, err := request.Load(f.requestPath)
		if err != nil {
			return seal.Request{}, WrapExitError(ExitCommandError, "load request", err)
		}
		return applyDefaults(req, rootOpts), nil
	}

	motion, err := seal.ParseMotion(f.motion)
	if err != nil {
		return seal.Request{}, WrapExitError(ExitCommandError, "parse --motion", err)
	}
	req := seal.Request{
		BoreMM:             f.bore,
		GrooveCSMM:         f.grooveCS,
		TempC:              f.tempC,
		Medium:             f.medium,
		SystemPressureBar:  f.pressure,
		SpeedMPS:           f.speed,
		PreferredMaterials: f.prefer,
	}
	if cmd.Flags().Changed("motion") {
		req.Motion = motion
	}
	if !cmd.Flags().Changed("temp") {
		req.TempC = defaults.TempC
	}
	req = applyDefaults(req, rootOpts)

	if err := request.Validate(req); err != nil {
		return seal.Request{}, WrapExitError(ExitCommandError, "invalid request", err)
	}
	return req, nil
}

func applyDefaults(req seal.Request, rootOpts *RootOptions) seal.Request {
	defaults := rootOpts.Config.Defaults
	if req.Medium == "" {
		req.Medium = defaults.Medium
	}
	if req.Motion == "" {
		req.Motion = defaults.Motion
	}
	return req
}

func runRecommend(rootOpts *RootOptions, out *OutputFormatter, req seal.Request) error {
	m, ok := rootOpts.Selector.Recommend(req)
	if !ok {
		rootOpts.Logger.Info("recommend: no match",
			"bore_mm", req.BoreMM, "groove_cs_mm", req.GrooveCSMM,
			"motion", req.Motion.String(), "preferred", req.PreferredMaterials)
		if err := out.Error(ErrCodeNoMatch, "no catalog seal passes the material, motion and speed filters"); err != nil {
			return err
		}
		return WrapExitError(ExitNoMatch, "recommend", seal.ErrNoMatch)
	}

	rootOpts.Logger.Info("recommend: selected",
		"part_number", m.Record.PartNumber, "score", m.Score)

	return out.Success(RecommendResult{Request: req, Match: m}, func(w io.Writer) {
		renderMatch(w, m)
	})
}

func renderMatch(w io.Writer, m seal.Match) {
	fmt.Fprintf(w, "part_number:       %s\n", m.Record.PartNumber)
	fmt.Fprintf(w, "score:             %.2f\n", m.Score)
	fmt.Fprintf(w, "derated_allow_bar: %.2f\n", m.DeratedAllowBar)
	fmt.Fprintf(w, "materials:         %s\n", strings.Join(m.Record.Materials, ", "))
	fmt.Fprintf(w, "motion:            %s\n", m.Record.Motion)
	fmt.Fprintln(w, "factors:")
	for _, f := range m.Factors {
		fmt.Fprintf(w, "  %-20s %12.2f  %s\n", f.Key, f.Penalty, f.Detail)
	}
}
