package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sealsel/sealsel/pkg/seal"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the seal catalog in ranking order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := rootOpts.Selector.Catalog()
			return rootOpts.formatter(cmd).Success(records, func(w io.Writer) {
				renderCatalog(w, records)
			})
		},
	}
}

func renderCatalog(w io.Writer, records []seal.Record) {
	fmt.Fprintf(w, "%-12s %7s %6s %7s %6s %6s %-8s %9s  %s\n",
		"PART", "ID_MM", "CS_MM", "OD_MM", "P_BAR", "T_MAX", "MOTION", "SPEED_MS", "MATERIALS")
	for _, r := range records {
		speed := "-"
		if r.SpeedLimited() {
			speed = fmt.Sprintf("%.2f", r.MaxSpeedMPS)
		}
		fmt.Fprintf(w, "%-12s %7.2f %6.2f %7.2f %6.0f %6.0f %-8s %9s  %s\n",
			r.PartNumber, r.InnerDiameterMM, r.CrossSectionMM, r.OuterDiameterMM,
			r.MaxPressureBar, r.MaxTempC, r.Motion, speed, strings.Join(r.Materials, ","))
	}
}
