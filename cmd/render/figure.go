package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/pkg/validator"
	"github.com/infectieradar-dashboard/internal/usecase/dto"
)

func newFigureCmd(flags *rootFlags) *cobra.Command {
	var req dto.FigureRequest

	cmd := &cobra.Command{
		Use:   "figure",
		Short: "Print the Plotly JSON of one figure",
		Long: fmt.Sprintf(`Print one figure of a locale page as {data, layout, config}.

Figures: %s`, strings.Join(domain.FigureIDs(), ", ")),
		Example: `  render figure --locale fr-be --name province-map`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Locale = strings.ToLower(req.Locale)
			if err := validator.Validate(&req); err != nil {
				return fmt.Errorf("invalid figure request: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			dashboard, _, err := openDashboard(ctx, flags)
			if err != nil {
				return err
			}
			defer dashboard.Close()

			fig, err := dashboard.UseCase.Figure(ctx, req)
			if err != nil {
				return err
			}

			out, err := sonic.ConfigStd.MarshalIndent(fig.Figure, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVar(&req.Locale, "locale", domain.DefaultLocale().Code, "Locale code")
	cmd.Flags().StringVar(&req.Figure, "name", "", "Figure id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
