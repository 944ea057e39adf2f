package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/usecase"
	"github.com/infectieradar-dashboard/internal/view"
)

func newPagesCmd(flags *rootFlags) *cobra.Command {
	var (
		outDir  string
		locales []string
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Write DIR/<route>/index.html for each locale",
		Example: `  render pages --out public
  render pages --out public --locale nl-be --locale fr-be --symptom-week 2024/06/19`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectLocales(locales)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			dashboard, log, err := openDashboard(ctx, flags)
			if err != nil {
				return err
			}
			defer dashboard.Close()

			renderer, err := view.New()
			if err != nil {
				return err
			}

			written, err := renderPages(ctx, dashboard.UseCase, renderer, outDir, selected, log)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public", "Output directory")
	cmd.Flags().StringSliceVarP(&locales, "locale", "l", nil, "Locale code to render (repeatable, default: all)")

	return cmd
}

// selectLocales resolves locale flags; no flags means every locale in menu order.
func selectLocales(codes []string) ([]domain.Locale, error) {
	if len(codes) == 0 {
		return domain.Locales(), nil
	}
	selected := make([]domain.Locale, 0, len(codes))
	for _, code := range codes {
		loc, ok := domain.LocaleByCode(code)
		if !ok {
			return nil, fmt.Errorf("unknown locale %q", code)
		}
		selected = append(selected, loc)
	}
	return selected, nil
}

// renderPages builds the locales concurrently. A failed locale writes nothing;
// the others are still written and the first error is returned.
func renderPages(
	ctx context.Context,
	uc *usecase.DashboardUseCase,
	renderer *view.Renderer,
	outDir string,
	locales []domain.Locale,
	log *zap.Logger,
) ([]string, error) {
	paths := make([]string, len(locales))

	var g errgroup.Group
	for i, loc := range locales {
		g.Go(func() error {
			page, err := uc.BuildPage(ctx, loc.Code)
			if err != nil {
				return fmt.Errorf("%s: %w", loc.Code, err)
			}

			var buf bytes.Buffer
			if err := renderer.Page(&buf, page); err != nil {
				return fmt.Errorf("%s: render: %w", loc.Code, err)
			}

			dir := filepath.Join(outDir, strings.TrimPrefix(loc.Route, "/"))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("%s: %w", loc.Code, err)
			}
			path := filepath.Join(dir, "index.html")
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("%s: %w", loc.Code, err)
			}

			log.Info("Page written", zap.String("locale", loc.Code), zap.String("path", path))
			paths[i] = path
			return nil
		})
	}
	err := g.Wait()

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}
	return written, err
}
