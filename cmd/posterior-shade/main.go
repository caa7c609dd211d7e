package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/posterior-shades/chain"
	"github.com/uyouii/posterior-shades/config"
	"github.com/uyouii/posterior-shades/shade"
	"github.com/uyouii/posterior-shades/surface"
	"github.com/uyouii/posterior-shades/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var cfgFile string

var useDevelopmentLogger = utils.UseDevelopmentLogger

var rootCmd = &cobra.Command{
	Use:   "posterior-shade",
	Short: "Plot the median and confidence band of chain predictions",
	Long: `posterior-shade reads a csv chain of polynomial coefficients (highest degree
first, one sample per row), evaluates every sample over an x grid and draws
the pointwise median with a shaded band between two quantiles.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), viper.GetViper())
	},
}

func init() {
	v := viper.GetViper()
	config.SetDefaults(v)

	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("chain", "", "chain csv file")
	flags.StringP("output", "o", "shade.png", "output image, format from extension")
	flags.Float64("half-width", shade.DefaultHalfWidth, "band covers quantiles 0.5 +- half-width")
	flags.String("estimator", "cunnane", "quantile estimator: cunnane, linear, weibull, median-unbiased, hazen, empirical, lininterp, kde")
	flags.Int("points", 100, "number of x grid points")
	flags.Bool("debug", false, "development logging")

	bindings := map[string]string{
		config.KeyChain:     "chain",
		config.KeyOutput:    "output",
		config.KeyHalfWidth: "half-width",
		config.KeyEstimator: "estimator",
		config.KeyPoints:    "points",
		config.KeyDebug:     "debug",
	}
	logger := utils.GetLogger(context.Background())
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			logger.Error("bind flag failed", zap.String("flag", flag), zap.String("key", key), zap.Error(err))
		}
	}

	cobra.OnInitialize(func() {
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		}
	})
}

func run(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return err
	}

	// after Load so a debug key in the config file counts too
	if cfg.Debug {
		restore, err := useDevelopmentLogger()
		if err != nil {
			return err
		}
		defer restore()
	}
	logger := utils.GetLogger(ctx)

	f, err := os.Open(cfg.Chain)
	if err != nil {
		return errors.Wrap(err, "open chain")
	}
	defer f.Close()

	rows, err := chain.ReadCSV(ctx, f)
	if err != nil {
		return err
	}

	s := shade.New(chain.Linspace(cfg.XMin, cfg.XMax, cfg.Points), cfg.ShadeStyle, cfg.LineStyle)
	s.SetEstimator(cfg.QuantileEstimator())
	if err := chain.Fill(ctx, s, rows); err != nil {
		return err
	}

	canvas := surface.NewGonum(cfg.Title, cfg.XLabel, cfg.YLabel)
	if _, err := s.Band(canvas, cfg.HalfWidth, nil); err != nil {
		return errors.Wrap(err, "draw band")
	}
	if _, err := s.Line(canvas, nil); err != nil {
		return errors.Wrap(err, "draw median")
	}

	if err := canvas.Save(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch, cfg.Output); err != nil {
		logger.Error("save plot failed", zap.String("output", cfg.Output), zap.Error(err))
		return err
	}

	logger.Info("plot saved", zap.String("output", cfg.Output), zap.Int("curves", s.Len()),
		zap.String("estimator", cfg.Estimator), zap.Float64("half_width", cfg.HalfWidth))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
