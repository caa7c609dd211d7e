package config

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/model"
	"github.com/uyouii/posterior-shades/quantile"
	"github.com/uyouii/posterior-shades/utils"
	"go.uber.org/zap"

	// registers the "kde" estimator
	_ "github.com/uyouii/posterior-shades/kde"
)

const (
	KeyChain     = "chain"
	KeyOutput    = "output"
	KeyXMin      = "x_min"
	KeyXMax      = "x_max"
	KeyPoints    = "points"
	KeyHalfWidth = "half_width"
	KeyEstimator = "estimator"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyTitle     = "title"
	KeyXLabel    = "x_label"
	KeyYLabel    = "y_label"
	KeyShade     = "shade_style"
	KeyLine      = "line_style"
	KeyDebug     = "debug"
)

type Config struct {
	Chain     string  `mapstructure:"chain"`
	Output    string  `mapstructure:"output"`
	XMin      float64 `mapstructure:"x_min"`
	XMax      float64 `mapstructure:"x_max"`
	Points    int     `mapstructure:"points"`
	HalfWidth float64 `mapstructure:"half_width"`
	Estimator string  `mapstructure:"estimator"`
	Width     float64 `mapstructure:"width"`  // inches
	Height    float64 `mapstructure:"height"` // inches
	Title     string  `mapstructure:"title"`
	XLabel    string  `mapstructure:"x_label"`
	YLabel    string  `mapstructure:"y_label"`
	Debug     bool    `mapstructure:"debug"`

	ShadeStyle model.Style `mapstructure:"-"`
	LineStyle  model.Style `mapstructure:"-"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, "shade.png")
	v.SetDefault(KeyXMin, 0.0)
	v.SetDefault(KeyXMax, 1.0)
	v.SetDefault(KeyPoints, 100)
	v.SetDefault(KeyHalfWidth, 0.341)
	v.SetDefault(KeyEstimator, "cunnane")
	v.SetDefault(KeyWidth, 6.0)
	v.SetDefault(KeyHeight, 4.0)
	v.SetDefault(KeyShade, map[string]interface{}{"color": "gray", "alpha": 0.5})
	v.SetDefault(KeyLine, map[string]interface{}{"color": "black"})
}

// Load reads the config file set on v (if any) and validates the result.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	logger := utils.GetLogger(ctx)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			logger.Error("read config failed", zap.String("file", v.ConfigFileUsed()), zap.Error(err))
			return nil, errors.Wrap(err, "read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	var err error
	if cfg.ShadeStyle, err = model.StyleFromMap(v.GetStringMap(KeyShade)); err != nil {
		return nil, errors.Wrap(err, KeyShade)
	}
	if cfg.LineStyle, err = model.StyleFromMap(v.GetStringMap(KeyLine)); err != nil {
		return nil, errors.Wrap(err, KeyLine)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("config loaded", zap.Any("config", cfg))
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Chain == "" {
		return errors.Wrap(common.ErrorInvalidValue, "chain file is required")
	}
	if c.Points < 1 {
		return errors.Wrapf(common.ErrorInvalidValue, "points must be positive, got %d", c.Points)
	}
	if c.XMax < c.XMin {
		return errors.Wrapf(common.ErrorInvalidValue, "x_max %v below x_min %v", c.XMax, c.XMin)
	}
	if c.HalfWidth < 0 || c.HalfWidth > 0.5 {
		return errors.Wrapf(common.ErrorInvalidQuantile, "half_width %v out of [0, 0.5]", c.HalfWidth)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(common.ErrorInvalidValue, "bad image size %vx%v", c.Width, c.Height)
	}
	if _, err := quantile.ByName(c.Estimator); err != nil {
		return err
	}
	return nil
}

func (c *Config) QuantileEstimator() quantile.Estimator {
	e, err := quantile.ByName(c.Estimator)
	if err != nil {
		return quantile.Default
	}
	return e
}
