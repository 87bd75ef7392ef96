package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/pflag"

	"github.com/vitalvas/secretrecover/sharefile"
	"github.com/vitalvas/secretrecover/xconfig"
)

const (
	ConfigKey       = "config"
	StrictConfigKey = "strict-config"
	LogLevelKey     = "log-level"
	LogTypeKey      = "log-type"
	OutputKey       = "output"
	VerifyKey       = "verify"
	WorkersKey      = "workers"

	SecretKey          = "secret"
	ThresholdKey       = "threshold"
	SharesKey          = "shares"
	BaseKey            = "base"
	FormatKey          = "format"
	CoefficientBitsKey = "coefficient-bits"
)

var errNoInput = errors.New("no input files")

func addRecoverFlags(flags *pflag.FlagSet) {
	flags.String(ConfigKey, "", "Path to a JSON or YAML config file")
	flags.Bool(StrictConfigKey, false, "Reject unknown keys in the config file")
	flags.String(LogLevelKey, "info", "Log level: debug, info, warn or error")
	flags.String(LogTypeKey, "text", "Log format: text or json")
	flags.String(OutputKey, "text", "Result format: text or json")
	flags.Bool(VerifyKey, false, "Check that shares beyond the threshold lie on the recovered polynomial")
	flags.Int(WorkersKey, 4, "Maximum number of files processed at once")
}

// parseRecoverFlags loads the config file and environment, then applies the
// flags that were set explicitly. Remaining arguments are the input files.
func parseRecoverFlags(flags *pflag.FlagSet, args []string) (*Config, []string, error) {
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	configPath, err := flags.GetString(ConfigKey)
	if err != nil {
		return nil, nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, nil, fmt.Errorf("config file: %w", err)
		}
	}

	strict, err := flags.GetBool(StrictConfigKey)
	if err != nil {
		return nil, nil, err
	}

	opts := []xconfig.Option{xconfig.WithFiles(configPath), xconfig.WithEnv(envPrefix)}
	if strict {
		opts = append(opts, xconfig.WithStrict())
	}

	conf := &Config{}
	if err := xconfig.Load(conf, opts...); err != nil {
		return nil, nil, err
	}

	if flags.Changed(LogLevelKey) {
		if conf.Logger.Level, err = flags.GetString(LogLevelKey); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed(LogTypeKey) {
		if conf.Logger.LogType, err = flags.GetString(LogTypeKey); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed(OutputKey) {
		if conf.Output, err = flags.GetString(OutputKey); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed(VerifyKey) {
		if conf.Verify, err = flags.GetBool(VerifyKey); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed(WorkersKey) {
		if conf.Workers, err = flags.GetInt(WorkersKey); err != nil {
			return nil, nil, err
		}
	}

	files := flags.Args()
	if len(files) == 0 {
		return nil, nil, errNoInput
	}

	return conf, files, nil
}

type splitConfig struct {
	Secret          *big.Int
	Threshold       int
	Shares          int
	Base            int
	Format          sharefile.Format
	CoefficientBits int
}

func addSplitFlags(flags *pflag.FlagSet) {
	flags.String(SecretKey, "", "Secret to split, in base 10")
	flags.Int(ThresholdKey, 3, "Number of shares required to recover the secret")
	flags.Int(SharesKey, 5, "Number of shares to generate")
	flags.Int(BaseKey, 10, "Base used to encode share values (2-36)")
	flags.String(FormatKey, string(sharefile.FormatJSON), "Record format: json or yaml")
	flags.Int(CoefficientBitsKey, 64, "Bit size of the random polynomial coefficients")
}

func parseSplitFlags(flags *pflag.FlagSet, args []string) (*splitConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	secretStr, err := flags.GetString(SecretKey)
	if err != nil {
		return nil, err
	}

	secret, ok := new(big.Int).SetString(secretStr, 10)
	if !ok {
		return nil, fmt.Errorf("invalid --%s %q: expected a base 10 integer", SecretKey, secretStr)
	}

	threshold, err := flags.GetInt(ThresholdKey)
	if err != nil {
		return nil, err
	}

	shares, err := flags.GetInt(SharesKey)
	if err != nil {
		return nil, err
	}

	base, err := flags.GetInt(BaseKey)
	if err != nil {
		return nil, err
	}

	formatStr, err := flags.GetString(FormatKey)
	if err != nil {
		return nil, err
	}

	format, err := sharefile.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	bits, err := flags.GetInt(CoefficientBitsKey)
	if err != nil {
		return nil, err
	}

	return &splitConfig{
		Secret:          secret,
		Threshold:       threshold,
		Shares:          shares,
		Base:            base,
		Format:          format,
		CoefficientBits: bits,
	}, nil
}
