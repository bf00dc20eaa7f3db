package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/milvus-io/pilot/bapps"
	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/configs"
	"github.com/milvus-io/pilot/history"
	"github.com/milvus-io/pilot/states"
)

type options struct {
	oneLineCommand string
	simple         bool
	configPath     string
	printVersion   bool
}

func main() {
	opt := &options{}
	root := &cobra.Command{
		Use:          "pilot",
		Short:        "interactive command line with typed parameters",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return run(opt)
		},
	}
	flags := root.Flags()
	flags.StringVar(&opt.oneLineCommand, "olc", "", "one line command execution mode")
	flags.BoolVar(&opt.simple, "simple", false, "use simple ui without suggestion and history")
	flags.StringVar(&opt.configPath, "config", configs.DefaultConfigPath, "config folder path")
	flags.BoolVar(&opt.printVersion, "version", false, "print version")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt *options) error {
	// Print current pilot version
	if opt.printVersion {
		fmt.Println("Pilot Version", common.Version)
		return nil
	}

	config, err := configs.NewConfig(opt.configPath)
	if err != nil {
		// run by default, just printing warning.
		fmt.Println("[WARN] load config file failed, running in default setting", err.Error())
	}
	if config == nil {
		config = &configs.Config{}
	}

	logger, closeLog := newLogger(config)
	defer closeLog()

	var app bapps.BApp
	hh := history.NewHistoryHelper(config.ConfigPath,
		history.WithSize(config.GetHistorySize()),
		history.WithLogger(logger))
	defer hh.Close()

	switch {
	case opt.simple:
		app = bapps.NewSimpleApp(bapps.WithLogger(logger))
	case len(opt.oneLineCommand) > 0:
		app = bapps.NewOlcApp(opt.oneLineCommand, bapps.WithLogger(logger))
	default:
		// go-prompt may leave the terminal in raw mode
		defer bapps.RestoreTerminal()
		app = bapps.NewPromptApp(config, bapps.WithLogger(logger), bapps.WithHistory(hh))
	}

	start, err := states.Start(config, states.WithLogger(logger), states.WithHistory(hh))
	if err != nil {
		return errors.Wrap(err, "failed to setup commands")
	}
	app.Run(start)
	return nil
}

// newLogger returns a logger writing the rotated debug log of config.
func newLogger(config *configs.Config) (*zap.Logger, func()) {
	level, err := zapcore.ParseLevel(config.GetLogLevel())
	if err != nil {
		level = zapcore.InfoLevel
	}
	file := &lumberjack.Logger{
		Filename:   config.GetLogFile(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(file), level)
	logger := zap.New(core, zap.AddCaller())
	return logger, func() {
		_ = logger.Sync()
		file.Close()
	}
}
