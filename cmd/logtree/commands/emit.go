package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/logger"
	"github.com/philipp01105/logtree/sink"
)

type emitOptions struct {
	level           string
	threshold       string
	loggerLevel     string
	parents         []string
	location        bool
	timestampFormat string
}

func newEmitCmd() *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit <logger> <message>...",
		Short: "Log a message through a named logger",
		Long: `Log a message through a named logger.

--parent may be given several times to build a chain above the logger:
"emit app.db.pool msg --parent app.db --parent app" makes app.db the parent
of app.db.pool and app the parent of app.db. The root logger never receives
cascaded records.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts, args[0], strings.Join(args[1:], " "))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.level, "level", "l", "INFO", "level of the message")
	f.StringVarP(&opts.threshold, "threshold", "t", "WARNING", "initial level of the root logger, copied by new loggers")
	f.StringVar(&opts.loggerLevel, "logger-level", "", "override the level of every wired logger")
	f.StringArrayVarP(&opts.parents, "parent", "p", nil, "parent chain above the logger, nearest first")
	f.BoolVar(&opts.location, "location", false, "attach the source location of the call")
	f.StringVar(&opts.timestampFormat, "timestamp-format", "", "Go time layout for timestamps (default RFC3339)")

	return cmd
}

func runEmit(cmd *cobra.Command, opts *emitOptions, name, msg string) error {
	level, err := core.ParseLevel(opts.level)
	if err != nil {
		return errors.Wrap(err, "--level")
	}
	threshold, err := core.ParseLevel(opts.threshold)
	if err != nil {
		return errors.Wrap(err, "--threshold")
	}

	fallback := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zapcore.WarnLevel,
	))

	reg := logger.NewBuilder().
		WithSink(sink.New(sink.Config{Writer: cmd.OutOrStdout()})).
		WithRootLevel(threshold).
		WithTimestampFormat(opts.timestampFormat).
		WithFallback(fallback).
		Build()

	chain := []*logger.Logger{reg.GetLogger(name)}
	for _, p := range opts.parents {
		parent := reg.GetLogger(p)
		chain[len(chain)-1].SetParent(parent)
		chain = append(chain, parent)
	}

	if opts.loggerLevel != "" {
		ll, err := core.ParseLevel(opts.loggerLevel)
		if err != nil {
			return errors.Wrap(err, "--logger-level")
		}
		for _, l := range chain {
			l.SetLevel(ll)
		}
	}

	rec := core.NewRecord(level, name, msg)
	if opts.location {
		rec = core.GetCaller(0).Locate(rec)
	}
	return chain[0].LogRecord(level, rec)
}
