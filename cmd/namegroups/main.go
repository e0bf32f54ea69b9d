package main

import (
	"fmt"
	"io"
	"os"

	"github.com/multimediallc/namegroups/internal/config"
	"github.com/multimediallc/namegroups/internal/roster"
	"github.com/multimediallc/namegroups/pkg/people"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// runner carries everything a command touches outside of its arguments.
type runner struct {
	out    io.Writer
	stdin  io.Reader
	piped  func() bool
	logger *logrus.Logger
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		_, _ = fmt.Fprintln(cCtx.App.Writer, cCtx.App.Version)
	}

	r := &runner{out: os.Stdout, stdin: os.Stdin, piped: isStdinPiped, logger: logger}
	err := newApp(r).Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func groupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Value:   "./",
			Usage:   "Directory containing " + config.FileName,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format.  Allowed values are: default, one-line, and json",
		},
	}
}

func newApp(r *runner) *cli.App {
	return &cli.App{
		Name:        "namegroups",
		Usage:       "Group people by first or last name",
		Version:     "v0.1.0",
		Description: "Reads rosters from files, directories or stdin and groups the names they contain. Names are uppercased and missing names are shown as " + people.NotAvailable + ".",
		Writer:      r.out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Verbose output",
			},
		},
		Before: func(cCtx *cli.Context) error {
			if cCtx.Bool("verbose") {
				r.logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:        "by-first",
				Aliases:     []string{"f"},
				Usage:       "List last names for every first name",
				UsageText:   "namegroups by-first [options] [roster|dir]...",
				Description: "Group last names under the first name they share. Reads stdin when no rosters are given and input is piped.",
				Flags:       groupFlags(),
				Action: func(cCtx *cli.Context) error {
					return r.group(cCtx, people.First)
				},
			},
			{
				Name:        "by-last",
				Aliases:     []string{"l"},
				Usage:       "List first names for every last name",
				UsageText:   "namegroups by-last [options] [roster|dir]...",
				Description: "Group first names under the last name they share. Reads stdin when no rosters are given and input is piped.",
				Flags:       groupFlags(),
				Action: func(cCtx *cli.Context) error {
					return r.group(cCtx, people.Last)
				},
			},
			{
				Name:        "group",
				Aliases:     []string{"g"},
				Usage:       "Group by the configured name field",
				UsageText:   "namegroups group [options] [roster|dir]...",
				Description: "Group by --by, or by group_by from " + config.FileName + " when the flag is not set.",
				Flags: append(groupFlags(), &cli.StringFlag{
					Name:    "by",
					Aliases: []string{"b"},
					Usage:   "Name field to group by.  Allowed values are: first and last",
				}),
				Action: func(cCtx *cli.Context) error {
					return r.group(cCtx, "")
				},
			},
			{
				Name:        "scan",
				Aliases:     []string{"s"},
				Usage:       "List roster files found in a directory",
				UsageText:   "namegroups scan [options] [dir]",
				Description: "List the files a directory argument would load, using the include and ignore patterns from " + config.FileName + ".",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "root",
						Aliases: []string{"r"},
						Value:   "./",
						Usage:   "Directory containing " + config.FileName,
					},
				},
				Action: func(cCtx *cli.Context) error {
					return r.scan(cCtx)
				},
			},
		},
	}
}

func (r *runner) readConfig(root string) *config.Config {
	conf, err := config.ReadConfig(root)
	if err != nil {
		r.logger.WithError(err).Warnf("Error reading %s - using default config", config.FileName)
	}
	return conf
}

// group runs the grouping for field, or for the --by flag and config when
// field is empty.
func (r *runner) group(cCtx *cli.Context, field people.Field) error {
	conf := r.readConfig(cCtx.String("root"))

	formatName := conf.Format
	if cCtx.IsSet("format") {
		formatName = cCtx.String("format")
	}
	format, err := validateFormat(formatName)
	if err != nil {
		return err
	}

	if field == "" {
		by := conf.GroupBy
		if cCtx.IsSet("by") {
			by = cCtx.String("by")
		}
		if field, err = people.ParseField(by); err != nil {
			return err
		}
	}

	records, err := r.records(cCtx.Args().Slice(), conf)
	if err != nil {
		return err
	}
	r.logger.Debugf("grouping %d records by %s name", len(records), field)

	return writeGrouping(r.out, people.By(field, records), format)
}

// records loads every roster named in args, expanding directories. With no
// args it falls back to piped stdin.
func (r *runner) records(args []string, conf *config.Config) ([]*people.Person, error) {
	if len(args) == 0 {
		if !r.piped() {
			return nil, fmt.Errorf("at least one roster file or directory is required when stdin is not piped")
		}
		lines, err := scanLines(r.stdin)
		if err != nil {
			return nil, err
		}
		r.logger.Debugf("read %d lines from stdin", len(lines))
		return roster.ParseLines(lines), nil
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			return nil, fmt.Errorf("empty roster path is not allowed")
		}
		stat, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("roster not found: %s", arg)
		}
		if !stat.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := roster.Discover(arg, conf.Scan.Include, conf.Scan.Ignore)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			r.logger.WithField("dir", arg).Warn("no roster files found")
		}
		paths = append(paths, found...)
	}
	return roster.Load(paths, r.logger)
}

func (r *runner) scan(cCtx *cli.Context) error {
	conf := r.readConfig(cCtx.String("root"))
	target := "."
	if cCtx.NArg() > 0 {
		target = cCtx.Args().First()
	}
	found, err := roster.Discover(target, conf.Scan.Include, conf.Scan.Ignore)
	if err != nil {
		return err
	}
	for _, path := range found {
		if _, err := fmt.Fprintln(r.out, path); err != nil {
			return err
		}
	}
	return nil
}
