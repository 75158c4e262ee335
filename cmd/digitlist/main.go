package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calebcase/digitlist"
	"github.com/calebcase/digitlist/radix"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Fatal("failed to load config")
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		log.WithFields(log.Fields{
			"args": os.Args[1:],
			"err":  err,
		}).Fatal("command failed")
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "read the number from the first line of `PATH`",
	}
}

// input returns the list named by the file flag or the argument at position
// i. Bad input degrades to an empty list like the list constructors do.
func input(c *cli.Context, i int) (*digitlist.List, error) {
	if path := c.String("file"); path != "" && i == 0 {
		return digitlist.FromFile(path), nil
	}

	if c.Args().Len() <= i {
		return nil, cli.Exit(fmt.Sprintf("missing argument %d", i+1), 2)
	}

	return digitlist.FromString(c.Args().Get(i)), nil
}

func newApp(cfg *Config) *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "arbitrary precision numbers stored as digit lists",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
				Value: cfg.Debug,
			},
		},
		Before: func(c *cli.Context) error {
			cfg.Debug = c.Bool("debug")
			cfg.Apply()

			log.WithFields(log.Fields{
				"config": *cfg,
			}).Debug("configured")

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "decimal",
				Usage:     "print the decimal value and digits",
				ArgsUsage: "[VALUE]",
				Flags:     []cli.Flag{fileFlag()},
				Action: func(c *cli.Context) error {
					l, err := input(c, 0)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "%s\t%s\n", l.ToDecimalString(), l)

					return nil
				},
			},
			{
				Name:      "scale",
				Usage:     "print the value in another radix",
				ArgsUsage: "[VALUE]",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.IntFlag{
						Name:  "radix",
						Usage: "target radix",
						Value: radix.Target,
					},
				},
				Action: func(c *cli.Context) error {
					l, err := input(c, 0)
					if err != nil {
						return err
					}

					out, err := l.ConvertTo(c.Int("radix"))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}

					fmt.Fprintln(c.App.Writer, out)

					return nil
				},
			},
			{
				Name:      "multiply",
				Usage:     "print the product of two values",
				ArgsUsage: "A B",
				Action: func(c *cli.Context) error {
					a, err := input(c, 0)
					if err != nil {
						return err
					}

					b, err := input(c, 1)
					if err != nil {
						return err
					}

					p, err := a.AdditionalOperation(b)
					if err != nil {
						return err
					}

					fmt.Fprintln(c.App.Writer, p)

					return nil
				},
			},
			{
				Name:      "save",
				Usage:     "store a value in a file",
				ArgsUsage: "VALUE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "write to `PATH`",
						Value: cfg.Output,
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("out")
					if path == "" {
						return cli.Exit("no output path: set --out or DIGITLIST_OUTPUT", 2)
					}

					l, err := input(c, 0)
					if err != nil {
						return err
					}

					log.WithFields(log.Fields{
						"path":  path,
						"value": l.ToDecimalString(),
					}).Debug("saving")

					return l.SaveList(path)
				},
			},
		},
	}
}
