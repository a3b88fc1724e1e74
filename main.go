package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const version = "1.0.0"

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		banner()
		fmt.Print("\nUse: gomacman --help for usage.\n\n")
		return
	}

	app := cli.NewApp()
	app.Name = "gomacman"
	app.Usage = "change, randomize, and restore the MAC address of a network interface"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "interface, i",
			Usage: "name of the network interface",
		},
		cli.StringFlag{
			Name:  "mac, m",
			Usage: "custom MAC address to set",
		},
		cli.BoolFlag{
			Name:  "reset, r",
			Usage: "reset the MAC address to its permanent value",
		},
		cli.BoolFlag{
			Name:  "list, l",
			Usage: "list available network interfaces",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}

	if c.Bool("list") {
		banner()
		if err := listInterfaces(os.Stdout); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}

	console := NewConsole(os.Stdout)

	iface := c.String("interface")
	if iface == "" {
		console.Print("{!} Interface name is required")
		return cli.NewExitError("", 1)
	}

	mgr := NewManager(execRunner{log: log}, console, log)
	opts := Options{
		Interface: iface,
		MAC:       c.String("mac"),
		Reset:     c.Bool("reset"),
	}
	if err := mgr.Run(opts); err != nil {
		log.WithError(err).Debug("run failed")
		return cli.NewExitError("", 1)
	}
	return nil
}
