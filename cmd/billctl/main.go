// Command billctl drafts, submits and sends rental bills against the billing
// gateway.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"rentbill.app/billclient"
	"rentbill.app/billform"
)

const appName = "billctl"

func main() {
	log := newLogger(appName)

	r := &runner{
		log: log,
		out: os.Stdout,
		gateway: func() (billform.Gateway, error) {
			cfg, err := billclient.LoadConfig()
			if err != nil {
				return nil, err
			}
			client, err := billclient.New(cfg, billclient.WithLogger(log))
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}

	if err := newApp(r).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(r *runner) *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "draft and send monthly rental bills",
		// values such as notes may contain commas
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			{
				Name:   "bills",
				Usage:  "list the bills of a contract",
				Flags:  []cli.Flag{contractFlag},
				Action: r.listBills,
			},
			{
				Name:  "draft",
				Usage: "start a bill from the contract's history and utility prices",
				Flags: []cli.Flag{
					contractFlag,
					&cli.StringFlag{Name: "property", Usage: "property the contract belongs to"},
					&cli.StringFlag{Name: "rent", Usage: "contract monthly rent"},
					&cli.StringFlag{Name: "deposit", Usage: "contract rental deposit"},
					setFlag,
					&cli.BoolFlag{Name: "submit", Usage: "store the draft"},
					&cli.BoolFlag{Name: "send", Usage: "store the draft and send it to the tenant"},
				},
				Action: r.draft,
			},
			{
				Name:  "edit",
				Usage: "change fields of a stored draft bill",
				Flags: []cli.Flag{
					billFlag,
					setFlag,
					&cli.BoolFlag{Name: "send", Usage: "send the bill after saving"},
				},
				Action: r.edit,
			},
			{
				Name:   "send",
				Usage:  "send a draft bill to the tenant",
				Flags:  []cli.Flag{billFlag},
				Action: r.send,
			},
			{
				Name:  "fields",
				Usage: "list the field names accepted by --set",
				Action: func(c *cli.Context) error {
					for _, name := range billform.FieldNames() {
						fmt.Fprintln(r.out, name)
					}
					return nil
				},
			},
		},
	}
}

var (
	contractFlag = &cli.StringFlag{Name: "contract", Aliases: []string{"c"}, Usage: "contract id", Required: true}
	billFlag     = &cli.Int64Flag{Name: "bill", Aliases: []string{"b"}, Usage: "bill id", Required: true}
	setFlag      = &cli.StringSliceFlag{Name: "set", Aliases: []string{"s"}, Usage: "field=value, repeatable"}
)
