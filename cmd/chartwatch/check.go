package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/alert"
	"github.com/tsawler/chartwatch/report"
	"github.com/tsawler/chartwatch/watch"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		oldCycle  string
		newCycle  string
		sendAlert bool
		appURL    string
	)

	cmd := &cobra.Command{
		Use:   "check [airport...]",
		Short: "Compare every airport between two cycles and report changes",
		Long: `Sweep the registered airports (or the ones named), comparing each
airport's stored snapshots between the previous and current cycle.
With --alert, airports that changed trigger an email; credentials come
from GMAIL_ADDRESS, GMAIL_APP_PASSWORD, and ALERT_RECIPIENT_EMAIL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := args
			if len(codes) == 0 {
				codes = a.registry.Codes()
			}
			for i, code := range codes {
				codes[i] = strings.ToUpper(code)
			}

			if newCycle == "" {
				newCycle = airports.CurrentCycle()
			}
			if oldCycle == "" {
				previous, err := airports.PreviousCycle(newCycle)
				if err != nil {
					return err
				}
				oldCycle = previous
			}

			var mailer *alert.Mailer
			if sendAlert {
				mailer = alert.NewGmail(
					os.Getenv("GMAIL_ADDRESS"),
					os.Getenv("GMAIL_APP_PASSWORD"),
					os.Getenv("ALERT_RECIPIENT_EMAIL"))
				mailer.AppURL = appURL
				if !mailer.Configured() {
					return fmt.Errorf("--alert set but email environment variables are missing")
				}
			}

			checker := watch.NewChecker(watch.StoreSource(a.store()), a.log)
			outcomes := checker.CheckAll(cmd.Context(), codes, oldCycle, newCycle)

			out := cmd.OutOrStdout()
			var failed, changed int
			for _, o := range outcomes {
				switch {
				case o.Err != nil:
					failed++
					fmt.Fprintf(out, "%s: check failed: %v\n", o.AirportCode, o.Err)
				case o.Result.HasChanges():
					changed++
					report.Render(out, *o.Result)
					if mailer != nil {
						if err := mailer.Send(*o.Result); err != nil {
							a.log.Warn("alert failed",
								zap.String("airport", o.AirportCode),
								zap.Error(err))
						}
					}
				default:
					fmt.Fprintf(out, "%s: no changes between %s and %s\n",
						o.AirportCode, oldCycle, newCycle)
				}
			}

			fmt.Fprintf(out, "\nChecked %d airport(s): %d changed, %d failed\n",
				len(outcomes), changed, failed)
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oldCycle, "old", "", "older cycle (defaults to the cycle before --new)")
	cmd.Flags().StringVar(&newCycle, "new", "", "newer cycle (defaults to the current cycle)")
	cmd.Flags().BoolVar(&sendAlert, "alert", false, "email an alert for airports with changes")
	cmd.Flags().StringVar(&appURL, "app-url", "", "details link to include in alert emails")
	return cmd
}
