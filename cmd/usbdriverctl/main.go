// Command usbdriverctl runs the usbipd-win driver custom actions outside the
// installer, for repairing a broken driver installation by hand.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/crafted-tech/usbdrivers/cmd/usbdriverctl/cmds"
)

func main() {
	if err := cmds.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "usbdriverctl:", err)
		var statusErr *cmds.StatusError
		if errors.As(err, &statusErr) {
			os.Exit(int(statusErr.Status))
		}
		os.Exit(1)
	}
}
