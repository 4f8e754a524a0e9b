package cmds

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crafted-tech/usbdrivers/actions"
	"github.com/crafted-tech/usbdrivers/installer"
	"github.com/crafted-tech/usbdrivers/platform"
)

// lockName serializes manual runs. The installer engine already serializes
// its own custom actions.
const lockName = "usbipd-win.usbdriverctl"

var (
	ErrBaseDirRequired = errors.New("--base-dir is required")
	ErrNotElevated     = errors.New("administrator privileges are required")
	ErrBusy            = errors.New("another usbdriverctl is running")
)

// StatusError carries a non-success custom action status.
// The process exits with the status as its exit code.
type StatusError struct {
	Status installer.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("custom action failed with status %d", e.Status)
}

type options struct {
	baseDir string
	logFile string
	verbose bool

	config     actions.Config
	store      installer.DriverStore
	reboot     installer.RebootSignal
	isElevated func() bool
	acquire    func(name string) (release func(), ok bool)
}

func systemOptions() *options {
	cfg := actions.DefaultConfig()
	return &options{
		config:     cfg,
		store:      installer.SystemDriverStore{Force: cfg.ForceReinstall},
		reboot:     installer.NewAtomRebootSignal(cfg.RebootAtom),
		isElevated: platform.IsElevated,
		acquire:    platform.AcquireSingleInstance,
	}
}

// NewRootCommand returns the usbdriverctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(systemOptions())
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "usbdriverctl",
		Short:         "Install or remove the usbipd-win USB drivers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		cmdInstall(opts),
		cmdUninstall(opts),
		cmdRebootPending(opts),
	)
	return cmd
}

func (opts *options) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.baseDir, "base-dir", "", "usbipd-win installation directory")
	flags.StringVar(&opts.logFile, "log-file", "", "also append log lines to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log step completion details")
}

// newEnv prepares the environment of a driver action run from the command
// line. The returned cleanup must be called when the run is done.
func (opts *options) newEnv(cmd *cobra.Command) (actions.Env, func(), error) {
	base := normalizeBaseDir(opts.baseDir)
	if base == "" {
		return actions.Env{}, nil, ErrBaseDirRequired
	}
	if !opts.isElevated() {
		return actions.Env{}, nil, ErrNotElevated
	}
	release, ok := opts.acquire(lockName)
	if !ok {
		return actions.Env{}, nil, ErrBusy
	}

	session := installer.NewStaticSession(map[string]string{
		opts.config.PropertyName: base,
	}, cmd.OutOrStdout())

	log := installer.NewLogger(session)
	log.SetVerbose(opts.verbose)
	if opts.logFile != "" {
		if err := log.LogToFile(opts.logFile); err != nil {
			release()
			return actions.Env{}, nil, err
		}
	}

	env := actions.Env{
		Session: session,
		Store:   opts.store,
		Reboot:  opts.reboot,
		Config:  opts.config,
		Log:     log,
	}
	cleanup := func() {
		log.Close()
		release()
	}
	return env, cleanup, nil
}

// normalizeBaseDir appends the separator MSI directory properties end with.
func normalizeBaseDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	if !strings.HasSuffix(dir, `\`) && !strings.HasSuffix(dir, "/") {
		dir += `\`
	}
	return dir
}
