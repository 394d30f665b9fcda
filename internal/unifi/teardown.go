package unifi

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sjackson0109/ubuntu-docker-unifi-controller/internal/tui"
)

// TeardownOptions mirror the teardown flags. Everything defaults to the least
// destructive choice: with no flags set, only containers and networks go.
type TeardownOptions struct {
	DeleteData       bool
	PurgeImages      bool
	RevertDaemonJSON bool
	RemoveDocker     bool
	RemoveDockerRepo bool
	RemoveCaddyfile  bool
	Yes              bool
	Force            bool
	StackDir         string
	DockerRoot       string
}

func parseTeardownFlags(cfg Config, args []string) (TeardownOptions, error) {
	opts := TeardownOptions{}
	fs := flag.NewFlagSet("teardown", flag.ContinueOnError)
	fs.BoolVar(&opts.DeleteData, "delete-data", false, "delete the entire stack directory")
	fs.BoolVar(&opts.PurgeImages, "purge-images", false, "remove the stack container images")
	fs.BoolVar(&opts.RevertDaemonJSON, "revert-daemon-json", false, "remove data-root from the docker daemon config")
	fs.BoolVar(&opts.RemoveDocker, "remove-docker", false, "purge docker engine packages")
	fs.BoolVar(&opts.RemoveDockerRepo, "remove-docker-repo", false, "remove the docker apt repository and signing key")
	fs.BoolVar(&opts.RemoveCaddyfile, "remove-caddyfile", false, "delete only the Caddyfile")
	fs.BoolVar(&opts.Yes, "yes", false, "skip the confirmation prompt")
	fs.BoolVar(&opts.Force, "force", false, "remove containers by name when no manifest is found")
	fs.StringVar(&opts.StackDir, "stack-dir", cfg.StackDir, "stack directory")
	fs.StringVar(&opts.DockerRoot, "docker-root", cfg.DockerRoot, "docker data root")
	if err := fs.Parse(args); err != nil {
		return opts, exitErrf(ExitUsage, "teardown: %v", err)
	}
	if fs.NArg() > 0 {
		return opts, exitErrf(ExitUsage, "teardown: unexpected argument: %s", fs.Arg(0))
	}
	return opts, nil
}

// RunTeardown reverses setup effects in a fixed order, each step opted into
// by a flag. Optional steps tolerate failure; only the stack-dir deletion and
// an unusable docker binary under --force are fatal.
func RunTeardown(cfg Config, opts TeardownOptions) error {
	// Refuse an unsafe --delete-data target before anything runs, so operator
	// error never follows partial destruction.
	if opts.DeleteData && !SafeToDelete(opts.StackDir) {
		return exitErrf(ExitUnsafePath,
			"refusing to delete %q: only %s (or %s/) may be removed", opts.StackDir, defaultStackDir, defaultStackDir)
	}

	cfg.StackDir = opts.StackDir
	cfg.DockerRoot = opts.DockerRoot

	if !opts.Yes {
		ok, err := confirmTeardown(teardownPlan(cfg, opts))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted, nothing was changed")
			return nil
		}
	}

	steps := []step{
		{name: "remove stack containers", severity: toleratedStep, fn: func() error {
			return removeContainers(cfg, opts)
		}},
	}
	if opts.PurgeImages {
		steps = append(steps, step{name: "purge stack images", severity: toleratedStep, fn: purgeImages})
	}
	if opts.RemoveCaddyfile {
		steps = append(steps, step{name: "remove Caddyfile", severity: fatalStep, fn: func() error {
			err := os.Remove(cfg.CaddyfilePath())
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}})
	}
	if opts.DeleteData {
		steps = append(steps, step{name: "delete stack directory", severity: fatalStep, fn: func() error {
			return deleteStackDir(cfg.StackDir)
		}})
	}
	if opts.RevertDaemonJSON {
		steps = append(steps,
			step{name: "revert docker daemon config", severity: toleratedStep, fn: func() error {
				return removeDaemonDataRoot(daemonJSONPath)
			}},
			step{name: "restart docker daemon", severity: toleratedStep, fn: func() error {
				if err := runCmdStream("systemctl", "daemon-reload"); err != nil {
					return err
				}
				return runCmdStream("systemctl", "restart", "docker")
			}},
		)
	}
	if opts.RemoveDocker {
		steps = append(steps, step{name: "purge docker engine packages", severity: toleratedStep, fn: purgeDockerEngine})
	}
	if opts.RemoveDockerRepo {
		steps = append(steps, step{name: "remove docker apt repository", severity: toleratedStep, fn: removeDockerRepo})
	}

	if err := runSteps(steps); err != nil {
		return err
	}
	fmt.Println("teardown complete")
	return nil
}

func teardownPlan(cfg Config, opts TeardownOptions) []string {
	plan := []string{"stop and remove the stack containers and network"}
	if opts.PurgeImages {
		plan = append(plan, fmt.Sprintf("remove images %s and %s", appImage, dbImage))
	}
	if opts.RemoveCaddyfile {
		plan = append(plan, "delete "+cfg.CaddyfilePath())
	}
	if opts.DeleteData {
		plan = append(plan, "delete the entire stack directory "+cfg.StackDir+" (all controller and database data)")
	}
	if opts.RevertDaemonJSON {
		plan = append(plan, "remove data-root from "+daemonJSONPath+" and restart docker")
	}
	if opts.RemoveDocker {
		plan = append(plan, "purge docker engine packages: "+strings.Join(dockerPackages, ", "))
	}
	if opts.RemoveDockerRepo {
		plan = append(plan, "remove the docker apt repository and signing key")
	}
	return plan
}

func confirmTeardown(plan []string) (bool, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return tui.ConfirmTeardown(plan)
	}

	fmt.Println("teardown will:")
	for _, item := range plan {
		fmt.Println("  - " + item)
	}
	fmt.Print("type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, nil
	}
	return strings.TrimSpace(line) == "yes", nil
}

// removeContainers resolves the available compose invocation style and takes
// the least surprising path when the host is in a half-torn-down state.
func removeContainers(cfg Config, opts TeardownOptions) error {
	style := detectComposeStyle()
	manifest := fileExists(cfg.ComposePath())

	switch {
	case manifest && style != composeNone:
		name, args := style.command(cfg, "down", "--remove-orphans")
		return runCmdStream(name, args...)
	case manifest:
		logger.Warn("docker compose unavailable, skipping container removal", "manifest", cfg.ComposePath())
		return nil
	case opts.Force:
		if !commandExists("docker") {
			return exitErrf(ExitMissingTool, "docker binary not found, cannot force-remove containers")
		}
		return runCmdStream("docker", "rm", "-f", appService, dbService)
	default:
		logger.Info("no compose manifest found, skipping container removal", "path", cfg.ComposePath())
		return nil
	}
}

func purgeImages() error {
	return runCmdStream("docker", "rmi", appImage, dbImage)
}

func deleteStackDir(dir string) error {
	if !SafeToDelete(dir) {
		return exitErrf(ExitUnsafePath,
			"refusing to delete %q: only %s (or %s/) may be removed", dir, defaultStackDir, defaultStackDir)
	}
	return os.RemoveAll(dir)
}
