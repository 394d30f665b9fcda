package unifi

import (
	"fmt"
)

// Run dispatches the subcommand. Setup takes no flags at all: everything
// comes from the environment. Teardown is the only flag-bearing command.
func Run(args []string) error {
	if len(args) < 1 {
		usage()
		return exitErrf(ExitUsage, "missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]

	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		usage()
		return nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	switch cmd {
	case "setup":
		if len(cmdArgs) > 0 {
			return exitErrf(ExitUsage, "setup takes no flags; configure via environment variables")
		}
		return RunSetup(cfg)
	case "teardown":
		opts, err := parseTeardownFlags(cfg, cmdArgs)
		if err != nil {
			return err
		}
		return RunTeardown(cfg, opts)
	case "status":
		return RunStatus(cfg)
	case "backup":
		return RunBackup(cfg)
	case "doctor":
		return RunDoctor(cfg)
	default:
		usage()
		return exitErrf(ExitUsage, "unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Println(`unifictl - UniFi Network Application stack on a single Ubuntu host

Usage:
  unifictl setup       install docker, generate credentials, write the stack
  unifictl teardown    reverse setup; see flags below
  unifictl status      docker compose ps for the stack
  unifictl backup      gzip mongodump into the stack backups directory
  unifictl doctor      host preflight checks
  unifictl help

Setup reads its configuration from the environment:
  DOMAIN, ACME_EMAIL, PUID, PGID, UNIFI_STACK_DIR, DOCKER_ROOT, TZ,
  AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION

Teardown flags (least destructive by default):
  --delete-data          delete the entire stack directory
  --purge-images         remove the stack container images
  --revert-daemon-json   remove data-root from the docker daemon config
  --remove-docker        purge docker engine packages
  --remove-docker-repo   remove the docker apt repository and signing key
  --remove-caddyfile     delete only the Caddyfile
  --yes                  skip the confirmation prompt
  --force                remove containers by name when no manifest is found
  --stack-dir DIR        stack directory (default ` + defaultStackDir + `)
  --docker-root DIR      docker data root (default ` + defaultDockerRoot + `)

Exit codes: 0 ok/aborted, 1 missing tool or step failure, 2 bad usage,
3 refused unsafe deletion path.`)
}
