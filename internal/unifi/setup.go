package unifi

import (
	"fmt"
	"os"
)

// RunSetup brings a bare host to a running stack in one fail-fast pass.
// Partially-written files are left in place on failure; every step is
// idempotent, so rerunning after a fix is the recovery path.
func RunSetup(cfg Config) error {
	for _, tool := range []string{"apt-get", "systemctl"} {
		if !commandExists(tool) {
			return exitErrf(ExitMissingTool, "required tool not found: %s", tool)
		}
	}

	creds, err := generateCredentials()
	if err != nil {
		return err
	}

	steps := []step{
		{name: "install prerequisite packages", severity: fatalStep, fn: installPrereqs},
		{name: "install docker signing key", severity: fatalStep, fn: ensureDockerKeyring},
		{name: "add docker apt repository", severity: fatalStep, fn: addDockerRepo},
		{name: "install docker engine", severity: fatalStep, fn: installDockerEngine},
		{name: "create docker data root", severity: fatalStep, fn: func() error {
			return ensureDockerRoot(cfg)
		}},
		{name: "set docker data-root", severity: fatalStep, fn: func() error {
			return setDaemonDataRoot(daemonJSONPath, cfg.DockerRoot)
		}},
		{name: "enable docker daemon", severity: fatalStep, fn: enableDockerDaemon},
		{name: "create stack directories", severity: fatalStep, fn: func() error {
			return ensureStackDirs(cfg)
		}},
		{name: "write database init scripts", severity: fatalStep, fn: func() error {
			return writeDBInitScripts(cfg, creds)
		}},
		{name: "write container-vars.env", severity: fatalStep, fn: func() error {
			return writeEnvFile(cfg, creds)
		}},
		{name: "write docker-compose.yml", severity: fatalStep, fn: func() error {
			return writeCompose(cfg, creds)
		}},
		{name: "write Caddyfile", severity: fatalStep, fn: func() error {
			return writeCaddyfile(cfg)
		}},
	}
	if err := runSteps(steps); err != nil {
		return err
	}

	printSetupSummary(cfg, creds)
	return nil
}

func ensureStackDirs(cfg Config) error {
	for _, dir := range []string{cfg.DataDir(), cfg.DBDir(), cfg.DBInitDir()} {
		if err := ensureDir(dir, 0o750); err != nil {
			return err
		}
	}
	// The app container runs as PUID:PGID and owns its config volume.
	return os.Chown(cfg.DataDir(), cfg.PUID, cfg.PGID)
}

func printSetupSummary(cfg Config, creds Credentials) {
	fmt.Printf("stack provisioned at %s\n\n", cfg.StackDir)
	fmt.Println("generated credentials (shown only here, save them now):")
	fmt.Printf("  mongodb root:  %s / %s\n", creds.RootUser, creds.RootPass)
	fmt.Printf("  unifi app db:  %s / %s\n", creds.AppUser, creds.AppPass)
	fmt.Println()
	fmt.Println("next steps:")
	fmt.Printf("  cd %s && docker compose up -d\n", cfg.StackDir)
	fmt.Printf("  caddy run --config %s\n", cfg.CaddyfilePath())
	fmt.Printf("  open https://%s once the controller finishes first boot\n", cfg.Domain)
}
