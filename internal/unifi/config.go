package unifi

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v9"
)

const (
	defaultStackDir   = "/opt/unifi"
	defaultDockerRoot = "/opt/docker"

	appService = "unifi"
	dbService  = "unifi-mongodb"

	appImage = "lscr.io/linuxserver/unifi-network-application:latest"
	dbImage  = "docker.io/mongo:7.0"

	stackNetwork = "unifi-net"
)

// Config holds everything setup and teardown need. Populated once from the
// environment at startup and passed by value to each step.
type Config struct {
	Domain    string `env:"DOMAIN" envDefault:"unifi.example.com"`
	AcmeEmail string `env:"ACME_EMAIL" envDefault:"admin@example.com"`

	PUID int `env:"PUID" envDefault:"1000"`
	PGID int `env:"PGID" envDefault:"1000"`

	StackDir   string `env:"UNIFI_STACK_DIR" envDefault:"/opt/unifi"`
	DockerRoot string `env:"DOCKER_ROOT" envDefault:"/opt/docker"`

	Timezone string `env:"TZ" envDefault:"Etc/UTC"`

	// Route53 DNS-challenge credentials; passed through to the Caddyfile
	// untouched. Validation is Caddy's problem at deploy time.
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.StackDir = strings.TrimSpace(cfg.StackDir)
	if cfg.StackDir == "" {
		cfg.StackDir = defaultStackDir
	}
	cfg.DockerRoot = strings.TrimSpace(cfg.DockerRoot)
	if cfg.DockerRoot == "" {
		cfg.DockerRoot = defaultDockerRoot
	}
	return cfg, nil
}

func (cfg Config) ComposePath() string   { return filepath.Join(cfg.StackDir, "docker-compose.yml") }
func (cfg Config) CaddyfilePath() string { return filepath.Join(cfg.StackDir, "Caddyfile") }
func (cfg Config) EnvFilePath() string   { return filepath.Join(cfg.StackDir, "container-vars.env") }
func (cfg Config) DataDir() string       { return filepath.Join(cfg.StackDir, "data") }
func (cfg Config) DBDir() string         { return filepath.Join(cfg.StackDir, "db") }
func (cfg Config) DBInitDir() string     { return filepath.Join(cfg.StackDir, "db-init") }
func (cfg Config) BackupDir() string     { return filepath.Join(cfg.StackDir, "backups") }

// SafeToDelete reports whether dir may be removed wholesale. Only the default
// stack path (or its trailing-slash form) qualifies; anything else is assumed
// to be an operator mistake via UNIFI_STACK_DIR or --stack-dir.
func SafeToDelete(dir string) bool {
	return dir == defaultStackDir || dir == defaultStackDir+"/"
}

// ReadDotEnv parses KEY=VALUE lines, skipping comments and blanks.
func ReadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars := map[string]string{}
	s := bufio.NewScanner(file)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		vars[k] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}
