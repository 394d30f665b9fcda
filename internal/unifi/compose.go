package unifi

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Networks map[string]composeNetwork `yaml:"networks"`
}

type composeService struct {
	Image         string                 `yaml:"image"`
	ContainerName string                 `yaml:"container_name"`
	Restart       string                 `yaml:"restart,omitempty"`
	EnvFile       []string               `yaml:"env_file,omitempty"`
	Environment   []string               `yaml:"environment,omitempty"`
	Ports         []string               `yaml:"ports,omitempty"`
	Volumes       []string               `yaml:"volumes,omitempty"`
	Networks      []string               `yaml:"networks,omitempty"`
	DependsOn     map[string]dependency  `yaml:"depends_on,omitempty"`
	Healthcheck   *composeHealthcheck    `yaml:"healthcheck,omitempty"`
}

type dependency struct {
	Condition string `yaml:"condition"`
}

type composeHealthcheck struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
	Retries     int      `yaml:"retries,omitempty"`
	StartPeriod string   `yaml:"start_period,omitempty"`
}

type composeNetwork struct {
	Driver string `yaml:"driver,omitempty"`
}

// buildCompose wires the controller to MongoDB. The controller only starts
// once the database healthcheck passes, so first boot never races the
// replica-set and user init scripts.
func buildCompose(cfg Config, creds Credentials) composeFile {
	mongo := composeService{
		Image:         dbImage,
		ContainerName: dbService,
		Restart:       "unless-stopped",
		Environment: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + creds.RootUser,
			"MONGO_INITDB_ROOT_PASSWORD=" + creds.RootPass,
		},
		Volumes: []string{
			"./db:/data/db",
			"./db-init:/docker-entrypoint-initdb.d:ro",
		},
		Networks: []string{stackNetwork},
		Healthcheck: &composeHealthcheck{
			Test:        []string{"CMD-SHELL", "mongosh --quiet --eval 'db.adminCommand({ping: 1})' || exit 1"},
			Interval:    "10s",
			Timeout:     "5s",
			Retries:     12,
			StartPeriod: "20s",
		},
	}

	app := composeService{
		Image:         appImage,
		ContainerName: appService,
		Restart:       "unless-stopped",
		EnvFile:       []string{"container-vars.env"},
		Ports: []string{
			"8443:8443",
			"8080:8080",
			"3478:3478/udp",
			"10001:10001/udp",
		},
		Volumes:  []string{"./data:/config"},
		Networks: []string{stackNetwork},
		DependsOn: map[string]dependency{
			dbService: {Condition: "service_healthy"},
		},
	}

	return composeFile{
		Services: map[string]composeService{
			appService: app,
			dbService:  mongo,
		},
		Networks: map[string]composeNetwork{
			stackNetwork: {Driver: "bridge"},
		},
	}
}

func writeCompose(cfg Config, creds Credentials) error {
	out, err := yaml.Marshal(buildCompose(cfg, creds))
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.ComposePath(), out, 0o640)
}

// composeStyle captures which orchestration invocation is available on the
// host: the docker CLI plugin, the standalone binary, or neither.
type composeStyle int

const (
	composeNone composeStyle = iota
	composePlugin
	composeStandalone
)

func detectComposeStyle() composeStyle {
	if commandExists("docker") {
		if _, err := runCmdCapture("docker", "compose", "version"); err == nil {
			return composePlugin
		}
	}
	if commandExists("docker-compose") {
		return composeStandalone
	}
	return composeNone
}

// command builds the full argv for a compose invocation against the stack.
func (s composeStyle) command(cfg Config, extra ...string) (string, []string) {
	base := []string{"-f", cfg.ComposePath(), "-p", appService}
	if s == composeStandalone {
		return "docker-compose", append(base, extra...)
	}
	return "docker", append(append([]string{"compose"}, base...), extra...)
}

func composeServiceRunning(cfg Config, style composeStyle, service string) bool {
	name, args := style.command(cfg, "ps", "-q", service)
	out, err := runCmdCapture(name, args...)
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}
