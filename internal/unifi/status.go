package unifi

import (
	"fmt"
	"strings"
)

func RunStatus(cfg Config) error {
	fmt.Printf("stack dir: %s\n", cfg.StackDir)
	fmt.Printf("manifest:  %s\n", cfg.ComposePath())

	if !fileExists(cfg.ComposePath()) {
		fmt.Println("no manifest found; run setup first")
		return nil
	}

	style := detectComposeStyle()
	if style == composeNone {
		fmt.Println("docker compose not available")
		return nil
	}

	name, args := style.command(cfg, "ps")
	out, err := runCmdCapture(name, args...)
	if err != nil {
		fmt.Println("docker compose status unavailable:")
		fmt.Println(strings.TrimSpace(out))
		return nil
	}
	fmt.Println(out)
	return nil
}
