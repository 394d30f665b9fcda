package unifi

import (
	"fmt"
	"os"
	"path/filepath"
)

// Init scripts run once on a fresh database volume, in lexical order. Each is
// written to survive re-runs: already-initialized conditions are swallowed so
// a container restart against existing data stays clean.

const initReplicaSetJS = `try {
  rs.initiate();
  print("unifi-db-init: replica set initiated");
} catch (e) {
  print("unifi-db-init: replica set init skipped: " + e.message);
}
`

const initFCVJS = `try {
  db.adminCommand({ setFeatureCompatibilityVersion: "7.0", confirm: true });
  print("unifi-db-init: feature compatibility version pinned to 7.0");
} catch (e) {
  print("unifi-db-init: fcv skipped: " + e.message);
}
`

const createUsersJSTemplate = `try {
  db.getSiblingDB("admin").createUser({
    user: "{{.AppUser}}",
    pwd: "{{.AppPass}}",
    roles: [
      { role: "dbOwner", db: "unifi" },
      { role: "dbOwner", db: "unifi_stat" },
      { role: "dbOwner", db: "unifi_audit" }
    ]
  });
  print("unifi-db-init: application user created");
} catch (e) {
  if (!/already exists/.test(e.message)) {
    throw e;
  }
  print("unifi-db-init: application user already exists");
}
`

const envFileTemplate = `# Generated by unifictl setup. Consumed by the unifi container.
MONGO_USER={{.AppUser}}
MONGO_PASS={{.AppPass}}
MONGO_HOST=unifi-mongodb
MONGO_PORT=27017
MONGO_DBNAME=unifi
MONGO_AUTHSOURCE=admin
PUID={{.PUID}}
PGID={{.PGID}}
TZ={{.Timezone}}
`

func writeDBInitScripts(cfg Config, creds Credentials) error {
	createUsers, err := renderString(createUsersJSTemplate, creds)
	if err != nil {
		return fmt.Errorf("render create-users script: %w", err)
	}

	scripts := []struct {
		name    string
		content string
	}{
		{"01-init-rs.js", initReplicaSetJS},
		{"02-fcv.js", initFCVJS},
		{"03-create-users.js", createUsers},
	}
	for _, s := range scripts {
		target := filepath.Join(cfg.DBInitDir(), s.name)
		if err := os.WriteFile(target, []byte(s.content), 0o640); err != nil {
			return err
		}
	}
	return nil
}

func writeEnvFile(cfg Config, creds Credentials) error {
	data := struct {
		AppUser  string
		AppPass  string
		PUID     int
		PGID     int
		Timezone string
	}{creds.AppUser, creds.AppPass, cfg.PUID, cfg.PGID, cfg.Timezone}

	text, err := renderString(envFileTemplate, data)
	if err != nil {
		return fmt.Errorf("render container-vars.env: %w", err)
	}
	return os.WriteFile(cfg.EnvFilePath(), []byte(text), 0o640)
}
