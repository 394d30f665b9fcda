package unifi

import (
	"fmt"
	"os"
)

// The UniFi controller serves HTTPS on 8443 with a self-signed certificate,
// so the proxy transport skips verification and Caddy terminates real TLS.
const caddyfileTemplate = `{{.Domain}} {
	tls {{.AcmeEmail}} {
		dns route53 {
			access_key_id {{.AWSAccessKeyID}}
			secret_access_key {{.AWSSecretAccessKey}}
			region {{.AWSRegion}}
		}
		protocols tls1.2 tls1.3
		ciphers TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384 TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384 TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256 TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256
		curves x25519 secp384r1
	}

	header {
		Strict-Transport-Security "max-age=31536000; includeSubDomains; preload"
		X-Content-Type-Options "nosniff"
		X-Frame-Options "SAMEORIGIN"
		Referrer-Policy "strict-origin-when-cross-origin"
		Permissions-Policy "geolocation=(), microphone=(), camera=()"
		-Server
	}

	log {
		output file {{.StackDir}}/caddy-access.log
		format json
	}

	# Uncomment when caddy is built with the rate_limit extension
	# (github.com/mholt/caddy-ratelimit).
	# rate_limit {
	#	zone unifi {
	#		key {remote_host}
	#		events 100
	#		window 1m
	#	}
	# }
	# limits {
	#	connections 64
	# }

	reverse_proxy https://127.0.0.1:8443 {
		transport http {
			tls_insecure_skip_verify
		}
	}
}
`

func writeCaddyfile(cfg Config) error {
	text, err := renderString(caddyfileTemplate, cfg)
	if err != nil {
		return fmt.Errorf("render Caddyfile: %w", err)
	}
	return os.WriteFile(cfg.CaddyfilePath(), []byte(text), 0o640)
}
