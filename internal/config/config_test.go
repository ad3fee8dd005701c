package config

import (
	"testing"
	"time"

	"github.com/codice-tools/plastic-ctl/internal/system"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	fsys := system.NewMockFS()

	cfg, err := Load(fsys, "/etc/plastic-ctl/config.toml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.CMPath != DefaultCMPath {
		t.Errorf("CMPath = %q, want %q", cfg.CMPath, DefaultCMPath)
	}
	if cfg.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), DefaultTimeout)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.AddFile("/etc/plastic-ctl/config.toml", []byte(`
cm_path = "/opt/plasticscm/bin/cm"
extra_args = "--machinereadable '--fieldseparator=#'"
default_selector = "rep:default br:/main"
timeout_seconds = 600
`), 0644)

	cfg, err := Load(fsys, "/etc/plastic-ctl/config.toml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.CMPath != "/opt/plasticscm/bin/cm" {
		t.Errorf("CMPath = %q", cfg.CMPath)
	}
	if cfg.DefaultSelector != "rep:default br:/main" {
		t.Errorf("DefaultSelector = %q", cfg.DefaultSelector)
	}
	if cfg.Timeout() != 600*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}

	argv := cfg.ExtraArgv()
	if len(argv) != 2 || argv[0] != "--machinereadable" || argv[1] != "--fieldseparator=#" {
		t.Errorf("ExtraArgv() = %v", argv)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.AddFile("/etc/plastic-ctl/config.toml", []byte(`cm_path = [broken`), 0644)

	if _, err := Load(fsys, "/etc/plastic-ctl/config.toml"); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"empty cm path", Config{CMPath: ""}, true},
		{"negative timeout", Config{CMPath: "cm", TimeoutSeconds: -1}, true},
		{"unbalanced quotes", Config{CMPath: "cm", ExtraArgs: `--flag "unterminated`}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
