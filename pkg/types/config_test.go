package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{}.WithDefaults(),
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "missing file names returns ErrFileNameEmpty",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: ErrFileNameEmpty,
		},
		{
			name:    "defaults are valid",
			config:  Config{DataDir: "/tmp/data"}.WithDefaults(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigWithDefaultsKeepsExplicitNames(t *testing.T) {
	c := Config{DataDir: "d", FilesFile: "downloads.json"}.WithDefaults()
	if c.FilesFile != "downloads.json" {
		t.Fatalf("FilesFile = %q, want downloads.json", c.FilesFile)
	}
	if c.CategoriesFile != DefaultCategoriesFile || c.NotificationsFile != DefaultNotificationsFile {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestRemoteConfigConfigured(t *testing.T) {
	if (RemoteConfig{Owner: "o", Repo: "r"}).Configured() {
		t.Fatal("remote without token reported as configured")
	}
	if !(RemoteConfig{Owner: "o", Repo: "r", Token: "t"}).Configured() {
		t.Fatal("complete remote reported as not configured")
	}
}
