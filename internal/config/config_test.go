package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnodel/jsonflat"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Config
	}{
		{
			name:  "empty",
			input: "",
			want:  &Config{},
		},
		{
			name:  "all fields",
			input: "leaf_only: true\nprune: true\nno_head: true\nnormalize_solidus: true\njwcc: true\ncolor: never\n",
			want: &Config{
				LeafOnly:         true,
				Prune:            true,
				NoHead:           true,
				NormalizeSolidus: true,
				JWCC:             true,
				Color:            "never",
			},
		},
		{
			name:  "brief",
			input: "brief: true\n",
			want:  &Config{Brief: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Config: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "verbose: true\n"},
		{"wrong type", "prune: [1, 2]\n"},
		{"bad color", "color: sometimes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		cfg  Config
		want jsonflat.Options
	}{
		{Config{}, jsonflat.Options{}},
		{Config{Brief: true}, jsonflat.BriefOptions()},
		{Config{LeafOnly: true, NoHead: true}, jsonflat.Options{LeafOnly: true, NoHead: true}},
		{Config{NormalizeSolidus: true}, jsonflat.Options{NormalizeSolidus: true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.cfg.Options()); diff != "" {
			t.Errorf("Options of %+v: (-want, +got)\n%s", tt.cfg, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsonflat.yaml")
	if err := os.WriteFile(path, []byte("no_head: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !cfg.NoHead {
			t.Errorf("expected NoHead to be set")
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv(EnvVar, path)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !cfg.NoHead {
			t.Errorf("expected NoHead to be set")
		}
	})

	t.Run("no config", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff(&Config{}, cfg); diff != "" {
			t.Errorf("Config: (-want, +got)\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, ErrConfig) {
			t.Errorf("expected ErrConfig, got %v", err)
		}
	})
}
