package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-s", "secret", "-x", "1"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "secret"},
		},
		{
			name:         "equals form",
			args:         []string{"-d=postgres://db", "-x=1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://db"},
		},
		{
			name:         "unknown flags dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-a"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-a", "-s", "k"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-a", "-s", "k"},
		},
		{
			name:         "order preserved across several flags",
			args:         []string{"-a", ":8080", "-o", "http://a,http://b", "-m", "memory"},
			allowedFlags: []string{"-o", "-a"},
			want:         []string{"-a", ":8080", "-o", "http://a,http://b"},
		},
		{
			name:         "empty",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"bin", "-c", "/etc/accounts.json"}
		assert.Equal(t, "/etc/accounts.json", JsonConfigFlags())
	})

	t.Run("long", func(t *testing.T) {
		os.Args = []string{"bin", "-a", ":9090", "-config", "/tmp/cfg.json"}
		assert.Equal(t, "/tmp/cfg.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"bin", "-s", "secret"}
		assert.Empty(t, JsonConfigFlags())
	})
}
