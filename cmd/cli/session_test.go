package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionCommand(t *testing.T) {
	t.Setenv("CONFIG_ENV", "local")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("A 5 end add A 3 end"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"session", "--config-dir", filepath.Join("..", "config", sessionDir)})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Remaining in basket:\n[A] = 3;\nRemaining in store:\n[A] = 2;\n"
	if !strings.HasSuffix(out.String(), want) {
		t.Errorf("output should end with %q\nfull output:\n%s", want, out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := out.String(); got != "Version: 1.0.0 Initial\n" {
		t.Errorf("version output = %q", got)
	}
}
