package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
)

// isolate runs the test in an empty working directory with its own pacsync
// home and no PACSYNC_* variables from the caller's environment.
func isolate(t *testing.T) string {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, constants.EnvPrefix+"_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}

	dir := t.TempDir()
	t.Setenv(constants.HomeEnvVar, filepath.Join(dir, "home"))
	t.Setenv("NO_COLOR", "1")
	t.Chdir(dir)
	return dir
}

// runCLI executes the root command the way Execute does and captures output.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = execute(context.Background(), cmd, flags)
	return out.String(), errOut.String(), err
}
