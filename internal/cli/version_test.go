package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, c, d string) {
	t.Helper()
	origV, origC, origD := version, commit, date
	t.Cleanup(func() { version, commit, date = origV, origC, origD })
	version, commit, date = v, c, d
}

func TestResolveVersionInfo_ReleaseBuild(t *testing.T) {
	withVersion(t, "0.4.0", "abc1234", "2026-10-01")

	v, c, d := resolveVersionInfo()
	if v != "0.4.0" || c != "abc1234" || d != "2026-10-01" {
		t.Errorf("resolveVersionInfo() = %q %q %q, want the ldflags values", v, c, d)
	}
}

func TestResolveVersionInfo_DevBuild(t *testing.T) {
	withVersion(t, "dev", "unknown", "unknown")

	v, c, d := resolveVersionInfo()
	if v == "" || c == "" || d == "" {
		t.Errorf("resolveVersionInfo() = %q %q %q, want non-empty values", v, c, d)
	}
}

func TestPrintVersionInfo(t *testing.T) {
	withVersion(t, "0.4.0", "abc1234", "2026-10-01")

	var out, errOut bytes.Buffer
	printVersionInfo(&out, &errOut)

	want := "gamedata 0.4.0 (abc1234, 2026-10-01) " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if strings.Contains(errOut.String(), "0.4.0") {
		t.Errorf("stderr should hold only the tagline, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "game table loader") {
		t.Errorf("stderr = %q, want the tagline", errOut.String())
	}
}

func TestVersionCmd_WritesToCommandOutput(t *testing.T) {
	withVersion(t, "0.4.0", "abc1234", "2026-10-01")

	var out, errOut bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.SetErr(&errOut)
	defer versionCmd.SetOut(nil)
	defer versionCmd.SetErr(nil)

	versionCmd.Run(versionCmd, nil)
	if !strings.HasPrefix(out.String(), "gamedata 0.4.0 ") {
		t.Errorf("version output = %q, want prefix %q", out.String(), "gamedata 0.4.0 ")
	}
}
