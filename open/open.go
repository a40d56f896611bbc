// Package open hands exported files to the system's default viewer or to a
// named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Start opens path with the default handler and returns without waiting.
func Start(path string) error {
	return StartWith(path, "")
}

// StartWith opens path with app, or with the default handler if app is empty.
func StartWith(path, app string) error {
	cmd, ok := command(path, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(path, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case "windows":
		if app != "" {
			return exec.Command("cmd", "/C", "start", "", app, path), true
		}
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), true
	case "darwin":
		if app != "" {
			return exec.Command("open", "-a", app, path), true
		}
		return exec.Command("open", path), true
	case "linux":
		if app != "" {
			return exec.Command(app, path), true
		}
		return exec.Command("xdg-open", path), true
	default:
		return nil, false
	}
}
