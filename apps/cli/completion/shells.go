package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// BinaryName is the command the completion scripts are generated for.
const BinaryName = "clippics"

// Shell represents a supported shell
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	Powershell Shell = "powershell"
)

// resolveShell returns the shell named by flag, or the detected shell when
// flag is empty.
func resolveShell(flag string) (Shell, error) {
	if flag != "" {
		return Shell(flag), nil
	}
	shell, err := DetectShell()
	if err != nil {
		return "", fmt.Errorf("failed to detect shell: %w\nSpecify shell explicitly with --shell flag", err)
	}
	return shell, nil
}

// DetectShell detects the user's current shell from the SHELL environment variable
func DetectShell() (Shell, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		if runtime.GOOS == "windows" {
			return Powershell, nil
		}
		return "", fmt.Errorf("unable to detect shell: SHELL environment variable not set")
	}

	switch name := Shell(filepath.Base(shellPath)); name {
	case Bash, Zsh, Fish:
		return name, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", name)
	}
}

// InstallPath returns where the completion script for shell lives below home
func InstallPath(shell Shell, home string) (string, error) {
	switch shell {
	case Bash:
		return filepath.Join(home, ".bash_completion.d", BinaryName), nil
	case Zsh:
		return filepath.Join(home, ".zsh", "completion", "_"+BinaryName), nil
	case Fish:
		return filepath.Join(home, ".config", "fish", "completions", BinaryName+".fish"), nil
	case Powershell:
		if runtime.GOOS == "windows" {
			return filepath.Join(home, "Documents", "WindowsPowerShell", "Scripts", BinaryName+".ps1"), nil
		}
		return "", fmt.Errorf("powershell not supported on %s", runtime.GOOS)
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}
