package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install-autocomplete command
func NewInstallCmd(rootCmd *cobra.Command) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "install-autocomplete",
		Short: "Install shell completion for " + BinaryName,
		Long: `Install shell completion for the ` + BinaryName + ` CLI.

Detects your shell from $SHELL unless --shell is given. Completes commands,
flags and image paths in bash, zsh, fish and powershell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := newInstaller(rootCmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return inst.install(shellFlag)
		},
	}
	cmd.Flags().StringVarP(&shellFlag, "shell", "s", "", "Shell (bash, zsh, fish, powershell). Auto-detected if not specified.")
	return cmd
}

// NewUninstallCmd creates the uninstall-autocomplete command
func NewUninstallCmd() *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "uninstall-autocomplete",
		Short: "Uninstall shell completion for " + BinaryName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := newInstaller(nil, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return inst.uninstall(shellFlag)
		},
	}
	cmd.Flags().StringVarP(&shellFlag, "shell", "s", "", "Shell (bash, zsh, fish, powershell). Auto-detected if not specified.")
	return cmd
}

// installer writes and removes completion scripts below home.
type installer struct {
	root *cobra.Command
	home string
	out  io.Writer
}

func newInstaller(root *cobra.Command, out io.Writer) (*installer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &installer{root: root, home: home, out: out}, nil
}

func (i *installer) bashCompletionFile() string {
	return filepath.Join(i.home, ".bash_completion")
}

func (i *installer) install(shellFlag string) error {
	shell, err := resolveShell(shellFlag)
	if err != nil {
		return err
	}
	path, err := InstallPath(shell, i.home)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}
	if err := i.writeScript(shell, path); err != nil {
		return err
	}

	if shell == Bash {
		if err := addSourceLine(i.bashCompletionFile(), path); err != nil {
			fmt.Fprintf(i.out, "Warning: could not enable auto-load: %v\n", err)
		}
	}

	fmt.Fprintf(i.out, "Shell completion installed for %s at %s\n", shell, path)
	switch shell {
	case Zsh:
		fmt.Fprintf(i.out, "Add to ~/.zshrc: fpath=(%s $fpath); autoload -Uz compinit && compinit\n", filepath.Dir(path))
	case Powershell:
		fmt.Fprintf(i.out, "Add to your PowerShell profile: . %s\n", path)
	default:
		fmt.Fprintln(i.out, "Open a new shell to use it.")
	}
	return nil
}

func (i *installer) uninstall(shellFlag string) error {
	shell, err := resolveShell(shellFlag)
	if err != nil {
		return err
	}
	path, err := InstallPath(shell, i.home)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("completion not installed for %s (expected at %s)", shell, path)
	}

	if shell == Bash {
		if err := removeSourceLine(i.bashCompletionFile(), path); err != nil {
			fmt.Fprintf(i.out, "Warning: could not disable auto-load: %v\n", err)
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove completion file: %w", err)
	}
	fmt.Fprintf(i.out, "Shell completion removed for %s (%s). Restart your shell.\n", shell, path)
	return nil
}

func (i *installer) writeScript(shell Shell, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer file.Close()

	switch shell {
	case Bash:
		return i.root.GenBashCompletionV2(file, true)
	case Zsh:
		return i.root.GenZshCompletion(file)
	case Fish:
		return i.root.GenFishCompletion(file, true)
	case Powershell:
		return i.root.GenPowerShellCompletionWithDesc(file)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

// addSourceLine appends "source scriptPath" to rcFile unless a line already
// mentions scriptPath.
func addSourceLine(rcFile, scriptPath string) error {
	content, _ := os.ReadFile(rcFile)
	for _, line := range strings.Split(string(content), "\n") {
		if strings.Contains(line, scriptPath) {
			return nil
		}
	}

	f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	prefix := ""
	if len(content) > 0 && content[len(content)-1] != '\n' {
		prefix = "\n"
	}
	_, err = f.WriteString(prefix + "source " + scriptPath + "\n")
	return err
}

// removeSourceLine drops every line of rcFile mentioning scriptPath.
func removeSourceLine(rcFile, scriptPath string) error {
	content, err := os.ReadFile(rcFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var kept []string
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.Contains(line, scriptPath) {
			kept = append(kept, line)
		}
	}
	return os.WriteFile(rcFile, []byte(strings.Join(kept, "\n")), 0644)
}
