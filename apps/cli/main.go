package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/acm19/clippics/apps/cli/completion"
	"github.com/acm19/clippics/internal/clips"
	"github.com/acm19/clippics/internal/config"
	"github.com/acm19/clippics/internal/desktop"
	"github.com/acm19/clippics/internal/logger"
	"github.com/acm19/clippics/internal/output"
	"github.com/acm19/clippics/internal/store"
	"github.com/barasher/go-exiftool"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "clippics",
	Short:   "Browse, inspect and compress clipboard images",
	Long:    `Clippics lists recently captured clipboard images, shows their metadata and pastes compressed copies.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent clipboard images",
	Long:  `Lists the most recent clipboard images, newest first, as a grid or a list. Passing --view remembers the layout.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var viewCmd = &cobra.Command{
	Use:       "view [grid|list|toggle]",
	Short:     "Show or set the listing layout",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(store.ViewGrid), string(store.ViewList), "toggle"},
	Run:       runView,
}

var infoCmd = &cobra.Command{
	Use:   "info IMAGE",
	Short: "Show file information for an image",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

var detailCmd = &cobra.Command{
	Use:   "detail IMAGE",
	Short: "Show metadata and the compressed variant of an image",
	Args:  cobra.ExactArgs(1),
	Run:   runDetail,
}

var pasteCmd = &cobra.Command{
	Use:   "paste IMAGE",
	Short: "Compress an image and paste it",
	Long:  `Compresses an image into the cache directory, reusing a previous result with the same quality and format, and puts it on the clipboard.`,
	Args:  cobra.ExactArgs(1),
	Run:   runPaste,
}

var recompressCmd = &cobra.Command{
	Use:   "recompress IMAGE",
	Short: "Compress an image again and paste it",
	Long:  `Like paste, but always re-encodes the image even if a cached result exists.`,
	Args:  cobra.ExactArgs(1),
	Run:   runRecompress,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print clipboard images as they are captured",
	Args:  cobra.NoArgs,
	Run:   runWatch,
}

var (
	cfgFile   string
	viewFlag  string
	limitFlag int
	quality   string
	extension string

	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/clippics/config.yaml)")

	// List command flags
	listCmd.Flags().StringVar(&viewFlag, "view", "", "Layout to use and remember (grid, list)")
	listCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Maximum number of images (default from config)")

	// Paste and recompress command flags
	for _, cmd := range []*cobra.Command{pasteCmd, recompressCmd} {
		cmd.Flags().StringVarP(&quality, "quality", "q", "", "Quality (0-100, default from config)")
		cmd.Flags().StringVarP(&extension, "extension", "e", "", "Output format (jpeg, png, bmp, tiff, gif, default from config)")
	}

	// Add all subcommands
	rootCmd.AddCommand(listCmd, viewCmd, infoCmd, detailCmd, pasteCmd, recompressCmd, watchCmd)

	// Add autocomplete commands
	rootCmd.AddCommand(completion.NewInstallCmd(rootCmd))
	rootCmd.AddCommand(completion.NewUninstallCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
}

func newPrinter() *output.Printer {
	return output.NewPrinter(output.ResolveColors(cfg.Colors))
}

func openStore() store.Store {
	s, err := store.Open(cfg.StateFile)
	if err != nil {
		logger.Error("Failed to open state", "error", err)
		os.Exit(1)
	}
	return s
}

func runList(cmd *cobra.Command, args []string) {
	lister := clips.NewImageLister()
	if err := lister.ValidateDirectory(cfg.ClipboardDir); err != nil {
		logger.Error("Directory validation failed", "error", err)
		os.Exit(1)
	}

	s := openStore()
	view := store.LoadView(s)
	if viewFlag != "" {
		mode, err := store.ParseViewMode(viewFlag)
		if err != nil {
			logger.Error("Invalid view", "error", err)
			os.Exit(1)
		}
		if err := store.SaveView(s, mode); err != nil {
			logger.Warn("Failed to remember view", "error", err)
		}
		view = mode
	}

	limit := cfg.ListLimit
	if limitFlag > 0 {
		limit = limitFlag
	}

	images, err := lister.ListImages(cmd.Context(), cfg.ClipboardDir, limit)
	if err != nil {
		logger.Error("Failed to list images", "error", err)
		os.Exit(1)
	}

	printer := newPrinter()
	if len(images) == 0 {
		printer.Warning("No images found in %s", cfg.ClipboardDir)
		return
	}
	if err := renderImages(printer.Out(), images, view); err != nil {
		logger.Error("Failed to render images", "error", err)
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) {
	s := openStore()
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), store.LoadView(s))
		return
	}

	var mode store.ViewMode
	if args[0] == "toggle" {
		mode = store.LoadView(s).Toggle()
	} else {
		var err error
		mode, err = store.ParseViewMode(args[0])
		if err != nil {
			logger.Error("Invalid view", "error", err)
			os.Exit(1)
		}
	}
	if err := store.SaveView(s, mode); err != nil {
		logger.Error("Failed to save view", "error", err)
		os.Exit(1)
	}
	newPrinter().Success("View set to %s", mode)
}

func runInfo(cmd *cobra.Command, args []string) {
	info := clips.GetImageInfo(args[0])
	printInfo(newPrinter(), info)
}

func runDetail(cmd *cobra.Command, args []string) {
	// A missing exiftool only hides the metadata section.
	et, err := exiftool.NewExiftool()
	if err != nil {
		logger.Warn("Failed to initialise exiftool", "error", err)
	} else {
		defer et.Close()
	}

	describer := clips.NewDescriber(clips.NewCachePathResolver(cfg.CacheDir), clips.NewMetadataReader(et))
	printDetail(newPrinter(), describer.Describe(args[0]))
}

func runPaste(cmd *cobra.Command, args []string) {
	paste(cmd, args, false)
}

func runRecompress(cmd *cobra.Command, args []string) {
	paste(cmd, args, true)
}

// pastePreferences overrides the configured preferences with any flag values.
func pastePreferences(base clips.Preferences, quality, extension string) clips.Preferences {
	if quality != "" {
		base.Quality = quality
	}
	if extension != "" {
		base.Extension = extension
	}
	return base
}

func paste(cmd *cobra.Command, args []string, force bool) {
	prefs := pastePreferences(cfg.Preferences(), quality, extension)

	printer := newPrinter()
	resolver := clips.NewCachePathResolver(cfg.CacheDir)
	action := clips.NewPasteAction(
		clips.NewCompressor(resolver, clips.NewCodec()),
		desktop.NewClipboard(),
		&terminalNotifier{printer: printer, desktop: desktop.NewNotifier()},
	)

	logger.Debug("Starting compression", "source", args[0], "quality", prefs.Quality, "extension", prefs.Extension, "force", force, "cache", resolver.Root())
	result := action.PasteCompressed(cmd.Context(), args[0], prefs, force)
	if result == nil {
		return
	}
	printer.Field("Output", result.Output.Path)
	printer.Field("Reused", strconv.FormatBool(result.Reused))
	if !desktop.PastesAsImage(result.Output.Path) {
		printer.Warning("Only png images can be pasted as image data; the clipboard holds the file path")
	}
}

func runWatch(cmd *cobra.Command, args []string) {
	lister := clips.NewImageLister()
	if err := lister.ValidateDirectory(cfg.ClipboardDir); err != nil {
		logger.Error("Directory validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	found := make(chan clips.ImageInfo)
	errCh := make(chan error, 1)
	go func() {
		errCh <- clips.Watch(ctx, cfg.ClipboardDir, found)
	}()

	out := cmd.OutOrStdout()
	for image := range found {
		fmt.Fprintln(out, formatListRow(image))
	}
	if err := <-errCh; err != nil {
		logger.Error("Watch failed", "error", err)
		os.Exit(1)
	}
}

// terminalNotifier prints notifications and forwards them to the desktop.
type terminalNotifier struct {
	printer *output.Printer
	desktop clips.Notifier
}

func (n *terminalNotifier) Notify(message string) error {
	n.printer.Info("%s", message)
	return n.desktop.Notify(message)
}
