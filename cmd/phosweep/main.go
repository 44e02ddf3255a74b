package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phosweep/internal/app"
	"phosweep/internal/config"
	"phosweep/internal/domain"
	apperrors "phosweep/internal/errors"
	"phosweep/internal/infra/devfs"
	"phosweep/internal/logging"
	"phosweep/internal/presentation"
	"phosweep/internal/preview"
	"phosweep/internal/tui"
)

var (
	configPath   string
	mountPath    string
	mediaRoot    string
	before       string
	verbose      bool
	force        bool
	interactive  bool
	withPreviews bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phosweep",
	Short: "Clean up old media on a mounted device",
	Long: `Phosweep scans the media folders of a mounted device, finds photos and
videos older than a cutoff date, and removes them in a single reviewed
batch. Runs as a dry run unless told otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List deletion candidates without touching the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cutoff, _ := cfg.Cutoff()

		logger := logging.New(cfg.Verbose)
		defer logger.Sync()

		device := devfs.New(cfg.Mount)
		scanner := app.Scanner{
			Device: device,
			Logger: logger,
		}

		result, err := scanner.Scan(cmd.Context(), cfg.MediaRoot, cutoff)
		if err != nil {
			return err
		}

		printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
		printer.PrintScan(result, cutoff)

		if withPreviews && len(result.Items) > 0 {
			loader := preview.Loader{
				Device:        device,
				Logger:        logger,
				HEICSupported: cfg.HEICPreviews,
				Limit:         cfg.PreviewLimit,
			}
			previews := loader.Load(cmd.Context(), result.Items)
			fmt.Println()
			printer.PrintPreviews(previews)
		}
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Scan and delete media older than the cutoff",
	Long: `Runs the full pipeline: scan, review, delete. By default this is a dry
run; pass --force to actually remove files from the device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if force {
			cfg.DryRun = false
		}
		cutoff, _ := cfg.Cutoff()

		logger := logging.New(cfg.Verbose)
		defer logger.Sync()

		device := devfs.New(cfg.Mount)

		if interactive {
			return runInteractive(cmd.Context(), device, cfg, cutoff, logger)
		}
		return runPlain(cmd.Context(), device, cfg, cutoff, logger)
	},
}

func runPlain(ctx context.Context, device app.Device, cfg config.Config, cutoff domain.Cutoff, logger *zap.Logger) error {
	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}

	scanner := app.Scanner{Device: device, Logger: logger}
	result, err := scanner.Scan(ctx, cfg.MediaRoot, cutoff)
	if err != nil {
		return err
	}

	printer.PrintScan(result, cutoff)
	if len(result.Items) == 0 {
		return nil
	}

	if !cfg.DryRun {
		confirmed, err := confirmDeletion(len(result.Items))
		if err != nil {
			return apperrors.Wrap(apperrors.Internal, "prompt", "", err)
		}
		if !confirmed {
			fmt.Println("Aborted, nothing was deleted.")
			return nil
		}
	}

	executor := app.Executor{Device: device, Logger: logger}
	report, err := executor.Execute(ctx, result.Items, cfg.DryRun)
	if err != nil {
		return err
	}

	fmt.Println()
	printer.PrintReport(report)
	return nil
}

func runInteractive(ctx context.Context, device app.Device, cfg config.Config, cutoff domain.Cutoff, logger *zap.Logger) error {
	var program *tea.Program

	model := tui.NewModel(tui.Config{
		Mount:   cfg.Mount,
		Cutoff:  cutoff,
		DryRun:  cfg.DryRun,
		Verbose: cfg.Verbose,
		ExecuteDelete: func(items []domain.MediaItem, simulate bool) tea.Cmd {
			return func() tea.Msg {
				executor := app.Executor{
					Device: device,
					Logger: logger,
					OnProgress: func(current, total int, message string) {
						program.Send(tui.DeleteProgressMsg{Current: current, Total: total, Message: message})
					},
				}
				report, err := executor.Execute(ctx, items, simulate)
				if err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.DeleteDoneMsg{Report: report}
			}
		},
	})

	program = tea.NewProgram(model)

	go func() {
		scanner := app.Scanner{
			Device: device,
			Logger: logger,
			OnProgress: func(current, total int, message string) {
				program.Send(tui.ScanProgressMsg{Current: current, Total: total, Message: message})
			},
		}
		result, err := scanner.Scan(ctx, cfg.MediaRoot, cutoff)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.ScanDoneMsg{Result: result})
	}()

	final, err := program.Run()
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "tui", "", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, apperrors.Wrap(apperrors.InvalidConfig, "config", configPath, err)
	}

	cfg.ApplyEnv()

	if cmd.Flags().Changed("mount") {
		cfg.Mount = mountPath
	}
	if cmd.Flags().Changed("root") {
		cfg.MediaRoot = mediaRoot
	}
	if cmd.Flags().Changed("before") {
		cfg.Before = before
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, apperrors.Wrap(apperrors.InvalidConfig, "config", "", err)
	}
	return cfg, nil
}

func confirmDeletion(count int) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Permanently delete %d files from the device? This cannot be undone. [y/N]: ", count)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
	if apperrors.KindOf(err) == apperrors.InvalidConfig {
		os.Exit(2)
	}
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to yaml config file")
	rootCmd.PersistentFlags().StringVarP(&mountPath, "mount", "m", "", "Local path where the device is mounted")
	rootCmd.PersistentFlags().StringVar(&mediaRoot, "root", "DCIM", "Media root on the device")
	rootCmd.PersistentFlags().StringVarP(&before, "before", "b", "", "Cutoff date (YYYY-MM-DD); files modified before it are candidates")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	scanCmd.Flags().BoolVar(&withPreviews, "previews", false, "Fetch preview metadata (capture time) for candidates")

	cleanCmd.Flags().BoolVar(&force, "force", false, "Actually delete files (disables the default dry run)")
	cleanCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Review and confirm in an interactive UI")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
}
