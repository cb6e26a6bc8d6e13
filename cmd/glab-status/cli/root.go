package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davarch/glab-status/internal/application"
	"github.com/davarch/glab-status/internal/infrastructure/gitconfig"
	"github.com/davarch/glab-status/internal/infrastructure/gitlab_http"
	"github.com/davarch/glab-status/internal/infrastructure/logging"
	"github.com/davarch/glab-status/internal/infrastructure/render"
)

var version = "dev"

const apiTimeout = 30 * time.Second

var rootCmd = &cobra.Command{
	Use:   "glab-status",
	Short: "Show the current branch's latest GitLab pipeline and its jobs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer func() { _ = log.Sync() }()

		cfg, err := gitconfig.Load(".")
		if err != nil {
			log.Fatal("config", zap.Error(err))
		}

		branch, err := gitconfig.CurrentBranch(".")
		if err != nil {
			log.Fatal("branch", zap.Error(err))
		}

		gl := gitlab_http.New(cfg.Server, cfg.Token, apiTimeout)
		uc := application.NewStatusUseCase(gl, render.NewReport(os.Stdout))

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if err := uc.Run(ctx, cfg, branch); err != nil {
			log.Fatal("status", zap.String("project", cfg.Project), zap.Error(err))
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version)
		},
	})

	comp := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	rootCmd.AddCommand(comp)
}
