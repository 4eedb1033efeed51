package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/linskybing/exam-hub/internal/config"
	"github.com/linskybing/exam-hub/internal/domain/exam"
	"github.com/linskybing/exam-hub/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath   string
	outputFormat string

	groupTitleColor = color.New(color.FgCyan, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:     "examhub",
	Version: "dev",
	Short:   "Exam server spawn plans for JupyterHub",
	Long: `examhub reads the exam hub configuration and the per-course files next to it
and computes, for one user and course, the volume mounts, spawner overrides and
startup commands of their exam notebook server.

It can print these directly or serve them over HTTP to the hub.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case "", utils.OutputJSON, utils.OutputYAML:
			return nil
		default:
			return fmt.Errorf("unknown output format %q (want json or yaml)", outputFormat)
		}
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.LoadConfig()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Hub config file (default $EXAM_HUB_CONFIG_BASE_PATH/$EXAM_HUB_CONFIG_FILE_NAME)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json or yaml")

	rootCmd.AddGroup(&cobra.Group{ID: "spawn", Title: groupTitleColor.Sprint("Spawn Plan:")})
	rootCmd.AddGroup(&cobra.Group{ID: "hub", Title: groupTitleColor.Sprint("Hub:")})

	rootCmd.AddCommand(mountsCmd, commandsCmd, overridesCmd, containerCmd)
	rootCmd.AddCommand(usersCmd, coursesCmd, serveCmd, tokenCmd)
}

func hubConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigFilePath()
}

func newLogger() *zap.SugaredLogger {
	log, err := utils.NewLogger(config.LogLevel)
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log
}

func loadHubConfig(log *zap.SugaredLogger) (*exam.ServerConfig, error) {
	return config.NewLoader(log).Load(hubConfigPath())
}

// newServices loads the hub config once and wires the services over a fixed snapshot.
func newServices() (*application.Services, error) {
	log := newLogger()
	defer func() { _ = log.Sync() }()
	cfg, err := loadHubConfig(log)
	if err != nil {
		return nil, err
	}
	return application.New(config.NewState(cfg)), nil
}
