package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/exam-hub/internal/api/middleware"
	"github.com/linskybing/exam-hub/internal/config"
	"github.com/spf13/cobra"
)

var (
	tokenAdmin bool
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:     "token <subject>",
	Short:   "Issue an API token signed with HUB_JWT_SECRET",
	Args:    cobra.ExactArgs(1),
	GroupID: "hub",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth := middleware.NewJWTAuth(config.HubJwtSecret, config.Issuer)
		if !auth.Enabled() {
			return errors.New("HUB_JWT_SECRET is not set")
		}
		token, err := auth.GenerateToken(args[0], tokenAdmin, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().BoolVar(&tokenAdmin, "admin", false, "Grant access to every user and the /hub routes")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}
