package cli

import (
	"github.com/spf13/cobra"
)

var courseID string

func addCourseFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&courseID, "course", "", "Course id (<name>-<semester>); defaults to the user's first course")
}

var mountsCmd = &cobra.Command{
	Use:     "mounts <username>",
	Short:   "Print the volume mounts of a user's exam server",
	Args:    cobra.ExactArgs(1),
	GroupID: "spawn",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		plan, err := svc.Spawn.Plan(args[0], courseID)
		if err != nil {
			return err
		}
		return printValue(cmd.OutOrStdout(), plan.Mounts)
	},
}

var commandsCmd = &cobra.Command{
	Use:     "commands <username>",
	Short:   "Print the startup commands of a user's exam server",
	Args:    cobra.ExactArgs(1),
	GroupID: "spawn",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		plan, err := svc.Spawn.Plan(args[0], courseID)
		if err != nil {
			return err
		}
		return printLines(cmd.OutOrStdout(), plan.Commands)
	},
}

var overridesCmd = &cobra.Command{
	Use:     "overrides <username>",
	Short:   "Print the spawner overrides (image and resources) for a user's exam server",
	Args:    cobra.ExactArgs(1),
	GroupID: "spawn",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		plan, err := svc.Spawn.Plan(args[0], courseID)
		if err != nil {
			return err
		}
		return printValue(cmd.OutOrStdout(), plan.Overrides)
	},
}

var containerCmd = &cobra.Command{
	Use:     "container <username>",
	Short:   "Print the spawn plan as a Kubernetes notebook container",
	Args:    cobra.ExactArgs(1),
	GroupID: "spawn",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		c, err := svc.Spawn.Container(args[0], courseID)
		if err != nil {
			return err
		}
		return printValue(cmd.OutOrStdout(), c)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{mountsCmd, commandsCmd, overridesCmd, containerCmd} {
		addCourseFlag(cmd)
	}
}
