package cmd

import (
	"fmt"
	"time"

	"obratrack/internal/cli"
	"obratrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagTeamRole  string
	flagTeamStart string
	flagTeamEnd   string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the project team",
	RunE:  runTeamList,
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a collaborator",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamAdd,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collaborators",
	RunE:  runTeamList,
}

var teamEndCmd = &cobra.Command{
	Use:   "end <id>",
	Short: "Set a collaborator's end date",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamEnd,
}

var teamRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a collaborator (their logged hours are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamRm,
}

func init() {
	teamAddCmd.Flags().StringVarP(&flagTeamRole, "role", "r", string(model.RoleProfissional), "Role: PROFISSIONAL or SERVENTE")
	teamAddCmd.Flags().StringVar(&flagTeamStart, "start", time.Now().Format("2006-01-02"), "Start date (YYYY-MM-DD)")
	teamEndCmd.Flags().StringVar(&flagTeamEnd, "date", time.Now().Format("2006-01-02"), "End date (YYYY-MM-DD)")

	teamCmd.AddCommand(teamAddCmd, teamListCmd, teamEndCmd, teamRmCmd)
	rootCmd.AddCommand(teamCmd)
}

func runTeamAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := s.AddCollaborator(model.Collaborator{
		Name:      args[0],
		Role:      model.Role(flagTeamRole),
		StartDate: flagTeamStart,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s (%s) starting %s\n  ID: %s\n", c.Name, c.Role, c.StartDate, c.ID)
	}
	return nil
}

func runTeamList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	team, err := s.ListCollaborators()
	if err != nil {
		return err
	}
	if len(team) == 0 {
		fmt.Println("\n  No collaborators yet. Add one with `obratrack team add`.")
		return nil
	}

	rows := make([][]string, 0, len(team))
	for _, c := range team {
		end := c.EndDate
		if end == "" {
			end = "active"
		}
		rows = append(rows, []string{c.Name, string(c.Role), c.StartDate, end, c.ID})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Team",
		Headers: []string{"Name", "Role", "Start", "End", "ID"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runTeamEnd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SetCollaboratorEndDate(args[0], flagTeamEnd); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  End date set to %s\n", flagTeamEnd)
	}
	return nil
}

func runTeamRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteCollaborator(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Println("  Collaborator removed. Existing daily logs were kept.")
	}
	return nil
}
