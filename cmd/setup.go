package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"obratrack/internal/config"
	"obratrack/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg, _ := config.Load()

	existing, err := s.GetProject()
	if err != nil {
		return err
	}

	name := ""
	rateProf := fmt.Sprintf("%.2f", cfg.Rates.Profissional)
	rateServ := fmt.Sprintf("%.2f", cfg.Rates.Servente)
	if existing != nil {
		name = existing.Name
		rateProf = fmt.Sprintf("%.2f", existing.HourlyRateProf)
		rateServ = fmt.Sprintf("%.2f", existing.HourlyRateServ)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Hourly rate: profissional (R$)").
				Value(&rateProf).
				Validate(validateRate),
			huh.NewInput().
				Title("Hourly rate: servente (R$)").
				Value(&rateServ).
				Validate(validateRate),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	prof, _ := strconv.ParseFloat(strings.TrimSpace(rateProf), 64)
	serv, _ := strconv.ParseFloat(strings.TrimSpace(rateServ), 64)

	project := model.Project{
		Name:           strings.TrimSpace(name),
		HourlyRateProf: prof,
		HourlyRateServ: serv,
	}
	if existing != nil {
		project.CreatedAt = existing.CreatedAt
	}

	if err := s.SaveProject(project); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	cfg.Rates.Profissional = prof
	cfg.Rates.Servente = serv
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Project %q saved.\n", project.Name)
	fmt.Printf("  Config at %s\n", config.ConfigPath())
	fmt.Println("  Run `obratrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func validateRate(v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if f < 0 {
		return errors.New("rate cannot be negative")
	}
	return nil
}
