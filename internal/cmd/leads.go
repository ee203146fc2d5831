package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"captura/internal/domain"
)

// LeadsCmd groups lead inspection subcommands
type LeadsCmd struct {
	List LeadsListCmd `cmd:"list" help:"List captured leads" default:"1"`
	Get  LeadsGetCmd  `cmd:"get" help:"Show one lead by session id"`
}

// LeadsListCmd lists captured leads, optionally filtered by status
type LeadsListCmd struct {
	Status string `help:"Filter by status (partial, abandoned, completed)" enum:"partial,abandoned,completed," default:""`
}

// Run lists leads as a JSON array on stdout
func (l *LeadsListCmd) Run(cli *CLI) error {
	leads, err := cli.Container.CaptureService.ListLeads(context.Background(), domain.LeadStatus(l.Status))
	if err != nil {
		return err
	}

	if len(leads) == 0 {
		fmt.Println("No leads captured yet.")
		return nil
	}

	return printJSON(leads)
}

// LeadsGetCmd shows one lead by session id
type LeadsGetCmd struct {
	SessionID string `arg:"" help:"Session identifier of the lead"`
}

// Run prints the lead as JSON on stdout
func (l *LeadsGetCmd) Run(cli *CLI) error {
	lead, err := cli.Container.CaptureService.GetLead(context.Background(), l.SessionID)
	if err != nil {
		return err
	}
	return printJSON(lead)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
