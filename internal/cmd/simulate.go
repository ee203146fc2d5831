package cmd

import (
	"context"
	"fmt"
	"sync"

	"captura/internal/client"
	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
	"captura/internal/services"
)

// SimulateCmd drives a scripted visitor through the capture client, useful
// for seeding data and checking the merge behavior end to end without a
// browser. By default it writes straight into the local store; with --server
// it drives the full HTTP transports (blocking sender + plain-text beacon)
// against a running instance.
type SimulateCmd struct {
	FullName string `help:"Visitor name typed into the form" default:"Maria Silva"`
	Phone    string `help:"Visitor phone typed into the form" default:"11 91234-5678"`
	Email    string `help:"Visitor email typed into the form" default:"maria.silva@example.com"`
	Abandon  bool   `help:"Leave the page before submitting instead of completing"`
	Server   string `help:"Base URL of a running capture API (e.g. http://127.0.0.1:8080); empty writes to the local store in-process"`
}

// flushingBeacon is a best-effort sender that can be drained at teardown
type flushingBeacon interface {
	ports.BestEffortSender
	Flush()
}

// Run walks the visitor through the form field by field
func (s *SimulateCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var sender ports.LeadSender
	var beacon flushingBeacon
	if s.Server != "" {
		sender = client.NewHTTPSender(s.Server)
		beacon = client.NewBeaconSender(s.Server)
	} else {
		sender = &serviceSender{capture: cli.Container.CaptureService}
		beacon = &serviceBeacon{capture: cli.Container.CaptureService}
	}
	visitor := client.New(sender, beacon)

	logging.Logger.Info("Simulating visitor session",
		"session_id", visitor.SessionID(),
		"server", s.Server)

	// Each field is typed then blurred, like tabbing through the form
	visitor.SetField(client.FieldFullName, s.FullName)
	visitor.HandleBlur(ctx)
	visitor.SetField(client.FieldContactPhone, s.Phone)
	visitor.HandleBlur(ctx)

	if s.Abandon {
		visitor.HandlePageHide()
		beacon.Flush()

		if s.Server != "" {
			// The abandoned row lives on the remote instance
			fmt.Printf("Abandoned session %s delivered to %s\n", visitor.SessionID(), s.Server)
			return nil
		}
		lead, err := cli.Container.CaptureService.GetLead(ctx, visitor.SessionID())
		if err != nil {
			return err
		}
		return printJSON(lead)
	}

	visitor.SetField(client.FieldEmail, s.Email)
	visitor.HandleBlur(ctx)
	lead, err := visitor.Submit(ctx)
	if err != nil {
		return err
	}
	return printJSON(lead)
}

// serviceSender adapts the capture service to the client's blocking
// transport, bypassing HTTP
type serviceSender struct {
	capture *services.CaptureService
}

func (s *serviceSender) Send(ctx context.Context, req ports.SaveRequest) (*domain.Lead, error) {
	return s.capture.Record(ctx, services.WriteRequest{
		SessionID: req.SessionID,
		Fields:    req.Fields,
		Status:    req.Status,
	})
}

// serviceBeacon adapts the capture service to the client's fire-and-forget
// transport
type serviceBeacon struct {
	capture *services.CaptureService
	wg      sync.WaitGroup
}

func (b *serviceBeacon) SendBeacon(req ports.SaveRequest) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if _, err := b.capture.Record(context.Background(), services.WriteRequest{
			SessionID: req.SessionID,
			Fields:    req.Fields,
			Status:    req.Status,
		}); err != nil {
			logging.Logger.Debug("Simulated beacon write failed", "error", err)
		}
	}()
}

// Flush waits for in-flight beacon writes, something a real page teardown
// never gets to do
func (b *serviceBeacon) Flush() {
	b.wg.Wait()
}
