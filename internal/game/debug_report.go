package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
)

// debugReportTicks is how much sim-log history the clipboard report covers.
const debugReportTicks = 600

// debugReport renders the registry state and the recent scheduling history.
func (g *Game) debugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := g.scheduler.Tick()
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Thaumafunge debug report ---\n")
	fmt.Fprintf(&b, "seed=%#x cost=%d turn=%d tick_range=[%d..%d]\n\n",
		g.cfg.Seed, g.scheduler.ActionCost(), g.scheduler.Turn(), fromTick, toTick)

	b.WriteString("== actors (enumeration order) ==\n")
	for _, a := range g.registry.Actors() {
		marker := " "
		if a.IsActive() {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-8s %-13s pos=(%d,%d) energy=%d/%d",
			marker, a.Label, a.Decision, a.Pos.X, a.Pos.Y, a.Energy.Current, a.Energy.Max)
		if a.Stream != nil {
			fmt.Fprintf(&b, " seed=%#x", a.Stream.Seed())
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n== events ==\n")
	events := g.simLog.FormatRange(fromTick, toTick)
	if events == "" {
		events = "(no events recorded yet)\n"
	}
	b.WriteString(events)
	return b.String()
}

// copyDebugReport puts the report on the system clipboard and returns a
// status line for the HUD.
func (g *Game) copyDebugReport() string {
	report := g.debugReport(debugReportTicks)
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("copy debug report: %v", err)
		return "clipboard unavailable: " + err.Error()
	}
	return fmt.Sprintf("debug report copied (%d lines)", strings.Count(report, "\n"))
}
