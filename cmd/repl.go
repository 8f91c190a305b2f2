package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"draw-lab/internal"
	"draw-lab/observability"
	"draw-lab/projection"
	"draw-lab/runtime"
)

const shortIDLen = 8

// repl is the interactive surface of the tool. It only parses commands
// and renders tables; every state change goes through the controller.
type repl struct {
	log        *slog.Logger
	controller *runtime.Controller
	stats      *observability.DrawStats
	timeline   *projection.Timeline
	config     internal.Config
	in         io.Reader
	out        io.Writer
}

func newREPL(
	log *slog.Logger,
	controller *runtime.Controller,
	stats *observability.DrawStats,
	timeline *projection.Timeline,
	config internal.Config,
	in io.Reader,
	out io.Writer,
) *repl {
	return &repl{
		log:        log,
		controller: controller,
		stats:      stats,
		timeline:   timeline,
		config:     config,
		in:         in,
		out:        out,
	}
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, color.New(color.FgCyan, color.Bold).Render("draw-lab"),
		"- type 'help' for commands")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		if command == "quit" || command == "exit" {
			return nil
		}
		r.dispatch(ctx, command, args)
	}
}

func (r *repl) dispatch(ctx context.Context, command string, args []string) {
	switch command {
	case "help":
		r.printHelp()
	case "add":
		r.add(args)
	case "import":
		r.importFile(args)
	case "list":
		r.list()
	case "remove":
		r.remove(args)
	case "dedupe":
		r.dedupe()
	case "draw":
		r.draw(ctx)
	case "repeat":
		r.repeat(args)
	case "history":
		r.history()
	case "timeline":
		r.renderTimeline()
	case "clear-history":
		r.controller.ClearHistory()
		r.info("Draw history cleared")
	case "group":
		r.group(args)
	case "groups":
		r.renderGroups()
	case "export":
		r.export(args)
	case "stats":
		r.renderStats()
	case "clear":
		if err := r.controller.ClearRoster(); err != nil {
			r.fail(err)
			return
		}
		r.info("Roster cleared (history and groups reset)")
	default:
		r.warn(fmt.Sprintf("Unknown command %q, type 'help'", command))
	}
}

func (r *repl) printHelp() {
	table := r.newTable([]string{"Command", "Description"})
	for _, row := range [][]string{
		{"add <name>", "add a single participant"},
		{"import <file>", "bulk import names (plain text or CSV)"},
		{"list", "show the roster"},
		{"remove <id>", "remove a participant (id or unique prefix)"},
		{"dedupe", "drop duplicate names, first occurrence kept"},
		{"draw", "run the animated draw"},
		{"repeat on|off", "allow past winners to win again"},
		{"history", "past winners, most recent first"},
		{"timeline", "committed draws with timestamps, oldest first"},
		{"clear-history", "forget past winners"},
		{"group <size>", "split the roster into random groups"},
		{"groups", "show the last generated groups"},
		{"export <file>", "write the groups as CSV"},
		{"stats", "session counters"},
		{"clear", "wipe roster, history and groups"},
		{"quit", "leave"},
	} {
		table.Append(row)
	}
	table.Render()
}

func (r *repl) add(args []string) {
	name := strings.Join(args, " ")
	added, err := r.controller.ImportText(name, r.config.DedupeOnImport)
	if err != nil {
		r.fail(err)
		return
	}
	if added == 0 {
		r.warn("Nothing added (empty or duplicate name)")
		return
	}
	r.info(fmt.Sprintf("Added %q", strings.TrimSpace(name)))
}

func (r *repl) importFile(args []string) {
	if len(args) != 1 {
		r.warn("Usage: import <file>")
		return
	}
	added, err := r.controller.ImportFile(args[0], r.config.DedupeOnImport)
	if err != nil {
		r.fail(err)
		return
	}
	r.info(fmt.Sprintf("Imported %d participant(s)", added))
}

func (r *repl) list() {
	roster, err := r.controller.Roster()
	if err != nil {
		r.fail(err)
		return
	}
	if len(roster) == 0 {
		r.warn("Roster is empty")
		return
	}
	table := r.newTable([]string{"#", "ID", "Name"})
	for i, p := range roster {
		table.Append([]string{strconv.Itoa(i + 1), shortID(p.ID), p.Name})
	}
	table.Render()
}

// remove accepts a full UUID or any unambiguous prefix of one, so the
// short IDs printed by 'list' are directly usable.
func (r *repl) remove(args []string) {
	if len(args) != 1 {
		r.warn("Usage: remove <id>")
		return
	}
	roster, err := r.controller.Roster()
	if err != nil {
		r.fail(err)
		return
	}

	var matches []uuid.UUID
	for _, p := range roster {
		if strings.HasPrefix(p.ID.String(), strings.ToLower(args[0])) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		r.warn("No participant matches that id")
	case 1:
		if err := r.controller.Remove(matches[0]); err != nil {
			r.fail(err)
			return
		}
		r.info("Removed")
	default:
		r.warn(fmt.Sprintf("Ambiguous id prefix (%d matches)", len(matches)))
	}
}

func (r *repl) dedupe() {
	removed, err := r.controller.Deduplicate()
	if err != nil {
		r.fail(err)
		return
	}
	r.info(fmt.Sprintf("Removed %d duplicate(s)", removed))
}

// draw blocks until the reveal completes: the console sink animates on
// the same terminal, so prompting mid-reveal would garble the output.
func (r *repl) draw(ctx context.Context) {
	done, started := r.controller.StartDraw(ctx)
	if !started {
		r.warn("Nothing to draw (empty roster or everyone already won)")
		return
	}
	select {
	case <-done:
		// Let the fanout flush the winner line before prompting again.
		time.Sleep(2 * r.config.RevealTickInterval)
	case <-ctx.Done():
	}
}

func (r *repl) repeat(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		r.warn("Usage: repeat on|off")
		return
	}
	allow := args[0] == "on"
	r.controller.SetAllowRepeat(allow)
	r.info(fmt.Sprintf("Repeat winners: %s", args[0]))
}

func (r *repl) history() {
	history := r.controller.History()
	if len(history) == 0 {
		r.warn("No draws yet")
		return
	}
	table := r.newTable([]string{"#", "ID", "Winner"})
	for i, p := range history {
		table.Append([]string{strconv.Itoa(i + 1), shortID(p.ID), p.Name})
	}
	table.Render()
}

func (r *repl) renderTimeline() {
	entries := r.timeline.Entries()
	if len(entries) == 0 {
		r.warn("No draws yet")
		return
	}
	table := r.newTable([]string{"At", "Winner", "Pool"})
	for _, entry := range entries {
		table.Append([]string{
			entry.At.Local().Format("15:04:05"),
			entry.Winner.Name,
			strconv.Itoa(entry.EligibleCount),
		})
	}
	table.Render()
}

func (r *repl) group(args []string) {
	if len(args) != 1 {
		r.warn("Usage: group <size>")
		return
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		r.fail(fmt.Errorf("group size must be a number, got %q", args[0]))
		return
	}
	set, err := r.controller.GenerateGroups(size)
	if err != nil {
		r.fail(err)
		return
	}
	if set == nil {
		r.warn("Roster is empty, nothing to group")
		return
	}
	r.renderGroups()
}

func (r *repl) renderGroups() {
	set := r.controller.Groups()
	if len(set) == 0 {
		r.warn("No groups generated yet")
		return
	}
	table := r.newTable([]string{"Group", "Name"})
	for i, group := range set {
		label := fmt.Sprintf("Group %d", i+1)
		for _, p := range group {
			table.Append([]string{label, p.Name})
		}
	}
	table.Render()
}

func (r *repl) export(args []string) {
	if len(args) != 1 {
		r.warn("Usage: export <file>")
		return
	}
	if len(r.controller.Groups()) == 0 {
		r.warn("No groups to export")
		return
	}
	if err := r.controller.ExportGroups(args[0]); err != nil {
		r.fail(err)
		return
	}
	r.info(fmt.Sprintf("Groups written to %s", args[0]))
}

func (r *repl) renderStats() {
	snapshot := r.stats.Snapshot()
	table := r.newTable([]string{"Counter", "Value"})
	if count, err := r.controller.RosterCount(); err == nil {
		table.Append([]string{"Roster size", strconv.Itoa(count)})
	}
	table.Append([]string{"Names imported", strconv.FormatUint(snapshot.NamesImported, 10)})
	table.Append([]string{"Draws completed", strconv.FormatUint(snapshot.DrawsCompleted, 10)})
	table.Append([]string{"Reveal ticks", strconv.FormatUint(snapshot.RevealTicks, 10)})
	table.Append([]string{"Groups generated", strconv.FormatUint(snapshot.GroupsGenerated, 10)})
	table.Append([]string{"Rosters cleared", strconv.FormatUint(snapshot.RostersCleared, 10)})
	table.Append([]string{"Last winner", snapshot.LastWinner})
	table.Render()
}

func (r *repl) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (r *repl) info(msg string) {
	fmt.Fprintln(r.out, color.Green.Sprint(msg))
}

func (r *repl) warn(msg string) {
	fmt.Fprintln(r.out, color.Yellow.Sprint(msg))
}

func (r *repl) fail(err error) {
	fmt.Fprintln(r.out, color.Red.Sprintf("Error: %v", err))
}

func shortID(id uuid.UUID) string {
	return id.String()[:shortIDLen]
}
