package cli

import (
	"context"
	"fmt"
	goio "io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/hits"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/render/sink"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// Sequence view styles
var (
	viewSelectedStyle = lipgloss.NewStyle().Reverse(true).Foreground(colorCyan)
	viewCursorStyle   = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(colorYellow)
	viewIndexStyle    = lipgloss.NewStyle().Foreground(colorDim)
	viewBaseStyle     = lipgloss.NewStyle().Foreground(colorWhite)
)

const (
	// viewGutter is the width of the index column left of each block.
	viewGutter = 8

	// viewBlockLines is the number of terminal lines per block: bases,
	// features and a spacer.
	viewBlockLines = 3

	// viewChrome is the number of lines taken by the header and footer.
	viewChrome = 5
)

// viewCommand creates the interactive sequence browser.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [document.json]",
		Short: "Browse a sequence and select bases from the keyboard",
		Long: `Browse a sequence in the terminal.

Keys:
  ←/→ ↑/↓        move the cursor by one base or one block
  shift+arrows   extend the selection
  enter          select the feature under the cursor (repeat to cycle)
  ctrl+a         select the whole sequence
  home           jump back to the first base
  c              copy the selected bases to the clipboard
  q              quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

// runView opens the browser on input and prints the final selection.
func (c *CLI) runView(ctx context.Context, input string) error {
	doc, err := io.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	m, err := newViewModel(doc, osc52Clipboard{w: os.Stderr}, c.Logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if vm, ok := final.(viewModel); ok {
		if sel := vm.engine.Selection(); !sel.IsCursor() {
			printKeyValue("selection", describeSelection(sel))
		}
	}
	return nil
}

// osc52Clipboard copies through the terminal with an OSC 52 sequence, which
// also works over SSH.
type osc52Clipboard struct {
	w goio.Writer
}

func (c osc52Clipboard) WriteText(text string) error {
	_, err := osc52.New(text).WriteTo(c.w)
	return err
}

// =============================================================================
// viewModel - Interactive sequence browser
// =============================================================================

// viewModel is the bubbletea model of the sequence browser.
type viewModel struct {
	name    string
	seq     seq.Sequence
	engine  *selection.Engine
	anchors *anchor.Store
	lin     *linear.Projection
	index   *hits.Index

	width  int
	height int

	// pickBase is the base whose features enter cycles through and picks
	// counts the presses there.
	pickBase int
	picks    int
	picked   string

	status string
}

// newViewModel builds a browser over doc sized for an 80×24 terminal until
// the first resize.
func newViewModel(doc *io.Document, clip selection.Clipboard, logger *log.Logger) (viewModel, error) {
	n := doc.Sequence.Len()
	if n == 0 {
		return viewModel{}, errors.New(errors.ErrCodeInvalidInput, "document has no bases to view")
	}
	index, err := hits.New(doc.Features, n)
	if err != nil {
		return viewModel{}, err
	}
	anchors := anchor.New(n)
	m := viewModel{
		name:    doc.Name,
		seq:     doc.Sequence,
		anchors: anchors,
		index:   index,
		engine: selection.New(doc.Sequence, anchors,
			selection.WithClipboard(clip),
			selection.WithLogger(logger)),
	}
	m.resize(80, 24)
	return m, nil
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		key := msg.String()
		if k, shift, ok := arrowKey(key); ok {
			m.engine.Key(selection.KeyEvent{Key: k, Shift: shift})
			m.status = ""
			m.follow()
			return m, nil
		}
		switch key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			m.engine.SelectAll()
			m.status = ""
		case "home":
			m.engine.SetSelection(selection.Empty())
			m.status = ""
			m.follow()
		case "c", "y":
			if err := m.engine.Copy(); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = fmt.Sprintf("copied %d bp", m.engine.Selection().Length)
			}
		case "enter":
			m.pick()
			m.follow()
		}
	}
	return m, nil
}

// arrowKey maps "left" or "shift+left" style key names to engine keys.
func arrowKey(s string) (selection.Key, bool, bool) {
	name, shift := strings.CutPrefix(s, "shift+")
	k, ok := selection.ParseKey(name)
	return k, shift, ok
}

// resize rebuilds the linear projection so one block fills a line.
func (m *viewModel) resize(width, height int) {
	m.width, m.height = width, height
	cols := max(10, width-viewGutter)
	m.lin = linear.New(m.seq.Len(), float64(cols), 1, m.anchors)
	m.engine.SetProjections(nil, m.lin)
	m.follow()
}

// rows is the number of blocks that fit on screen.
func (m viewModel) rows() int {
	return max(1, (m.height-viewChrome)/viewBlockLines)
}

func (m viewModel) visible() (first, last int) {
	rows := m.rows()
	return m.lin.VisibleBlocks(viewBlockLines, float64(rows*viewBlockLines))
}

// follow scrolls the linear anchor so the moving end of the selection stays
// on screen.
func (m *viewModel) follow() {
	b := m.lin.Grid.BlockOf(m.engine.Selection().End)
	first, last := m.visible()
	bps := m.lin.Grid.BpsPerBlock
	switch {
	case b < first:
		m.anchors.SetAnchor(anchor.Linear, b*bps)
	case b > last:
		m.anchors.SetAnchor(anchor.Linear, (b-(last-first))*bps)
	}
}

// pick selects the next clickable feature at the cursor.
func (m *viewModel) pick() {
	sel := m.engine.Selection()
	base := sel.End
	if m.picked == "" || sel.Ref != m.picked {
		m.pickBase, m.picks = base, 0
	}
	var candidates []seq.NamedRange
	for _, f := range m.index.At(m.pickBase) {
		if f.Kind != seq.KindHighlight {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		m.status = fmt.Sprintf("no feature at %d", m.pickBase+1)
		return
	}
	f := candidates[m.picks%len(candidates)]
	m.picks++
	m.engine.Pointer(selection.PointerEvent{
		Kind:    selection.PointerDown,
		Surface: selection.SurfaceLinear,
		Target:  selection.Feature{NamedRange: f},
	})
	m.engine.Pointer(selection.PointerEvent{Kind: selection.PointerUp, Surface: selection.SurfaceLinear})
	m.picked = f.ID
	m.status = fmt.Sprintf("%s %s", f.Kind, f.Name)
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title()))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(formatBp(m.seq.Len()) + " · " + m.seq.Topology.String()))
	b.WriteString("\n\n")

	sel := m.engine.Selection()
	first, last := m.visible()
	for i := first; i <= last; i++ {
		block, _ := m.lin.Block(i)
		b.WriteString(m.renderBases(block, sel))
		b.WriteString("\n")
		b.WriteString(m.renderFeatures(block))
		b.WriteString("\n\n")
	}

	b.WriteString(StyleValue.Render(describeSelection(sel)))
	if m.status != "" {
		b.WriteString(StyleDim.Render("  " + m.status))
	}
	b.WriteString("\n")
	b.WriteString(viewHelp)
	return b.String()
}

var viewHelp = StyleDim.Render("←/→/↑/↓ move  shift extend  ⏎ feature  ctrl+a all  c copy  q quit")

func (m viewModel) title() string {
	if m.name == "" {
		return "untitled"
	}
	return m.name
}

// renderBases draws one block of bases with the selection and cursor.
func (m viewModel) renderBases(block linear.Block, sel selection.Selection) string {
	var b strings.Builder
	b.WriteString(viewIndexStyle.Render(fmt.Sprintf("%*d ", viewGutter-1, block.FirstBase+1)))
	r := sel.Range()
	for i := block.FirstBase; i < block.LastBase; i++ {
		ch := string(m.seq.Bases[i])
		switch {
		case sel.IsCursor() && i == sel.Start:
			b.WriteString(viewCursorStyle.Render(ch))
		case !sel.IsCursor() && seq.Contains(r, i):
			b.WriteString(viewSelectedStyle.Render(ch))
		default:
			b.WriteString(viewBaseStyle.Render(ch))
		}
	}
	if sel.IsCursor() && sel.Start == m.seq.Len() && block.LastBase == m.seq.Len() {
		b.WriteString(viewCursorStyle.Render(" "))
	}
	return b.String()
}

// renderFeatures draws a bar under every base covered by a feature, in the
// color of the first one.
func (m viewModel) renderFeatures(block linear.Block) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", viewGutter))
	for i := block.FirstBase; i < block.LastBase; i++ {
		found := m.index.At(i)
		if len(found) == 0 {
			b.WriteString(" ")
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(sink.ColorOf(found[0])))
		b.WriteString(style.Render("━"))
	}
	return b.String()
}

// describeSelection renders sel in 1-based inclusive coordinates.
func describeSelection(sel selection.Selection) string {
	switch {
	case sel.IsAll():
		return fmt.Sprintf("all · %d bp", sel.Length)
	case sel.IsCursor():
		return fmt.Sprintf("cursor at %d", sel.Start)
	}
	r := sel.Range()
	desc := fmt.Sprintf("%d..%d · %d bp", r.Start+1, r.End, sel.Length)
	if !sel.Clockwise {
		desc += " (reverse)"
	}
	if sel.Name != "" {
		desc = sel.Name + " " + desc
	}
	return desc
}
