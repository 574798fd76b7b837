package cli

import (
	goio "io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/selection"
)

var viewDocument = `{
  "name": "toy",
  "seq": "` + strings.Repeat("ACGT", 25) + `",
  "annotations": [
    {"id": "a", "name": "a", "start": 10, "end": 30, "direction": 1},
    {"id": "b", "name": "b", "start": 20, "end": 40, "direction": 1}
  ],
  "highlights": [
    {"id": "h", "name": "h", "start": 50, "end": 60}
  ]
}`

type recordingClipboard struct {
	texts []string
}

func (c *recordingClipboard) WriteText(text string) error {
	c.texts = append(c.texts, text)
	return nil
}

func newTestViewModel(t *testing.T, clip selection.Clipboard) viewModel {
	t.Helper()
	doc, err := io.ReadJSON(strings.NewReader(viewDocument))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	m, err := newViewModel(doc, clip, log.New(goio.Discard))
	if err != nil {
		t.Fatalf("newViewModel() error = %v", err)
	}
	return m
}

func send(m viewModel, msgs ...tea.Msg) viewModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(viewModel)
	}
	return m
}

var (
	keyRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
	keyDown       = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter      = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlA      = tea.KeyMsg{Type: tea.KeyCtrlA}
	keyCopy       = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}
)

func TestNewViewModelEmptyDocument(t *testing.T) {
	doc, err := io.ReadJSON(strings.NewReader(`{"seq": ""}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	_, err = newViewModel(doc, nil, log.New(goio.Discard))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("newViewModel() error = %v, want invalid input", err)
	}
}

func TestViewKeys(t *testing.T) {
	m := newTestViewModel(t, nil)
	m = send(m, keyRight, keyRight, keyRight, keyShiftRight, keyShiftRight)

	got := m.engine.Selection()
	want := selection.Selection{Start: 3, End: 5, Clockwise: true, Length: 2, Sequence: "TA"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}

	m = send(m, keyCtrlA)
	if sel := m.engine.Selection(); !sel.IsAll() || sel.Length != 100 {
		t.Errorf("after ctrl+a selection = %+v, want all 100 bp", sel)
	}
}

func TestViewPickCyclesFeatures(t *testing.T) {
	m := newTestViewModel(t, nil)
	m.engine.SetSelection(selection.Selection{Start: 25, End: 25, Clockwise: true})

	m = send(m, keyEnter)
	if sel := m.engine.Selection(); sel.Ref != "a" || sel.Start != 10 || sel.End != 30 {
		t.Fatalf("first enter selection = %+v, want feature a [10,30)", sel)
	}
	m = send(m, keyEnter)
	if sel := m.engine.Selection(); sel.Ref != "b" || sel.Start != 20 || sel.End != 40 {
		t.Fatalf("second enter selection = %+v, want feature b [20,40)", sel)
	}
	m = send(m, keyEnter)
	if sel := m.engine.Selection(); sel.Ref != "a" {
		t.Errorf("third enter selection = %+v, want feature a again", sel)
	}
}

func TestViewPickSkipsHighlights(t *testing.T) {
	m := newTestViewModel(t, nil)
	m.engine.SetSelection(selection.Selection{Start: 55, End: 55, Clockwise: true})

	m = send(m, keyEnter)
	if sel := m.engine.Selection(); !sel.IsCursor() {
		t.Errorf("selection = %+v, want cursor unchanged", sel)
	}
	if m.status != "no feature at 56" {
		t.Errorf("status = %q", m.status)
	}
}

func TestViewCopy(t *testing.T) {
	clip := &recordingClipboard{}
	m := newTestViewModel(t, clip)
	m = send(m, keyShiftRight, keyShiftRight, keyShiftRight, keyShiftRight, keyCopy)

	if diff := cmp.Diff([]string{"ACGT"}, clip.texts); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
	if m.status != "copied 4 bp" {
		t.Errorf("status = %q", m.status)
	}
}

func TestViewCopyWithoutClipboard(t *testing.T) {
	m := send(newTestViewModel(t, nil), keyCopy)
	if !strings.HasPrefix(m.status, "copy failed") {
		t.Errorf("status = %q, want copy failure", m.status)
	}
}

func TestViewScrollFollowsCursor(t *testing.T) {
	m := newTestViewModel(t, nil)
	// 10 bases per block, one block on screen.
	m = send(m, tea.WindowSizeMsg{Width: 18, Height: 8})
	if got := m.lin.Grid.BpsPerBlock; got != 10 {
		t.Fatalf("BpsPerBlock = %d, want 10", got)
	}

	m = send(m, keyDown, keyDown, keyDown)
	if got := m.engine.Selection().End; got != 30 {
		t.Fatalf("cursor = %d, want 30", got)
	}
	if got := m.anchors.Get().Linear; got != 30 {
		t.Errorf("linear anchor = %d, want 30", got)
	}
	if first, last := m.visible(); first != 3 || last != 3 {
		t.Errorf("visible() = %d, %d, want 3, 3", first, last)
	}
	if view := m.View(); !strings.Contains(view, "31 ") {
		t.Errorf("View() does not show block starting at 31:\n%s", view)
	}
}

func TestViewQuit(t *testing.T) {
	m := newTestViewModel(t, nil)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("Update(%q) cmd = nil, want quit", msg.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%q) did not quit", msg.String())
		}
	}
}

func TestArrowKey(t *testing.T) {
	tests := []struct {
		in        string
		wantKey   selection.Key
		wantShift bool
		wantOK    bool
	}{
		{"left", selection.KeyLeft, false, true},
		{"shift+right", selection.KeyRight, true, true},
		{"shift+up", selection.KeyUp, true, true},
		{"down", selection.KeyDown, false, true},
		{"enter", selection.KeyLeft, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k, shift, ok := arrowKey(tt.in)
			if ok != tt.wantOK || (ok && (k != tt.wantKey || shift != tt.wantShift)) {
				t.Errorf("arrowKey(%q) = %v, %v, %v", tt.in, k, shift, ok)
			}
		})
	}
}

func TestDescribeSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  selection.Selection
		want string
	}{
		{"cursor", selection.Selection{Start: 7, End: 7, Clockwise: true}, "cursor at 7"},
		{"all", selection.Selection{Ref: selection.RefAll, Length: 100}, "all · 100 bp"},
		{"forward", selection.Selection{Start: 10, End: 30, Clockwise: true, Length: 20}, "11..30 · 20 bp"},
		{"reverse", selection.Selection{Start: 30, End: 10, Length: 20}, "11..30 · 20 bp (reverse)"},
		{"named", selection.Selection{Start: 10, End: 30, Clockwise: true, Length: 20, Name: "ampR"}, "ampR 11..30 · 20 bp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeSelection(tt.sel); got != tt.want {
				t.Errorf("describeSelection() = %q, want %q", got, tt.want)
			}
		})
	}
}
