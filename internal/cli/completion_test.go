package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestCompleteList(t *testing.T) {
	complete := completeList([]string{"json", "png", "svg"})

	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"json", "png", "svg"}},
		{"s", []string{"svg"}},
		{"svg,", []string{"svg,json", "svg,png"}},
		{"svg,p", []string{"svg,png"}},
		{"svg,png,j", []string{"svg,png,json"}},
		{"x", nil},
	}
	for _, tt := range tests {
		got, directive := complete(nil, nil, tt.toComplete)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("completeList(%q) mismatch (-want +got):\n%s", tt.toComplete, diff)
		}
		if directive&cobra.ShellCompDirectiveNoSpace == 0 {
			t.Errorf("completeList(%q) should not add a space after the value", tt.toComplete)
		}
	}
}

func TestCompleteOne(t *testing.T) {
	got, _ := completeOne(viewNames...)(nil, nil, "l")
	if diff := cmp.Diff([]string{"linear"}, got); diff != "" {
		t.Errorf("completeOne mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletionValues(t *testing.T) {
	if diff := cmp.Diff([]string{"dot", "json", "overlap", "pdf", "png", "svg"}, formatNames()); diff != "" {
		t.Errorf("formatNames() mismatch (-want +got):\n%s", diff)
	}
	for _, k := range kindNames() {
		if k == "" {
			t.Errorf("kindNames() = %v has an empty name", kindNames())
		}
	}
}

func TestCompleteDocuments(t *testing.T) {
	exts, directive := completeDocuments(nil, nil, "")
	if diff := cmp.Diff([]string{"json"}, exts); diff != "" || directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("completeDocuments() = %v, %v", exts, directive)
	}
	if got, _ := completeDocuments(nil, []string{"a.json"}, ""); got != nil {
		t.Errorf("completeDocuments() after the first argument = %v, want nil", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s error = %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("completion %s output does not mention %s", shell, appName)
			}
		})
	}
}
