//go:build linux

package render

import (
	"reflect"
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestHintAtomNames(t *testing.T) {
	tests := []struct {
		name                           string
		sticky, skipTaskbar, skipPager bool
		want                           []string
	}{
		{"none", false, false, false, nil},
		{"sticky", true, false, false, []string{"_NET_WM_STATE_STICKY"}},
		{"taskbar and pager", false, true, true, []string{"_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER"}},
		{"all", true, true, true, []string{"_NET_WM_STATE_STICKY", "_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hintAtomNames(tt.sticky, tt.skipTaskbar, tt.skipPager)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("hintAtomNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeAtoms(t *testing.T) {
	got := mergeAtoms([]xproto.Atom{3, 1}, []xproto.Atom{1, 7, 7})
	want := []xproto.Atom{3, 1, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeAtoms() = %v, want %v", got, want)
	}
}

func TestApplyWindowHints_NoHints(t *testing.T) {
	if err := ApplyWindowHints(false, false, false); err != nil {
		t.Errorf("ApplyWindowHints(false, false, false) = %v, want nil", err)
	}
}

func TestApplyWindowHints_WithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	defer CloseWindowHints()

	// a missing X server is not an error
	if err := ApplyWindowHints(true, true, true); err != nil {
		t.Errorf("ApplyWindowHints() = %v, want nil", err)
	}
}

func TestWindowHintApplier_Close(t *testing.T) {
	applier := &WindowHintApplier{
		atoms: make(map[string]xproto.Atom),
	}

	// closing twice without a connection is safe
	applier.Close()
	applier.Close()

	if applier.initDone {
		t.Error("initDone should be false after Close()")
	}
	if applier.conn != nil {
		t.Error("conn should be nil after Close()")
	}
}
