package modals

import "testing"

func TestModalTheme(t *testing.T) {
	styles := ModalTheme().Theme(true)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"select cursor", styles.Focused.SelectSelector.Value(), formCursor},
		{"checked prefix", styles.Focused.SelectedPrefix.Value(), formChecked},
		{"unchecked prefix", styles.Focused.UnselectedPrefix.Value(), formUnchecked},
		{"error mark", styles.Focused.ErrorIndicator.Value(), formErrorMark},
		{"blurred next arrow", styles.Blurred.NextIndicator.Value(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestModalTheme_RailFollowsFocus(t *testing.T) {
	styles := ModalTheme().Theme(true)

	if !styles.Focused.Base.GetBorderLeft() {
		t.Error("focused field should draw the rail")
	}
	if styles.Focused.Base.GetBorderLeftForeground() != ColorSecondary {
		t.Error("rail should use the secondary color")
	}
	if styles.Blurred.Base.GetBorderLeft() {
		t.Error("blurred field should not draw the rail")
	}

	// Rail width plus its padding equals the blurred indent
	focusedIndent := 1 + styles.Focused.Base.GetPaddingLeft()
	if got := styles.Blurred.Base.GetPaddingLeft(); got != focusedIndent {
		t.Errorf("blurred indent = %d, want %d", got, focusedIndent)
	}
}
