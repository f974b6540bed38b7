package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/ui/testutil"
)

func TestPlace(t *testing.T) {
	base := "..........\n..........\n.........."

	tests := []struct {
		name string
		box  string
		x, y int
		want string
	}{
		{"top left", "ab\ncd", 0, 0, "ab........\ncd........\n.........."},
		{"middle", "XY", 4, 1, "..........\n....XY....\n.........."},
		{"right edge pads", "XYZ", 9, 2, "..........\n..........\n.........XYZ"},
		{"rows below base dropped", "a\nb\nc", 0, 2, "..........\n..........\na........."},
		{"negative row skipped", "a\nb", 3, -1, "...b......\n..........\n.........."},
		{"empty box", "", 3, 1, base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Place(base, tt.box, tt.x, tt.y); got != tt.want {
				t.Errorf("Place() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPlace_Styled(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	base := style.Render("0123456789")
	got := testutil.StripANSI(Place(base, style.Render("ab"), 3, 0))
	if got != "012ab56789" {
		t.Errorf("Place() = %q, want %q", got, "012ab56789")
	}
}
