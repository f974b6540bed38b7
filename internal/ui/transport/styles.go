package transport

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/ui/styles"
)

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func mutedStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func buttonStyle(active bool) lipgloss.Style {
	t := styles.T()
	if active {
		return lipgloss.NewStyle().Foreground(t.BgBase).Background(t.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.FgBase).Background(t.BgPopup)
}

func barFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func barEmptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func statusStyle(s playback.State) lipgloss.Style {
	st := styles.T().S()
	switch {
	case s.Status == playback.StatusError, s.Notice == playback.NoticePlayFailed:
		return st.Error
	case s.Notice == playback.NoticeActivationRequired:
		return st.Warning
	case s.Status == playback.StatusPlaying:
		return st.Success
	default:
		return st.Muted
	}
}
