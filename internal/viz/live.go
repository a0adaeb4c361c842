package viz

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

// LiveModel is the bubbletea model of the live analysis view: the
// pre-sampled ensemble is evaluated in batches while a running histogram
// and summary update on screen.
type LiveModel struct {
	ensemble montecarlo.Ensemble
	fields   []string
	evaluate func(montecarlo.Run) float64

	done  int
	batch int
	quit  bool
}

// NewLiveModel pre-samples the full ensemble (preserving the seed
// contract) and prepares incremental evaluation.
func NewLiveModel(drv *montecarlo.Driver, cfg montecarlo.Config) (*LiveModel, error) {
	ensemble, err := drv.Sample(context.Background())
	if err != nil {
		return nil, err
	}

	batch := len(ensemble) / 100
	if batch < 1 {
		batch = 1
	}

	ev := drv.Evaluator()
	return &LiveModel{
		ensemble: ensemble,
		fields:   cfg.SampledFields(),
		evaluate: func(r montecarlo.Run) float64 { return ev.Evaluate(r.Params) },
		batch:    batch,
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *LiveModel) Init() tea.Cmd {
	return tick()
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.done >= len(m.ensemble) {
			return m, nil
		}
		end := m.done + m.batch
		if end > len(m.ensemble) {
			end = len(m.ensemble)
		}
		for i := m.done; i < end; i++ {
			m.ensemble[i].RangeKm = m.evaluate(m.ensemble[i])
		}
		m.done = end
		if m.done < len(m.ensemble) {
			return m, tick()
		}
	}

	return m, nil
}

func (m *LiveModel) View() string {
	if m.quit {
		return ""
	}

	header := Title.Render("AeroForge Monte-Carlo") + "  " +
		Label.Render(fmt.Sprintf("%d / %d samples", m.done, len(m.ensemble)))

	if m.done == 0 {
		return Panel.Render(header+"\n\nsampling...") + "\n" +
			KeyHint.Render("q to quit")
	}

	partial := m.ensemble[:m.done]
	body := RenderHistogram(partial.Ranges(), "range (km) distribution") + "\n" +
		RenderSummary(montecarlo.Summarize(partial, m.fields))

	footer := KeyHint.Render("q to quit")
	if m.done == len(m.ensemble) {
		footer = TargetMet.Render("complete") + "  " + footer
	}

	return Panel.Render(header+"\n\n"+body) + "\n" + footer
}

// Done reports whether every sample has been evaluated.
func (m *LiveModel) Done() bool { return m.done == len(m.ensemble) }

// Ensemble exposes the (possibly partially evaluated) ensemble.
func (m *LiveModel) Ensemble() montecarlo.Ensemble { return m.ensemble }
