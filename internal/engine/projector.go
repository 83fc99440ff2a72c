package engine

// Projector computes GameState from an Event sequence
type Projector struct{}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build folds the events' apply functions over a clean state.
func (p *Projector) Build(events []Event) (*GameState, error) {
	state := NewGameState()

	for _, evt := range events {
		if err := evt.Apply(state); err != nil {
			return nil, err
		}
	}

	return state, nil
}
