package driver

import (
	"fmt"
	"sort"

	"cablecheck/internal/board"
	"cablecheck/internal/classify"
	"cablecheck/internal/observ"
	"cablecheck/internal/pin"
)

// SessionInput carries the raw boundary values of one checker session:
// checked positions and connector names exactly as the UI or an observation
// file produced them. Nothing is validated yet.
type SessionInput struct {
	LeftChecked    []string
	RightChecked   []string
	LeftConnector  string
	RightConnector string
	Profile        *board.Profile
}

// AnalyzeOptions contains options for a single analysis.
type AnalyzeOptions struct {
	EnableTimings bool
}

// AnalyzeResult pairs the classification with the phase timer, when one was
// requested. The timer is live so callers can add a render phase before
// printing the summary.
type AnalyzeResult struct {
	Result classify.Result
	Timer  *observ.Timer
}

// Analyze runs one session: translate the raw input, classify, done.
func Analyze(in SessionInput) (classify.Result, error) {
	res, err := AnalyzeWithOptions(in, AnalyzeOptions{})
	if err != nil {
		return classify.Result{}, err
	}
	return res.Result, nil
}

// AnalyzeWithOptions runs one session with the given options.
func AnalyzeWithOptions(in SessionInput, opts AnalyzeOptions) (*AnalyzeResult, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	return analyzeSession(in, timer)
}

func analyzeSession(in SessionInput, timer *observ.Timer) (*AnalyzeResult, error) {
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	translateIdx := begin("translate")
	obs, err := BuildObservation(in)
	translateNote := ""
	if timer != nil && err == nil {
		translateNote = fmt.Sprintf("pins=%d", obs.Active.Count())
	}
	end(translateIdx, translateNote)
	if err != nil {
		return nil, err
	}

	classifyIdx := begin("classify")
	result := classify.Classify(obs)
	classifyNote := ""
	if timer != nil {
		classifyNote = fmt.Sprintf("defects=%d", len(result.Defects))
	}
	end(classifyIdx, classifyNote)

	return &AnalyzeResult{Result: result, Timer: timer}, nil
}

// BuildObservation validates and translates raw session input into the
// logical observation the classifier consumes. Each checked entry resolves
// through the board profile to a position and a logical pin; occurrence
// counts accumulate per logical pin, so checking both VBUS positions on a
// side yields a VBUS count of 2. A position checked twice on one side is
// rejected.
func BuildObservation(in SessionInput) (classify.Observation, error) {
	profile := in.Profile
	if profile == nil {
		profile = board.Default()
	}

	obs := classify.Observation{Counts: make(map[pin.Pin]int)}

	var err error
	if obs.LeftChecked, err = translateSide(profile, pin.Left, in.LeftChecked, &obs); err != nil {
		return classify.Observation{}, err
	}
	if obs.RightChecked, err = translateSide(profile, pin.Right, in.RightChecked, &obs); err != nil {
		return classify.Observation{}, err
	}

	if obs.Left, err = parseConnector(pin.Left, in.LeftConnector); err != nil {
		return classify.Observation{}, err
	}
	if obs.Right, err = parseConnector(pin.Right, in.RightConnector); err != nil {
		return classify.Observation{}, err
	}

	return obs, nil
}

func translateSide(profile *board.Profile, side pin.Side, raw []string, obs *classify.Observation) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	entries := make([]board.CheckedPin, 0, len(raw))
	seen := make(map[uint8]struct{}, len(raw))
	for _, text := range raw {
		entry, err := profile.TranslateChecked(side, text)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[entry.Position]; dup {
			return nil, fmt.Errorf("%s side: position %02d checked twice", side, entry.Position)
		}
		seen[entry.Position] = struct{}{}
		entries = append(entries, entry)

		obs.Active = obs.Active.With(entry.Pin)
		obs.Counts[entry.Pin]++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Position < entries[j].Position
	})
	echoes := make([]string, len(entries))
	for i, entry := range entries {
		echoes[i] = entry.Echo()
	}
	return echoes, nil
}

func parseConnector(side pin.Side, text string) (pin.ConnectorType, error) {
	c, err := board.ParseConnector(text)
	if err != nil {
		return pin.ConnectorUnknown, fmt.Errorf("%s connector: %w", side, err)
	}
	return c, nil
}
