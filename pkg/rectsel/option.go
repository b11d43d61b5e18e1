package rectsel

type OptionsAggregated struct {
	LineWidth   uint
	CursorStyle CursorStyle
}

func DefaultOptions() OptionsAggregated {
	return OptionsAggregated{
		LineWidth:   1,
		CursorStyle: CursorStyleCrosshair,
	}
}

type Option interface {
	apply(*OptionsAggregated)
}

type Options []Option

func (s Options) apply(opts *OptionsAggregated) {
	for _, opt := range s {
		opt.apply(opts)
	}
}

func (s Options) Aggregate() OptionsAggregated {
	opts := DefaultOptions()
	s.apply(&opts)
	return opts
}

type OptionLineWidth uint

func (opt OptionLineWidth) apply(opts *OptionsAggregated) {
	if opt == 0 {
		return
	}
	opts.LineWidth = uint(opt)
}

type OptionCursorStyle CursorStyle

func (opt OptionCursorStyle) apply(opts *OptionsAggregated) {
	if CursorStyle(opt) == UndefinedCursorStyle {
		return
	}
	opts.CursorStyle = CursorStyle(opt)
}
