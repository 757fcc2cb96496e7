package match

// settings are fixed when a match is created.
type settings struct {
	fallthroughByDefault bool
}

// Option is a type to help initializing matches at creation time.
type Option func(settings) settings

// FallthroughByDefault is an option to let cases fall through unless stated
// otherwise. Use it like this:
//
//     m := match.Create[int, string](match.FallthroughByDefault(true))
//
func FallthroughByDefault(fallthroughByDefault bool) Option {
	return func(s settings) settings {
		s.fallthroughByDefault = fallthroughByDefault
		return s
	}
}

func configure(opts []Option) settings {
	var s settings
	for _, option := range opts {
		if option != nil {
			s = option(s)
		}
	}
	return s
}
