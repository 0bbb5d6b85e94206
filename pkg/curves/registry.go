package curves

var byName = map[string]func(float64) float64{
	"linear":       Linear,
	"ease":         Ease,
	"ease-in":      EaseIn,
	"ease-out":     EaseOut,
	"ease-in-out":  EaseInOut,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"in-quart":     InQuart,
	"out-quart":    OutQuart,
	"in-out-quart": InOutQuart,
	"in-quint":     InQuint,
	"out-quint":    OutQuint,
	"in-out-quint": InOutQuint,
	"in-sine":      InSine,
	"out-sine":     OutSine,
	"in-out-sine":  InOutSine,
	"in-expo":      InExpo,
	"out-expo":     OutExpo,
	"in-out-expo":  InOutExpo,
	"in-circ":      InCirc,
	"out-circ":     OutCirc,
	"in-out-circ":  InOutCirc,
	"in-back":      InBack,
	"out-back":     OutBack,
	"in-out-back":  InOutBack,
	"in-elastic":   InElastic,
	"out-elastic":  OutElastic,
	"in-bounce":    InBounce,
	"out-bounce":   OutBounce,
}

// ByName resolves a curve from its string name ("linear", "ease-in-out",
// "out-bounce", ...). The second return is false for unknown names.
func ByName(name string) (func(float64) float64, bool) {
	fn, ok := byName[name]
	return fn, ok
}

// Names returns the registered curve names. The order is unspecified.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
