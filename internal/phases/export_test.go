package phases

import "testing"

func NewEnvForTest() *Env {
	return newEnv()
}

func (e *Env) Live() int64 {
	return e.counter.Live()
}

// UsePhases makes Run draw from ps until the test ends.
func UsePhases(t *testing.T, ps ...Phase) {
	t.Helper()

	prev := catalogue
	catalogue = func() []Phase { return ps }
	t.Cleanup(func() { catalogue = prev })
}
