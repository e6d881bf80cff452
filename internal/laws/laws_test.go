package laws

import (
	"testing"

	"github.com/npillmayer/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSamples(t *testing.T) {
	s := Samples(4)
	assert.Len(t, s, 6)
	assert.Equal(t, option.Some(-2), s[0])
	assert.Equal(t, option.None[int](), s[4])
	assert.Equal(t, option.Nil[int](), s[5])
}

func TestAllLawsHold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "option.laws")
	defer teardown()
	//
	outcomes := Check(Samples(20))
	assert.Len(t, outcomes, len(Laws))
	for _, o := range outcomes {
		assert.True(t, o.Passed(), "law %q violated for %v", o.Law, o.Failures)
		assert.Equal(t, 22, o.Checked)
	}
}

func TestViolationIsReported(t *testing.T) {
	broken := Law{"never", func(o option.Option[int]) bool { return o.IsSome() }}
	saved := Laws
	Laws = []Law{broken}
	defer func() { Laws = saved }()
	outcomes := Check(Samples(1))
	assert.Equal(t, []string{"None", "Nil"}, outcomes[0].Failures)
	assert.False(t, outcomes[0].Passed())
}
