package template

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/errs"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(map[int][]int{215: {216, 217}})
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	members, ok := reg.Template(215)
	require.True(t, ok)
	require.Equal(t, []int{216, 217}, members)

	_, ok = reg.Template(453)
	require.False(t, ok)
}

func TestRegistry_Add_Validation(t *testing.T) {
	reg := MustNewRegistry(nil)

	require.ErrorIs(t, reg.Add(map[int][]int{35: {}}), errs.ErrValidation)
	require.ErrorIs(t, reg.Add(map[int][]int{0: {1}}), errs.ErrValidation)
	require.ErrorIs(t, reg.Add(map[int][]int{215: {216, -1}}), errs.ErrValidation)

	err := reg.Add(map[int][]int{215: {216, 217}, 35: nil})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Equal(t, 0, reg.Len(), "failed add leaves registry unchanged")

	_, err = NewRegistry(map[int][]int{35: {}})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestRegistry_Add_Replaces(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216}})

	require.NoError(t, reg.Add(map[int][]int{215: {216, 217}, 33: {58}}))

	members, _ := reg.Template(215)
	require.Equal(t, []int{216, 217}, members)
	require.Equal(t, []int{33, 215}, reg.Counters())
}

func TestRegistry_Remove(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216, 217}, 33: {58}})

	require.True(t, reg.Remove(215))
	require.False(t, reg.Remove(215))
	require.False(t, reg.IsCounterTag(215))
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_IsTemplateTag(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216, 216}})

	require.True(t, reg.IsTemplateTag(215))
	require.True(t, reg.IsTemplateTag(216))
	require.False(t, reg.IsTemplateTag(217))

	require.True(t, reg.IsCounterTag(215))
	require.False(t, reg.IsCounterTag(216))
	require.True(t, reg.IsMemberTag(216))
	require.False(t, reg.IsMemberTag(215))
}

func TestRegistry_TemplateIsCopy(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216, 217}})

	members, _ := reg.Template(215)
	members[0] = 999

	again, _ := reg.Template(215)
	require.Equal(t, []int{216, 217}, again)

	src := map[int][]int{33: {58}}
	require.NoError(t, reg.Add(src))
	src[33][0] = 1
	m, _ := reg.Template(33)
	require.Equal(t, []int{58}, m)
}

func TestRegistry_NilReceiver(t *testing.T) {
	var reg *Registry

	_, ok := reg.Template(215)
	require.False(t, ok)
	require.False(t, reg.IsTemplateTag(215))
	require.False(t, reg.Remove(215))
	require.Equal(t, 0, reg.Len())
	require.Empty(t, reg.Counters())
	require.Equal(t, 0, reg.Clone().Len())
	require.True(t, reg.Equal(MustNewRegistry(nil)))
	require.ErrorIs(t, reg.Add(map[int][]int{215: {216}}), errs.ErrValidation)
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216, 217}})
	snap := reg.Clone()

	require.True(t, reg.Equal(snap))

	require.NoError(t, reg.Add(map[int][]int{33: {58}}))
	require.False(t, reg.Equal(snap))
	require.Equal(t, 1, snap.Len())
}

func TestRegistry_Fingerprint(t *testing.T) {
	a := MustNewRegistry(map[int][]int{215: {216, 217}, 33: {58}})
	b := MustNewRegistry(map[int][]int{33: {58}})
	require.NoError(t, b.Add(map[int][]int{215: {216, 217}}))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := MustNewRegistry(map[int][]int{215: {217, 216}, 33: {58}})
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	require.False(t, a.Equal(c))
}

func TestRegistry_String(t *testing.T) {
	reg := MustNewRegistry(map[int][]int{215: {216, 217}, 33: {58}})
	require.Equal(t, "{33: [58], 215: [216 217]}", reg.String())
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := Standard()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Add(map[int][]int{10000 + i: {10100 + i}})
		}(i)
		go func() {
			defer wg.Done()
			_ = reg.IsTemplateTag(216)
			_ = reg.Clone()
			_ = reg.Fingerprint()
		}()
	}
	wg.Wait()

	require.True(t, reg.IsCounterTag(10007))
}

func TestMap(t *testing.T) {
	m := Map{215: {216, 217}}

	members, ok := m.Template(215)
	require.True(t, ok)
	require.Equal(t, []int{216, 217}, members)

	_, ok = Map(nil).Template(215)
	require.False(t, ok)
}

func TestStandard(t *testing.T) {
	reg := Standard()

	members, ok := reg.Template(215)
	require.True(t, ok)
	require.Equal(t, []int{216, 217}, members)
	require.True(t, reg.IsCounterTag(802))
	require.True(t, reg.IsMemberTag(805))

	for _, optional := range []int{453, 539, 268, 136, 454} {
		require.False(t, reg.IsCounterTag(optional), optional)
	}

	reg.Remove(215)
	require.True(t, Standard().IsCounterTag(215), "each call returns a fresh registry")
}
